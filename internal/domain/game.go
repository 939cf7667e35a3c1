package domain

// Move records one drop in a game.
type Move struct {
	Player PlayerID
	Row    int
	Column int
}

type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
	History       []Move
}

// NewGame starts an empty game on a rows x cols board with starter to move.
func NewGame(rows, cols int, starter PlayerID) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	if starter != Player1 && starter != Player2 {
		starter = Player1
	}
	return &Game{
		Board:         board,
		CurrentPlayer: starter,
		Status:        StatusActive,
		Winner:        Empty,
	}, nil
}

func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameOver
	}

	if player != g.CurrentPlayer {
		return -1, ErrNotYourTurn
	}

	row, err := g.Board.DropDisk(column, player)
	if err != nil {
		return -1, err
	}

	g.MoveCount++
	g.History = append(g.History, Move{Player: player, Row: row, Column: column})

	outcome := Evaluate(g.Board)
	if outcome.IsTerminal() {
		g.Status = outcome.Status()
		g.Winner = outcome.Winner()
		return row, nil
	}

	g.CurrentPlayer = player.Opponent()
	return row, nil
}

// Outcome rescans the board; it never mutates the game.
func (g *Game) Outcome() Outcome {
	return Evaluate(g.Board)
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
