package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
	"github.com/Musaddiq123m/Connect4-AI/internal/service/bot"
	"github.com/Musaddiq123m/Connect4-AI/pkg/uid"
)

// Round is one human-vs-AI game. The human always plays Player1 and the AI
// Player2; HumanFirst decides who opens.
type Round struct {
	RoundID    string
	Game       *domain.Game
	Human      domain.PlayerID
	AI         domain.PlayerID
	HumanMark  string
	AIMark     string
	HumanFirst bool
	Bot        *bot.Bot
	Reason     string
	CreatedAt  time.Time
	FinishedAt time.Time

	rows, cols int
	mu         sync.Mutex
}

func NewRound(rows, cols int, humanFirst bool, humanMark, aiMark string, b *bot.Bot) (*Round, error) {
	r := &Round{
		Human:     domain.Player1,
		AI:        domain.Player2,
		HumanMark: humanMark,
		AIMark:    aiMark,
		Bot:       b,
		rows:      rows,
		cols:      cols,
	}
	if err := r.reset(humanFirst); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Round) reset(humanFirst bool) error {
	starter := r.Human
	if !humanFirst {
		starter = r.AI
	}
	g, err := domain.NewGame(r.rows, r.cols, starter)
	if err != nil {
		return fmt.Errorf("new round: %w", err)
	}

	r.RoundID = uid.GenerateRoundID()
	r.Game = g
	r.HumanFirst = humanFirst
	r.Reason = ""
	r.CreatedAt = time.Now()
	r.FinishedAt = time.Time{}

	log.Info().Str("component", "round").Str("round", r.RoundID).
		Bool("human_first", humanFirst).Str("bot", r.Bot.Name()).
		Int("depth", r.Bot.SearchDepth()).Msg("round-started")
	return nil
}

// Rematch starts a fresh game in the same round object and drops the bot's
// memo from the previous game.
func (r *Round) Rematch(humanFirst bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Bot.Reset()
	return r.reset(humanFirst)
}

// HumanMove drops the human's disc. Illegal columns leave the round as it
// was.
func (r *Round) HumanMove(column int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.moveLocked(r.Human, column)
}

// ThinkAI runs the search on a copy of the board, so the live board stays
// readable while the AI thinks. Only one ThinkAI may run at a time.
func (r *Round) ThinkAI() (int, error) {
	r.mu.Lock()
	if r.Game.IsFinished() {
		r.mu.Unlock()
		return bot.NoMove, domain.ErrGameOver
	}
	if r.Game.CurrentPlayer != r.AI {
		r.mu.Unlock()
		return bot.NoMove, domain.ErrNotYourTurn
	}
	snapshot := r.Game.Board.Clone()
	r.mu.Unlock()

	column := r.Bot.ChooseMove(snapshot)
	if column == bot.NoMove {
		return bot.NoMove, fmt.Errorf("no legal column for the AI")
	}
	return column, nil
}

// ApplyAIMove plays a column returned by ThinkAI.
func (r *Round) ApplyAIMove(column int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.moveLocked(r.AI, column)
}

// PlayAITurn thinks and plays in one call.
func (r *Round) PlayAITurn() (column, row int, err error) {
	column, err = r.ThinkAI()
	if err != nil {
		return bot.NoMove, -1, err
	}
	row, err = r.ApplyAIMove(column)
	return column, row, err
}

func (r *Round) moveLocked(player domain.PlayerID, column int) (int, error) {
	row, err := r.Game.MakeMove(player, column)
	if err != nil {
		return -1, err
	}

	log.Debug().Str("component", "round").Str("round", r.RoundID).
		Str("player", r.MarkOf(player)).Int("column", column).Int("row", row).
		Int("move", r.Game.MoveCount).Msg("move-made")

	if r.Game.IsFinished() {
		r.FinishedAt = time.Now()
		if r.Game.Status == domain.StatusDraw {
			r.Reason = "draw"
		} else {
			r.Reason = "connect_four"
		}
		log.Info().Str("component", "round").Str("round", r.RoundID).
			Str("reason", r.Reason).Str("winner", r.MarkOf(r.Game.Winner)).
			Int("moves", r.Game.MoveCount).
			Dur("duration", r.FinishedAt.Sub(r.CreatedAt)).Msg("round-finished")
	}
	return row, nil
}

func (r *Round) Outcome() domain.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.Game.Outcome()
}

// Board returns a copy of the live board.
func (r *Round) Board() *domain.Board {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.Game.Board.Clone()
}

func (r *Round) CurrentPlayer() domain.PlayerID {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.Game.CurrentPlayer
}

func (r *Round) IsFinished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.Game.IsFinished()
}

// LastMove returns the most recent drop, if any.
func (r *Round) LastMove() (domain.Move, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.Game.History) == 0 {
		return domain.Move{}, false
	}
	return r.Game.History[len(r.Game.History)-1], true
}

func (r *Round) MarkOf(p domain.PlayerID) string {
	switch p {
	case r.Human:
		return r.HumanMark
	case r.AI:
		return r.AIMark
	default:
		return ""
	}
}

// Message is the status line for the presentation layer.
func (r *Round) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.Game.Status {
	case domain.StatusWon:
		if r.Game.Winner == r.Human {
			return fmt.Sprintf("Game Over! %s (you) wins", r.HumanMark)
		}
		return fmt.Sprintf("Game Over! %s (%s) wins", r.AIMark, r.Bot.Name())
	case domain.StatusDraw:
		return "Game Over! It's a draw"
	}
	if r.Game.CurrentPlayer == r.Human {
		return fmt.Sprintf("Your turn (%s)", r.HumanMark)
	}
	return fmt.Sprintf("%s is thinking...", r.Bot.Name())
}
