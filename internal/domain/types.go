package domain

import (
	"errors"
	"fmt"
)

var BotNames = map[string]string{
	"easy":   "Alice",
	"medium": "Bob",
	"hard":   "Charles",
}

func GetBotName(difficulty string) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

type PlayerID int8

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other side. Empty has no opponent and maps to itself.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "empty"
	}
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4

	// MaxCells bounds Rows*Columns so the search key fits in a uint64
	MaxCells = 64
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Outcome is the result of scanning a board for a finished game.
type Outcome int

const (
	Ongoing Outcome = iota
	WinPlayer1
	WinPlayer2
	Draw
)

func winFor(p PlayerID) Outcome {
	if p == Player1 {
		return WinPlayer1
	}
	return WinPlayer2
}

// Winner returns the winning side, or Empty for Ongoing and Draw.
func (o Outcome) Winner() PlayerID {
	switch o {
	case WinPlayer1:
		return Player1
	case WinPlayer2:
		return Player2
	default:
		return Empty
	}
}

func (o Outcome) IsTerminal() bool {
	return o != Ongoing
}

func (o Outcome) Status() GameStatus {
	switch o {
	case WinPlayer1, WinPlayer2:
		return StatusWon
	case Draw:
		return StatusDraw
	default:
		return StatusActive
	}
}

func (o Outcome) String() string {
	switch o {
	case WinPlayer1:
		return "win_player1"
	case WinPlayer2:
		return "win_player2"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove      Error = "invalid move"
	ErrColumnFull       Error = "column is full"
	ErrColumnOutOfRange Error = "column out of range"
	ErrNotYourTurn      Error = "not your turn"
	ErrGameOver         Error = "game is already over"
	ErrBoardSize        Error = "unsupported board size"
	ErrFloatingDisc     Error = "disc above an empty cell"
)

// MoveError reports an illegal drop into a column.
type MoveError struct {
	Column int
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s: column %d: %v", ErrInvalidMove, e.Column, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// IsIllegalMove reports whether err came from dropping into a full or
// nonexistent column.
func IsIllegalMove(err error) bool {
	return errors.Is(err, ErrColumnFull) || errors.Is(err, ErrColumnOutOfRange)
}
