package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/Musaddiq123m/Connect4-AI/internal/config"
	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
	"github.com/Musaddiq123m/Connect4-AI/internal/service/bot"
)

func testService() *Service {
	return NewService(&config.Config{
		BoardRows:    domain.Rows,
		BoardColumns: domain.Columns,
		SearchDepth:  4,
		Difficulty:   bot.DifficultyHard,
		HumanMark:    "Red",
		AIMark:       "Yellow",
	})
}

func TestAIOpensInTheCenter(t *testing.T) {
	r, err := testService().NewRound(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.CurrentPlayer() != r.AI {
		t.Fatalf("the AI should open when the human plays second")
	}
	if _, err := r.HumanMove(0); !errors.Is(err, domain.ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}

	col, row, err := r.PlayAITurn()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col != 3 || row != domain.Rows-1 {
		t.Fatalf("expected the AI to open at (5,3), got (%d,%d)", row, col)
	}
	if last, ok := r.LastMove(); !ok || last.Column != 3 || last.Player != r.AI {
		t.Fatalf("unexpected last move %+v", last)
	}
	if r.CurrentPlayer() != r.Human {
		t.Fatalf("turn should pass to the human")
	}
	if msg := r.Message(); msg != "Your turn (Red)" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestThinkAIDoesNotTouchLiveBoard(t *testing.T) {
	r, err := testService().NewRound(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	col, err := r.ThinkAI()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col != 3 {
		t.Fatalf("expected column 3, got %d", col)
	}
	if r.Board().DiscCount() != 0 {
		t.Fatalf("thinking must not place a disc")
	}
	if _, err := r.ApplyAIMove(col); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.ThinkAI(); !errors.Is(err, domain.ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn on the human's turn, got %v", err)
	}
}

func TestScriptedRounds(t *testing.T) {
	cases := []struct {
		name    string
		human   []int
		ai      []int
		outcome domain.Outcome
	}{
		{
			// the AI stacks the center and completes the column
			name:    "center tower",
			human:   []int{0, 1, 2, 4},
			ai:      []int{3, 3, 3, 3},
			outcome: domain.WinPlayer2,
		},
		{
			// 3 then 4 gives an open two on the bottom row; the AI closes it at 5
			name:    "blocks open two",
			human:   []int{3, 3, 4, 2},
			ai:      []int{1, 3, 5, 2},
			outcome: domain.Ongoing,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := testService().NewRound(true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, col := range tc.human {
				if _, err := r.HumanMove(col); err != nil {
					t.Fatalf("human move %d: unexpected error: %v", i, err)
				}
				got, _, err := r.PlayAITurn()
				if err != nil {
					t.Fatalf("ai move %d: unexpected error: %v", i, err)
				}
				if got != tc.ai[i] {
					t.Fatalf("ai move %d: got column %d, want %d\n%s", i, got, tc.ai[i], r.Board())
				}
			}
			if got := r.Outcome(); got != tc.outcome {
				t.Fatalf("outcome = %v, want %v\n%s", got, tc.outcome, r.Board())
			}
		})
	}
}

func TestRoundFinishesAndRejectsMoves(t *testing.T) {
	r, err := NewRound(domain.Rows, domain.Columns, true, "Red", "Yellow",
		bot.NewBot(domain.Player2, bot.DifficultyEasy, 1).WithSeed(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for !r.IsFinished() {
		if r.CurrentPlayer() == r.Human {
			moved := false
			for col := 0; col < domain.Columns; col++ {
				if _, err := r.HumanMove(col); err == nil {
					moved = true
					break
				} else if !domain.IsIllegalMove(err) {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			if !moved {
				t.Fatalf("no legal column for the human on an unfinished board")
			}
			continue
		}
		if _, _, err := r.PlayAITurn(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if r.FinishedAt.IsZero() || r.Reason == "" {
		t.Fatalf("a finished round records its reason and end time")
	}
	if r.Outcome() == domain.Ongoing {
		t.Fatalf("a finished round cannot be ongoing")
	}
	if _, err := r.HumanMove(0); !errors.Is(err, domain.ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if _, err := r.ThinkAI(); !errors.Is(err, domain.ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if msg := r.Message(); !strings.HasPrefix(msg, "Game Over!") {
		t.Fatalf("unexpected message %q", msg)
	}

	oldID := r.RoundID
	if err := r.Rematch(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.RoundID == oldID || r.IsFinished() || r.Board().DiscCount() != 0 {
		t.Fatalf("rematch should start a fresh game")
	}
	if r.CurrentPlayer() != r.AI {
		t.Fatalf("rematch with humanFirst=false should hand the AI the first move")
	}
}

func TestNewRoundRejectsBadBoard(t *testing.T) {
	_, err := NewRound(0, 7, true, "Red", "Yellow", bot.NewBot(domain.Player2, bot.DifficultyHard, 4))
	if !errors.Is(err, domain.ErrBoardSize) {
		t.Fatalf("expected ErrBoardSize, got %v", err)
	}
}
