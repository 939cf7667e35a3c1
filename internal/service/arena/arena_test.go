package arena

import (
	"context"
	"errors"
	"testing"

	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
	"github.com/Musaddiq123m/Connect4-AI/internal/service/bot"
)

func smallConfig() Config {
	return Config{
		Rows:         domain.Rows,
		Columns:      domain.Columns,
		Games:        4,
		Workers:      2,
		OpeningPlies: 2,
		Seed:         42,
		A:            Contender{Name: "hard", Difficulty: bot.DifficultyHard, Depth: 3},
		B:            Contender{Name: "easy", Difficulty: bot.DifficultyEasy, Depth: 1},
	}
}

func TestRunPlaysEveryGame(t *testing.T) {
	s, err := Run(context.Background(), smallConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Games != 4 || len(s.Results) != 4 {
		t.Fatalf("expected 4 games, got %d", s.Games)
	}
	if s.WinsA+s.WinsB+s.Draws != s.Games {
		t.Fatalf("every game must finish: %+v", s)
	}
	for i, r := range s.Results {
		if r.Index != i {
			t.Fatalf("result %d stored at index %d", r.Index, i)
		}
		if r.AStarts != (i%2 == 0) {
			t.Fatalf("game %d: starters should alternate", i)
		}
		if len(r.Opening) != 2 {
			t.Fatalf("game %d: expected 2 opening plies, got %v", i, r.Opening)
		}
		if !r.Outcome.IsTerminal() {
			t.Fatalf("game %d did not finish", i)
		}
		if r.Outcome != domain.Draw && r.Moves < 2*domain.ToWin-1 {
			t.Fatalf("game %d: a win needs at least 7 moves, got %d", i, r.Moves)
		}
	}
	if s.AvgMoves <= 0 {
		t.Fatalf("expected a positive move average")
	}
}

func TestPlayGameIsReproducible(t *testing.T) {
	cfg := smallConfig()
	first, err := PlayGame(context.Background(), cfg, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := PlayGame(context.Background(), cfg, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Outcome != second.Outcome || first.Moves != second.Moves {
		t.Fatalf("same seed, different games: %+v vs %+v", first, second)
	}
	for i := range first.Opening {
		if first.Opening[i] != second.Opening[i] {
			t.Fatalf("openings differ: %v vs %v", first.Opening, second.Opening)
		}
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, smallConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	s := summarize([]GameResult{
		{Outcome: domain.WinPlayer1, Moves: 7},
		{Outcome: domain.WinPlayer1, Moves: 9},
		{Outcome: domain.Draw, Moves: 42},
		{Outcome: domain.WinPlayer2, Moves: 12},
	})
	if s.WinsA != 2 || s.WinsB != 1 || s.Draws != 1 {
		t.Fatalf("unexpected tally %+v", s)
	}
	if s.AvgMoves != 17.5 {
		t.Fatalf("expected 17.5 average moves, got %v", s.AvgMoves)
	}
	if s.RatingA <= s.RatingB {
		t.Fatalf("the side with more wins should rate higher: %v vs %v", s.RatingA, s.RatingB)
	}
}
