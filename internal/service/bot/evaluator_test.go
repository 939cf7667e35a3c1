package bot

import (
	"math"
	"testing"

	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
)

var (
	emptyBoard = []string{
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
	}
	oneCenterDisc = []string{
		".......",
		".......",
		".......",
		".......",
		".......",
		"...O...",
	}
	threeInCenter = []string{
		".......",
		".......",
		".......",
		"...O...",
		"...O...",
		"...O...",
	}
	// O to move can complete the bottom row in column 3
	winNow = []string{
		".......",
		".......",
		".......",
		".......",
		"XX.....",
		"OOO...X",
	}
	// O to move must block column 3
	mustBlock = []string{
		".......",
		".......",
		".......",
		".......",
		"OO.....",
		"XXX...O",
	}
)

func TestScore(t *testing.T) {
	cases := []struct {
		name  string
		board []string
		depth int
		forO  float64
		forX  float64
	}{
		{"empty", emptyBoard, 0, 0, 0},
		{"empty deep", emptyBoard, 4, 0, 0},
		{"center disc", oneCenterDisc, 0, 200, 0},
		{"center disc depth 1", oneCenterDisc, 1, 100, 0},
		{"center disc depth 4", oneCenterDisc, 4, 40, 0},
		{"three in center", threeInCenter, 0, 770, -280},
		{"three in center depth 1", threeInCenter, 1, 385, -140},
		{"three in center depth 4", threeInCenter, 4, 154, -56},
		{"open three", winNow, 0, 260, -550},
		{"open three depth 4", winNow, 4, 52, -110},
		{"opponent three", mustBlock, 0, -550, 260},
		{"opponent three depth 1", mustBlock, 1, -275, 130},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := domain.MustParseBoard(tc.board...)
			before := b.Clone()

			if got := Score(b, domain.Player2, tc.depth); !approxEqual(got, tc.forO) {
				t.Errorf("Score(O) = %v, want %v\n%s", got, tc.forO, b)
			}
			if got := Score(b, domain.Player1, tc.depth); !approxEqual(got, tc.forX) {
				t.Errorf("Score(X) = %v, want %v\n%s", got, tc.forX, b)
			}
			if !b.Equal(before) {
				t.Fatalf("Score must not mutate the board")
			}
		})
	}
}

func TestEvaluateWindow(t *testing.T) {
	o, x, e := domain.Player2, domain.Player1, domain.Empty
	cases := []struct {
		window [domain.ToWin]domain.PlayerID
		want   float64
	}{
		{[domain.ToWin]domain.PlayerID{o, o, o, o}, SCORE_FOUR},
		{[domain.ToWin]domain.PlayerID{o, o, e, o}, SCORE_THREE},
		{[domain.ToWin]domain.PlayerID{e, o, e, o}, SCORE_TWO},
		{[domain.ToWin]domain.PlayerID{x, x, x, e}, -SCORE_BLOCK_THREE},
		{[domain.ToWin]domain.PlayerID{e, x, x, e}, -SCORE_BLOCK_TWO},
		{[domain.ToWin]domain.PlayerID{o, x, e, e}, 0},
		{[domain.ToWin]domain.PlayerID{o, o, o, x}, 0},
		{[domain.ToWin]domain.PlayerID{e, e, e, e}, 0},
	}
	for _, tc := range cases {
		if got := evaluateWindow(tc.window, o, x, 1); got != tc.want {
			t.Errorf("evaluateWindow(%v) = %v, want %v", tc.window, got, tc.want)
		}
		if got := evaluateWindow(tc.window, o, x, 5); !approxEqual(got, tc.want/5) {
			t.Errorf("evaluateWindow(%v) at depth 4 = %v, want %v", tc.window, got, tc.want/5)
		}
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}
