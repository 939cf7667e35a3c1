package bot

import (
	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
)

// Window weights, divided by (depth+1) before use.
const (
	SCORE_FOUR        = 1e9
	SCORE_THREE       = 50
	SCORE_TWO         = 10
	SCORE_BLOCK_THREE = 80
	SCORE_BLOCK_TWO   = 20
	SCORE_CENTER_DISC = 200
)

// Score is the static evaluation of board from side's point of view. Every
// window of four cells contributes its pattern value scaled by (row+1), so
// lines nearer the bottom weigh more; discs in the center column add a flat
// bonus.
func Score(board *domain.Board, side domain.PlayerID, depth int) float64 {
	rows, cols := board.Rows(), board.Columns()
	opponent := side.Opponent()
	scale := float64(depth + 1)
	score := 0.0

	center, centerCount := cols/2, 0
	for r := 0; r < rows; r++ {
		if board.At(r, center) == side {
			centerCount++
		}
	}
	score += float64(centerCount) * SCORE_CENTER_DISC / scale

	var window [domain.ToWin]domain.PlayerID

	// horizontal
	for r := 0; r < rows; r++ {
		for c := 0; c+domain.ToWin <= cols; c++ {
			for i := range window {
				window[i] = board.At(r, c+i)
			}
			score += float64(r+1) * evaluateWindow(window, side, opponent, scale)
		}
	}

	// vertical, weighted by the window's top row
	for c := 0; c < cols; c++ {
		for r := 0; r+domain.ToWin <= rows; r++ {
			for i := range window {
				window[i] = board.At(r+i, c)
			}
			score += float64(r+1) * evaluateWindow(window, side, opponent, scale)
		}
	}

	// diagonal \
	for r := 0; r+domain.ToWin <= rows; r++ {
		for c := 0; c+domain.ToWin <= cols; c++ {
			for i := range window {
				window[i] = board.At(r+i, c+i)
			}
			score += float64(r+1) * evaluateWindow(window, side, opponent, scale)
		}
	}

	// diagonal /, weighted by the top row of its square
	for r := 0; r+domain.ToWin <= rows; r++ {
		for c := 0; c+domain.ToWin <= cols; c++ {
			for i := range window {
				window[i] = board.At(r+domain.ToWin-1-i, c+i)
			}
			score += float64(r+1) * evaluateWindow(window, side, opponent, scale)
		}
	}

	return score
}

func evaluateWindow(window [domain.ToWin]domain.PlayerID, side, opponent domain.PlayerID, scale float64) float64 {
	mine, theirs, empty := 0, 0, 0
	for _, p := range window {
		switch p {
		case side:
			mine++
		case opponent:
			theirs++
		default:
			empty++
		}
	}

	score := 0.0
	switch {
	case mine == 4:
		score += SCORE_FOUR / scale
	case mine == 3 && empty == 1:
		score += SCORE_THREE / scale
	case mine == 2 && empty == 2:
		score += SCORE_TWO / scale
	}

	switch {
	case theirs == 3 && empty == 1:
		score -= SCORE_BLOCK_THREE / scale
	case theirs == 2 && empty == 2:
		score -= SCORE_BLOCK_TWO / scale
	}

	return score
}
