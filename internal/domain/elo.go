package domain

import "math"

const (
	KFactor       = 32.0
	InitialRating = 1200.0
)

// GameScore converts an outcome into the Elo score for side:
// 1 for a win, 0.5 for a draw and 0 for a loss or an unfinished game.
func GameScore(o Outcome, side PlayerID) float64 {
	switch {
	case o == Draw:
		return 0.5
	case o.Winner() == side:
		return 1.0
	default:
		return 0.0
	}
}

// UpdateElo returns the new ratings of a and b after a game in which a
// scored scoreA.
func UpdateElo(ratingA, ratingB, scoreA float64) (float64, float64) {
	expectedA := 1.0 / (1.0 + math.Pow(10.0, (ratingB-ratingA)/400.0))
	delta := KFactor * (scoreA - expectedA)
	return ratingA + delta, ratingB - delta
}
