package bot

import (
	"math/rand"

	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
)

// CalculateBestMoveEasy wins if it can, blocks an immediate loss, and
// otherwise plays a random legal column.
func CalculateBestMoveEasy(board *domain.Board, botPlayer domain.PlayerID, rng *rand.Rand) int {
	validColumns := board.ValidMoves()
	if len(validColumns) == 0 {
		return NoMove
	}

	if col, ok := findWinningColumn(board, validColumns, botPlayer); ok {
		return col
	}

	if col, ok := findWinningColumn(board, validColumns, botPlayer.Opponent()); ok {
		return col
	}

	return validColumns[rng.Intn(len(validColumns))]
}

// findWinningColumn tries player's disc in each column and undoes it.
func findWinningColumn(board *domain.Board, columns []int, player domain.PlayerID) (int, bool) {
	for _, col := range columns {
		row, err := board.DropDisk(col, player)
		if err != nil {
			continue
		}
		won := domain.CheckWinAt(board, row, col, player)
		board.RemoveDisk(row, col)
		if won {
			return col, true
		}
	}
	return NoMove, false
}
