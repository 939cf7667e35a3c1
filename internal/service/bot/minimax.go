package bot

import (
	"math"

	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
)

const (
	MINIMAX_DEPTH = 4
	MINIMAX_WIN   = 1e9
	MINIMAX_DRAW  = 0

	// NoMove is returned when a node has no column to play
	NoMove = -1
)

// Searcher runs minimax with alpha-beta pruning for a fixed maximizing
// side. Scores are always from that side's point of view.
type Searcher struct {
	maximizer domain.PlayerID
	memo      *Memo
	nodes     int
}

func NewSearcher(maximizer domain.PlayerID, memo *Memo) *Searcher {
	if memo == nil {
		memo = NewMemo()
	}
	return &Searcher{maximizer: maximizer, memo: memo}
}

func (s *Searcher) Memo() *Memo { return s.memo }

// Nodes returns how many nodes were visited since the searcher was created.
func (s *Searcher) Nodes() int { return s.nodes }

// Search returns the best column and its value. The board is mutated while
// searching and restored before returning.
func (s *Searcher) Search(board *domain.Board, maximizing bool, depth int, alpha, beta float64) (int, float64) {
	s.nodes++

	mover := s.maximizer
	if !maximizing {
		mover = s.maximizer.Opponent()
	}

	key := keyFor(board, mover, maximizing, depth)
	if e, ok := s.memo.Probe(key); ok {
		return e.Column, e.Value
	}

	switch outcome := domain.Evaluate(board); {
	case outcome.Winner() == s.maximizer:
		return NoMove, MINIMAX_WIN + float64(depth)
	case outcome.Winner() == s.maximizer.Opponent():
		return NoMove, -MINIMAX_WIN - float64(depth)
	case outcome == domain.Draw:
		return NoMove, MINIMAX_DRAW
	}

	if depth == 0 {
		return NoMove, Score(board, mover, depth)
	}

	bestCol := NoMove
	var best float64
	if maximizing {
		best = math.Inf(-1)
	} else {
		best = math.Inf(1)
	}

	for col := 0; col < board.Columns(); col++ {
		if !board.IsValidMove(col) {
			continue
		}
		row, err := board.DropDisk(col, mover)
		if err != nil {
			continue
		}
		_, value := s.Search(board, !maximizing, depth-1, alpha, beta)
		board.RemoveDisk(row, col)

		if maximizing {
			if value > best {
				best, bestCol = value, col
			}
			alpha = math.Max(alpha, value)
		} else {
			if value < best {
				best, bestCol = value, col
			}
			beta = math.Min(beta, value)
		}

		if beta <= alpha {
			break // cutoff
		}
	}

	s.memo.Store(key, MemoEntry{Column: bestCol, Value: best})
	return bestCol, best
}
