package bot

import (
	"github.com/Musaddiq123m/Connect4-AI/internal/domain"
)

// MemoKey identifies a search node: the side to move's discs, all occupied
// cells, whose turn it is from the maximizer's view and the remaining depth.
type MemoKey struct {
	Position   uint64
	Mask       uint64
	Maximizing bool
	Depth      int
}

type MemoEntry struct {
	Column int
	Value  float64
}

// Memo caches search results for one game. Entries are exact for their
// depth and are reused as-is on a hit. Not safe for concurrent use.
type Memo struct {
	entries map[MemoKey]MemoEntry
	hits    int
	misses  int
}

func NewMemo() *Memo {
	return &Memo{entries: make(map[MemoKey]MemoEntry)}
}

func keyFor(board *domain.Board, mover domain.PlayerID, maximizing bool, depth int) MemoKey {
	position, mask := board.Masks(mover)
	return MemoKey{
		Position:   position,
		Mask:       mask,
		Maximizing: maximizing,
		Depth:      depth,
	}
}

func (m *Memo) Probe(key MemoKey) (MemoEntry, bool) {
	e, ok := m.entries[key]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return e, ok
}

func (m *Memo) Store(key MemoKey, e MemoEntry) {
	m.entries[key] = e
}

func (m *Memo) Len() int {
	return len(m.entries)
}

// Stats returns probe hits and misses since the last Clear.
func (m *Memo) Stats() (hits, misses int) {
	return m.hits, m.misses
}

func (m *Memo) Clear() {
	clear(m.entries)
	m.hits, m.misses = 0, 0
}
