package domain

import (
	"fmt"
	"strings"
)

// Board is a rows x columns grid stored row-major. Row 0 is the top row;
// discs fall toward row rows-1.
type Board struct {
	rows  int
	cols  int
	cells []PlayerID
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 || rows*cols > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d", ErrBoardSize, rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]PlayerID, rows*cols),
	}, nil
}

// NewStandardBoard returns an empty 6x7 board.
func NewStandardBoard() *Board {
	b, _ := NewBoard(Rows, Columns)
	return b
}

// ParseBoard builds a board from rows listed top to bottom, using '.' for
// an empty cell, 'X' for Player1 and 'O' for Player2. The result must obey
// gravity.
func ParseBoard(lines ...string) (*Board, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBoardSize)
	}
	b, err := NewBoard(len(lines), len(lines[0]))
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		if len(line) != b.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBoardSize, r, len(line), b.cols)
		}
		for c, ch := range line {
			switch ch {
			case '.':
			case 'X', 'x':
				b.cells[b.index(r, c)] = Player1
			case 'O', 'o':
				b.cells[b.index(r, c)] = Player2
			default:
				return nil, fmt.Errorf("unknown cell %q at row %d column %d", ch, r, c)
			}
		}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixtures; it panics on a bad layout.
func MustParseBoard(lines ...string) *Board {
	b, err := ParseBoard(lines...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Rows() int    { return b.rows }
func (b *Board) Columns() int { return b.cols }

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

func (b *Board) At(row, col int) PlayerID {
	return b.cells[b.index(row, col)]
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= b.cols {
		return false
	}

	// here row 0 represents the top row
	return b.cells[b.index(0, column)] == Empty
}

// DropDisk places player's disc in the lowest empty cell of column and
// returns the landing row.
func (b *Board) DropDisk(column int, player PlayerID) (int, error) {
	if column < 0 || column >= b.cols {
		return -1, &MoveError{Column: column, Err: ErrColumnOutOfRange}
	}

	// shifting the disk from top to bottom till it
	// reaches the end or another disk
	for row := b.rows - 1; row >= 0; row-- {
		i := b.index(row, column)
		if b.cells[i] == Empty {
			b.cells[i] = player
			return row, nil
		}
	}

	return -1, &MoveError{Column: column, Err: ErrColumnFull}
}

// RemoveDisk undoes a DropDisk. row and column must be the coordinates that
// DropDisk returned.
func (b *Board) RemoveDisk(row, column int) {
	b.cells[b.index(row, column)] = Empty
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.cols; c++ {
		if b.cells[b.index(0, c)] == Empty {
			return false
		}
	}

	return true
}

// this is a helper function used by the bots
func (b *Board) ValidMoves() []int {
	validMoves := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([]PlayerID, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

func (b *Board) Equal(o *Board) bool {
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// DiscCount returns how many cells are occupied.
func (b *Board) DiscCount() int {
	n := 0
	for _, p := range b.cells {
		if p != Empty {
			n++
		}
	}
	return n
}

// Masks returns the cells owned by player and the occupied cells as bit
// sets indexed by row*columns+col.
func (b *Board) Masks(player PlayerID) (position, mask uint64) {
	for i, p := range b.cells {
		if p == Empty {
			continue
		}
		bit := uint64(1) << uint(i)
		mask |= bit
		if p == player {
			position |= bit
		}
	}
	return position, mask
}

// Validate checks the gravity invariant: no disc rests above an empty cell.
func (b *Board) Validate() error {
	for c := 0; c < b.cols; c++ {
		for r := 0; r < b.rows-1; r++ {
			if b.At(r, c) != Empty && b.At(r+1, c) == Empty {
				return fmt.Errorf("%w: row %d column %d", ErrFloatingDisc, r, c)
			}
		}
	}
	return nil
}

// this counts the number of disks in a specific direction
func (b *Board) CountDiskInDirection(row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < b.rows && c >= 0 && c < b.cols && b.At(r, c) == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			switch b.At(r, c) {
			case Player1:
				sb.WriteByte('X')
			case Player2:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
