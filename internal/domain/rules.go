package domain

// Evaluate scans the whole board: rows, then columns, then "\" diagonals,
// then "/" diagonals. The first window of ToWin equal discs decides the
// winner. Draw is only reported once no window wins and every cell is
// taken.
func Evaluate(b *Board) Outcome {
	for r := 0; r < b.rows; r++ {
		if p := b.lineWinner(r, 0, 0, 1, b.cols); p != Empty {
			return winFor(p)
		}
	}

	for c := 0; c < b.cols; c++ {
		if p := b.lineWinner(0, c, 1, 0, b.rows); p != Empty {
			return winFor(p)
		}
	}

	for r := 0; r+ToWin <= b.rows; r++ {
		for c := 0; c+ToWin <= b.cols; c++ {
			if p := b.lineWinner(r, c, 1, 1, ToWin); p != Empty {
				return winFor(p)
			}
		}
	}

	for r := ToWin - 1; r < b.rows; r++ {
		for c := 0; c+ToWin <= b.cols; c++ {
			if p := b.lineWinner(r, c, -1, 1, ToWin); p != Empty {
				return winFor(p)
			}
		}
	}

	if b.DiscCount() == len(b.cells) {
		return Draw
	}
	return Ongoing
}

// lineWinner slides a ToWin-wide window along the line of length n that
// starts at (row, col) and steps by (dr, dc). Lines shorter than ToWin
// yield nothing.
func (b *Board) lineWinner(row, col, dr, dc, n int) PlayerID {
	if n < ToWin {
		return Empty
	}
	for start := 0; start+ToWin <= n; start++ {
		r, c := row+start*dr, col+start*dc
		first := b.At(r, c)
		if first == Empty {
			continue
		}
		same := true
		for k := 1; k < ToWin; k++ {
			if b.At(r+k*dr, c+k*dc) != first {
				same = false
				break
			}
		}
		if same {
			return first
		}
	}
	return Empty
}

// CheckWinAt only checks the lines passing through (row, column), which is
// all that can change after a single drop.
func CheckWinAt(b *Board, row, column int, player PlayerID) bool {
	directions := [][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal \
		{1, -1}, // diagonal /
	}

	for _, dir := range directions {
		total := 1 +
			b.CountDiskInDirection(row, column, dir[0], dir[1], player) +
			b.CountDiskInDirection(row, column, -dir[0], -dir[1], player)
		if total >= ToWin {
			return true
		}
	}

	return false
}
