package domain

// Board holds the current cell values. Zero marks a blank cell; filled
// cells hold 1 through 9.
type Board struct {
	Values [9][9]uint8
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int
	Col int
}

// EmptyCells counts the blank cells on the board.
func (b *Board) EmptyCells() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				n++
			}
		}
	}
	return n
}
