package solver

import (
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// allowedInRow reports whether d has not been placed anywhere in row r.
func allowedInRow(b *domain.Board, r int, d uint8) bool {
	for c := 0; c < 9; c++ {
		if b.Values[r][c] == d {
			return false
		}
	}
	return true
}

// allowedInCol reports whether d has not been placed anywhere in column c.
func allowedInCol(b *domain.Board, c int, d uint8) bool {
	for r := 0; r < 9; r++ {
		if b.Values[r][c] == d {
			return false
		}
	}
	return true
}

// allowedInBlock scans the 3x3 block containing (r,c), skipping cells
// that share the query's row or column: those are already covered by
// the row and column checks. The skip set includes (r,c) itself, which
// is blank at query time anyway.
func allowedInBlock(b *domain.Board, r, c int, d uint8) bool {
	br, bc := r-r%3, c-c%3
	for i := br; i < br+3; i++ {
		for j := bc; j < bc+3; j++ {
			if i != r && j != c && b.Values[i][j] == d {
				return false
			}
		}
	}
	return true
}

// allowedAt reports whether d may be placed at (r,c). The cell must be
// blank when called.
func allowedAt(b *domain.Board, r, c int, d uint8) bool {
	return allowedInRow(b, r, d) && allowedInCol(b, c, d) && allowedInBlock(b, r, c, d)
}

// selectAllowed fills (r,c) when exactly one digit fits there. In
// random mode it instead assigns one of however many digits fit,
// chosen uniformly; with no fitting digit it leaves the cell alone
// either way. The cell must be blank when called.
func selectAllowed(b *domain.Board, r, c int, random bool, rng ports.Random) {
	var candidates []uint8
	for d := uint8(1); d <= 9; d++ {
		if allowedAt(b, r, c, d) {
			candidates = append(candidates, d)
		}
	}
	switch {
	case len(candidates) == 1:
		b.Values[r][c] = candidates[0]
	case random && len(candidates) >= 1:
		b.Values[r][c] = rng.Choice(candidates)
	}
}

// selectPossibleInRow places d in row r when exactly one blank cell of
// the row admits it.
func selectPossibleInRow(b *domain.Board, r int, d uint8) {
	if !allowedInRow(b, r, d) {
		return
	}
	col, count := 0, 0
	for c := 0; c < 9; c++ {
		if b.Values[r][c] == 0 && allowedInCol(b, c, d) && allowedInBlock(b, r, c, d) {
			col = c
			count++
		}
	}
	if count == 1 {
		b.Values[r][col] = d
	}
}

// selectPossibleInCol places d in column c when exactly one blank cell
// of the column admits it.
func selectPossibleInCol(b *domain.Board, c int, d uint8) {
	if !allowedInCol(b, c, d) {
		return
	}
	row, count := 0, 0
	for r := 0; r < 9; r++ {
		if b.Values[r][c] == 0 && allowedInRow(b, r, d) && allowedInBlock(b, r, c, d) {
			row = r
			count++
		}
	}
	if count == 1 {
		b.Values[row][c] = d
	}
}

// selectPossibleInBlock places d in the block whose top-left corner is
// (br,bc) when exactly one blank cell of the block admits it. br and
// bc are each one of 0, 3 and 6.
func selectPossibleInBlock(b *domain.Board, br, bc int, d uint8) {
	if !allowedInBlock(b, br, bc, d) {
		return
	}
	row, col, count := 0, 0, 0
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if b.Values[r][c] == 0 && allowedAt(b, r, c, d) {
				row, col = r, c
				count++
			}
		}
	}
	if count == 1 {
		b.Values[row][col] = d
	}
}

// selectPossible applies the hidden-single rule for d to every row,
// every column, and every block, in that order.
func selectPossible(b *domain.Board, d uint8) {
	for r := 0; r < 9; r++ {
		selectPossibleInRow(b, r, d)
	}
	for c := 0; c < 9; c++ {
		selectPossibleInCol(b, c, d)
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			selectPossibleInBlock(b, br, bc, d)
		}
	}
}

// pass makes one deduction sweep: naked singles over every blank cell
// in row-major order, then hidden singles for each digit 1 through 9.
// When random is set, only the first blank cell visited gets the
// speculative-assignment privilege. Cells are assigned in place, so
// deductions made early in a pass feed the checks that follow.
func pass(b *domain.Board, random bool, rng ports.Random) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				selectAllowed(b, r, c, random, rng)
				random = false
			}
		}
	}
	for d := uint8(1); d <= 9; d++ {
		selectPossible(b, d)
	}
}
