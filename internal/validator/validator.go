package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
)

// Check is the post-hoc legality check, decided by digit occurrence
// per unit rather than by replaying the placement rules the solver
// uses.
type Check struct{}

func New() *Check { return &Check{} }

// Validate reports whether b is a complete, legal solution: every cell
// 1-9 and every row, column and block holding each digit exactly once.
// Duplicate positions are returned as conflicts even on a partial
// board, so an abandoned-but-consistent board can be told apart from
// an illegal one.
func (v *Check) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	complete := true
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if val := b.Values[r][c]; val < 1 || val > 9 {
				complete = false
			}
		}
	}

	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val < 1 || val > 9 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := b.Values[r][c]
			if val < 1 || val > 9 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// blocks
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := b.Values[r][c]
					if val < 1 || val > 9 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return complete && len(conf) == 0, conf, nil
}
