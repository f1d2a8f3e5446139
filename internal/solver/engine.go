package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// ErrMalformedGrid marks an input board holding a value outside [0,9].
var ErrMalformedGrid = errors.New("malformed grid")

// Propagation solves by repeated naked-single and hidden-single
// deduction passes. It never backtracks: when a pass fills nothing,
// the driver permits one uniformly random naked-single assignment, and
// if the board still does not move it gives up.
type Propagation struct {
	rng ports.Random
}

// NewPropagation wires the solver with its randomness source.
func NewPropagation(rng ports.Random) *Propagation {
	return &Propagation{rng: rng}
}

// Solve drives deduction passes to a fixed point over a copy of b.
// It returns the final board in StateDone or StateAbandoned; an
// abandoned board is partial but still locally consistent, since no
// rule ever places a duplicate and no placement is ever retracted.
func (s *Propagation) Solve(ctx context.Context, b *domain.Board) (*domain.Board, domain.SolveState, ports.Stats, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v > 9 {
				err := fmt.Errorf("%w: value %d at row %d col %d", ErrMalformedGrid, v, r, c)
				return nil, domain.StateRunning, ports.Stats{}, err
			}
		}
	}

	start := time.Now()
	grid := domain.Board{Values: b.Values}
	st := ports.Stats{}
	state := domain.StateRunning
	prev := -1 // no real count matches, so the first iteration never reads as a stall
	forceRandom := false
	forced := false

	for {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return nil, state, st, err
		}
		empty := grid.EmptyCells()
		if empty == 0 {
			state = domain.StateDone
			break
		}
		if empty == prev {
			if forced {
				state = domain.StateAbandoned
				break
			}
			state = domain.StateStalled
			forceRandom = true
		} else {
			state = domain.StateRunning
		}

		pass(&grid, forceRandom, s.rng)
		st.Passes++
		if forceRandom {
			st.Guesses++
		}
		forced = forceRandom
		forceRandom = false
		prev = empty
	}

	st.Duration = time.Since(start)
	out := &domain.Board{Values: grid.Values}
	return out, state, st, nil
}
