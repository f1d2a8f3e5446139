package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of a solve attempt.
type Stats struct {
	Passes   int
	Guesses  int
	Duration time.Duration
}

// Solver runs one solve attempt over a board. With a nil error the
// returned state is StateDone or StateAbandoned; an abandoned board is
// a normal outcome, not an error, and callers decide what it means by
// validating the result.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, domain.SolveState, Stats, error)
}

// Validator performs the post-hoc legality check (row/col/block).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Random supplies the uniform choice a stalled pass consumes for its
// one speculative assignment. candidates is never empty.
type Random interface {
	Choice(candidates []uint8) uint8
}
