package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// Service bundles the solving engine and its post-hoc check behind one
// seam for the CLI (or any later transport) to wire through.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
}

func NewService(s ports.Solver, v ports.Validator) *Service {
	return &Service{Solver: s, Validator: v}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, domain.SolveState, ports.Stats, error) {
	if u.Solver == nil {
		return nil, domain.StateRunning, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}
