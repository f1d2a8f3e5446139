package validator

import (
	"context"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

var legal = [9][9]uint8{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{4, 5, 6, 7, 8, 9, 1, 2, 3},
	{7, 8, 9, 1, 2, 3, 4, 5, 6},
	{2, 3, 4, 5, 6, 7, 8, 9, 1},
	{5, 6, 7, 8, 9, 1, 2, 3, 4},
	{8, 9, 1, 2, 3, 4, 5, 6, 7},
	{3, 4, 5, 6, 7, 8, 9, 1, 2},
	{6, 7, 8, 9, 1, 2, 3, 4, 5},
	{9, 1, 2, 3, 4, 5, 6, 7, 8},
}

func TestValidateLegalSolution(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: legal})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("legal solution rejected: ok=%v conflicts=%v", ok, conf)
	}
}

func TestValidateIncompleteBoard(t *testing.T) {
	b := &domain.Board{Values: legal}
	b.Values[3][7] = 0
	ok, conf, _ := New().Validate(context.Background(), b)
	if ok {
		t.Fatalf("incomplete board accepted")
	}
	if len(conf) != 0 {
		t.Fatalf("consistent partial board reported conflicts: %v", conf)
	}
}

func TestValidateDuplicateInRow(t *testing.T) {
	b := &domain.Board{Values: legal}
	b.Values[0][0] = b.Values[0][8]
	ok, conf, _ := New().Validate(context.Background(), b)
	if ok {
		t.Fatalf("duplicate row digit accepted")
	}
	if len(conf) == 0 {
		t.Fatalf("duplicate not reported as conflict")
	}
}

func TestValidateOutOfRangeValue(t *testing.T) {
	b := &domain.Board{Values: legal}
	b.Values[5][5] = 12
	ok, _, _ := New().Validate(context.Background(), b)
	if ok {
		t.Fatalf("out-of-range value accepted")
	}
}

func TestValidateDuplicateOnPartialBoard(t *testing.T) {
	b := &domain.Board{}
	b.Values[6][0] = 4
	b.Values[6][5] = 4
	ok, conf, _ := New().Validate(context.Background(), b)
	if ok {
		t.Fatalf("partial board with duplicate accepted")
	}
	if len(conf) != 1 {
		t.Fatalf("conflicts = %v, want the duplicate at row 6 col 5", conf)
	}
	if conf[0] != (domain.CellCoord{Row: 6, Col: 5}) {
		t.Fatalf("conflict at %v, want row 6 col 5", conf[0])
	}
}
