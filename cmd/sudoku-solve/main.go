package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"svw.info/sudoku-solver/internal/adapters/term"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/infrastructure/puzzlefile"
	"svw.info/sudoku-solver/internal/random"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

func main() {
	seed := flag.Int64("seed", 0, "randomness seed, 0 derives one from the clock")
	noColor := flag.Bool("no-color", false, "disable block coloring even on a tty")
	levelStr := flag.String("log-level", "warn", "debug|info|warn|error")
	outPath := flag.String("out", "", "also write the final grid to this file")
	flag.Parse()

	lvl := slog.LevelWarn
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	board, err := readPuzzle(flag.Arg(0))
	if err != nil {
		logger.Error("read", "err", err)
		fmt.Fprintln(os.Stderr, "Could not read the puzzle.")
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	uc := usecase.NewService(solver.NewPropagation(random.NewUniform(s)), validator.New())

	ctx := context.Background()
	solved, state, st, err := uc.Solve(ctx, board)
	if err != nil {
		logger.Error("solve", "err", err)
		fmt.Fprintln(os.Stderr, "Could not solve.")
		os.Exit(1)
	}
	logger.Info("solve finished",
		"state", state.String(),
		"passes", st.Passes,
		"guesses", st.Guesses,
		"dur", st.Duration.Round(time.Microsecond),
	)

	term.Grid(os.Stdout, solved, !*noColor && term.IsTerminal(os.Stdout))
	if *outPath != "" {
		if err := puzzlefile.WriteFile(*outPath, solved); err != nil {
			logger.Error("write", "path", *outPath, "err", err)
		}
	}

	// The driver reaching done is not proof of a legal solution; the
	// validator has the last word regardless of terminal state.
	ok, conflicts, _ := uc.Validate(ctx, solved)
	if !ok {
		logger.Debug("validation failed", "state", state.String(), "conflicts", len(conflicts))
		fmt.Fprintln(os.Stderr, "Could not solve.")
		os.Exit(1)
	}
	fmt.Printf("Solved in %d μs (real time).\n", st.Duration.Microseconds())
}

func readPuzzle(path string) (*domain.Board, error) {
	if path == "" {
		return puzzlefile.Read(os.Stdin)
	}
	return puzzlefile.ReadFile(path)
}
