// Package term renders boards for terminal output.
package term

import (
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"

	"svw.info/sudoku-solver/internal/domain"
)

const (
	shadeOn  = "\033[37;100m"
	shadeOff = "\033[0m"
)

// Grid writes the board to w, "-" for blank cells. With color, blocks
// on the alternating checkerboard get a gray background so adjacent
// blocks stand apart.
func Grid(w io.Writer, b *domain.Board, color bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fmt.Fprint(w, "  ")
			shade := color && (r/3+c/3)%2 == 0
			if shade && c%3 == 0 {
				fmt.Fprint(w, shadeOn)
			}
			if v := b.Values[r][c]; v == 0 {
				fmt.Fprint(w, "-")
			} else {
				fmt.Fprintf(w, "%d", v)
			}
			if shade && c%3 == 2 {
				fmt.Fprint(w, shadeOff)
			}
		}
		fmt.Fprintln(w)
	}
}

// IsTerminal reports whether f is attached to a tty.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}
