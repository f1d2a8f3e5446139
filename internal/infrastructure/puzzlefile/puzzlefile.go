// Package puzzlefile reads and writes the plain-text puzzle format:
// 81 whitespace-separated tokens in row-major order, "-" for a blank
// cell and "1".."9" otherwise.
package puzzlefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"svw.info/sudoku-solver/internal/domain"
)

// Read parses one puzzle from r. It stops after the 81st cell;
// trailing content is left unread.
func Read(r io.Reader) (*domain.Board, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	b := &domain.Board{}
	for i := 0; i < 81; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("puzzle ends after %d of 81 cells", i)
		}
		tok := sc.Text()
		row, col := i/9, i%9
		switch {
		case tok == "-":
			// blank, already zero
		case len(tok) == 1 && tok[0] >= '1' && tok[0] <= '9':
			b.Values[row][col] = tok[0] - '0'
		default:
			return nil, fmt.Errorf("invalid cell %q at row %d col %d", tok, row, col)
		}
	}
	return b, nil
}

// ReadFile reads a puzzle from the file at path.
func ReadFile(path string) (*domain.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Write emits b in the same format Read accepts, one row per line.
func Write(w io.Writer, b *domain.Board) error {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('-')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteFile writes b to path, creating or truncating the file.
func WriteFile(path string, b *domain.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
