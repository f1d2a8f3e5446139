package puzzlefile

import (
	"bytes"
	"strings"
	"testing"
)

const samplePuzzle = `5 3 - - 7 - - - -
6 - - 1 9 5 - - -
- 9 8 - - - - 6 -
8 - - - 6 - - - 3
4 - - 8 - 3 - - 1
7 - - - 2 - - - 6
- 6 - - - - 2 8 -
- - - 4 1 9 - - 5
- - - - 8 - - 7 9
`

func TestReadSamplePuzzle(t *testing.T) {
	b, err := Read(strings.NewReader(samplePuzzle))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if b.Values[0][0] != 5 || b.Values[0][1] != 3 || b.Values[8][8] != 9 {
		t.Fatalf("corner cells misparsed: %v", b.Values)
	}
	if b.Values[0][2] != 0 {
		t.Fatalf("blank cell parsed as %d", b.Values[0][2])
	}
	if got := b.EmptyCells(); got != 51 {
		t.Fatalf("empty cells = %d, want 51", got)
	}
}

func TestReadRejectsBadToken(t *testing.T) {
	in := strings.Replace(samplePuzzle, "9 8", "9 x", 1)
	if _, err := Read(strings.NewReader(in)); err == nil {
		t.Fatalf("bad token accepted")
	}
}

func TestReadRejectsZeroDigit(t *testing.T) {
	in := strings.Replace(samplePuzzle, "5 3", "0 3", 1)
	if _, err := Read(strings.NewReader(in)); err == nil {
		t.Fatalf("zero digit accepted; blanks are spelled -")
	}
}

func TestReadRejectsTruncatedInput(t *testing.T) {
	in := samplePuzzle[:len(samplePuzzle)/2]
	if _, err := Read(strings.NewReader(in)); err == nil {
		t.Fatalf("truncated puzzle accepted")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	b, err := Read(strings.NewReader(samplePuzzle))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, b); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.String() != samplePuzzle {
		t.Fatalf("round trip changed the text:\n%s", buf.String())
	}
	again, err := Read(&buf)
	if err != nil {
		t.Fatalf("re-Read failed: %v", err)
	}
	if again.Values != b.Values {
		t.Fatalf("round trip changed the board")
	}
}
