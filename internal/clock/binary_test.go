package clock

import (
	"strings"
	"testing"
)

// decodeCells reads a dot row back into an integer, ●=1, ○=0, MSB first.
func decodeCells(t *testing.T, cells string) int {
	t.Helper()

	v := 0
	for _, r := range strings.ReplaceAll(cells, " ", "") {
		v <<= 1
		switch r {
		case filledDot:
			v |= 1
		case emptyDot:
		default:
			t.Fatalf("unexpected rune %q in cells %q", r, cells)
		}
	}
	return v
}

func TestBinaryCells_RoundTrip(t *testing.T) {
	t.Parallel()

	for v := 0; v < 60; v++ {
		if got := decodeCells(t, binaryCells(v)); got != v {
			t.Fatalf("decode(binaryCells(%d)) = %d", v, got)
		}
	}
}

func TestBinaryCells_FiveScenario(t *testing.T) {
	t.Parallel()

	if got := binaryCells(5); got != "○ ○ ○ ● ○ ●" {
		t.Fatalf("binaryCells(5) = %q, want %q", got, "○ ○ ○ ● ○ ●")
	}
}

func TestBinaryCells_TruncatesToSixBits(t *testing.T) {
	t.Parallel()

	if got := decodeCells(t, binaryCells(64 + 5)); got != 5 {
		t.Fatalf("decode(binaryCells(69)) = %d, want 5", got)
	}
}

func TestRenderBinary_RowsDecodeToTime(t *testing.T) {
	t.Parallel()

	tod := TimeOfDay{Hour: 23, Minute: 42, Second: 7}
	lines := RenderBinary(tod)

	if got := len(lines); got != 8 {
		t.Fatalf("line count = %d, want 8", got)
	}

	// Value rows sit at 0, 3 and 6; a ruler follows each and a blank row
	// separates the groups.
	rows := []struct {
		idx   int
		label string
		want  int
	}{
		{0, "H", tod.Hour},
		{3, "M", tod.Minute},
		{6, "S", tod.Second},
	}
	for _, row := range rows {
		line := lines[row.idx]
		if !strings.HasPrefix(line, row.label+" ") {
			t.Fatalf("row %d = %q, want %q prefix", row.idx, line, row.label)
		}
		if got := decodeCells(t, strings.TrimPrefix(line, row.label+" ")); got != row.want {
			t.Fatalf("row %d decodes to %d, want %d", row.idx, got, row.want)
		}
		if got := lines[row.idx+1]; got != "  "+bitRuler {
			t.Fatalf("ruler under row %d = %q, want %q", row.idx, got, "  "+bitRuler)
		}
	}
	if lines[2] != "" || lines[5] != "" {
		t.Fatalf("separator rows = %q, %q, want blank", lines[2], lines[5])
	}
}
