package clock

import "strings"

// binaryBits is the row width in bits; hours (0-23) and minutes/seconds
// (0-59) both fit in six bits.
const binaryBits = 6

const (
	filledDot = '●'
	emptyDot  = '○'
)

// bitRuler labels bit positions under each value row, most significant first.
const bitRuler = "6 5 4 3 2 1"

// binaryCells renders the low six bits of v as dots, most significant first.
func binaryCells(v int) string {
	var b strings.Builder
	for bit := binaryBits - 1; bit >= 0; bit-- {
		if bit < binaryBits-1 {
			b.WriteByte(' ')
		}
		if v&(1<<bit) != 0 {
			b.WriteRune(filledDot)
		} else {
			b.WriteRune(emptyDot)
		}
	}
	return b.String()
}

// RenderBinary draws hour, minute and second as labeled 6-bit dot rows,
// each with a bit-position ruler beneath and a blank row between groups.
func RenderBinary(t TimeOfDay) []string {
	groups := []struct {
		label string
		value int
	}{
		{"H", t.Hour},
		{"M", t.Minute},
		{"S", t.Second},
	}

	var lines []string
	for i, g := range groups {
		lines = append(lines, g.label+" "+binaryCells(g.value))
		lines = append(lines, "  "+bitRuler)
		if i < len(groups)-1 {
			lines = append(lines, "")
		}
	}
	return lines
}
