package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// centerCol returns the column a line of the given width starts at when
// centered, floor division with left bias on odd remainders. Lines wider
// than the surface start at column 0 and the runtime clips.
func centerCol(width, lineWidth int) int {
	col := (width - lineWidth) / 2
	if col < 0 {
		col = 0
	}
	return col
}

// topRow returns the row the first of n lines lands on when the block is
// vertically centered in the given height.
func topRow(height, n int) int {
	row := (height - n) / 2
	if row < 0 {
		row = 0
	}
	return row
}

// centerFrame lays out lines in a width×height cell grid. The block is
// centered vertically as a unit; each line is centered horizontally on its
// own, so lines of unequal width don't end up block-left-aligned. Lines
// that fall off-surface are dropped, not wrapped.
func centerFrame(lines []string, width, height int) []string {
	rows := make([]string, height)
	top := topRow(height, len(lines))
	for i, line := range lines {
		r := top + i
		if r >= height {
			break
		}
		if line == "" {
			continue
		}
		rows[r] = strings.Repeat(" ", centerCol(width, lipgloss.Width(line))) + line
	}
	return rows
}
