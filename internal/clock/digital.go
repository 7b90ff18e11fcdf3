package clock

import "fmt"

const glyphHeight = 6

// glyphGap separates adjacent glyphs so digits don't run together.
const glyphGap = "  "

// glyphs maps each rune of HH:MM:SS to its block-art form. Every entry is
// exactly six cells wide so concatenated rows stay aligned.
var glyphs = map[rune][glyphHeight]string{
	'0': {
		" ████ ",
		"█    █",
		"█    █",
		"█    █",
		"█    █",
		" ████ ",
	},
	'1': {
		"  █   ",
		" ██   ",
		"  █   ",
		"  █   ",
		"  █   ",
		" ████ ",
	},
	'2': {
		" ████ ",
		"█    █",
		"     █",
		"    █ ",
		"   █  ",
		" █████",
	},
	'3': {
		" ████ ",
		"     █",
		"  ███ ",
		"     █",
		"     █",
		" ████ ",
	},
	'4': {
		"█     ",
		"█  █  ",
		"█████ ",
		"    █ ",
		"    █ ",
		"    █ ",
	},
	'5': {
		" █████",
		"█     ",
		"█████ ",
		"     █",
		"     █",
		" ████ ",
	},
	'6': {
		" ████ ",
		"█     ",
		"█████ ",
		"█    █",
		"█    █",
		" ████ ",
	},
	'7': {
		" █████",
		"     █",
		"    █ ",
		"   █  ",
		"  █   ",
		"  █   ",
	},
	'8': {
		" ████ ",
		"█    █",
		" ████ ",
		"█    █",
		"█    █",
		" ████ ",
	},
	'9': {
		" ████ ",
		"█    █",
		" █████",
		"     █",
		"     █",
		" ████ ",
	},
	':': {
		"      ",
		"  ██  ",
		"  ██  ",
		"  ██  ",
		"  ██  ",
		"      ",
	},
}

var blankGlyph = [glyphHeight]string{
	"      ",
	"      ",
	"      ",
	"      ",
	"      ",
	"      ",
}

// glyphFor returns the block-art glyph for r, or a blank glyph for runes
// missing from the table.
func glyphFor(r rune) [glyphHeight]string {
	if g, ok := glyphs[r]; ok {
		return g
	}
	return blankGlyph
}

// RenderDigital draws HH:MM:SS as six rows of block art.
func RenderDigital(t TimeOfDay) []string {
	lines := make([]string, glyphHeight)
	for i, r := range fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second) {
		g := glyphFor(r)
		for row := range lines {
			if i > 0 {
				lines[row] += glyphGap
			}
			lines[row] += g[row]
		}
	}
	return lines
}
