package clock

import "fmt"

// Style selects one of the clock's display renderers.
type Style int

const (
	StyleDigital Style = iota
	StyleSimple
	StyleBinary
	StyleWords

	styleCount
)

// NumStyles is the number of selectable styles.
const NumStyles = int(styleCount)

func (s Style) String() string {
	switch s {
	case StyleDigital:
		return "digital"
	case StyleSimple:
		return "simple"
	case StyleBinary:
		return "binary"
	case StyleWords:
		return "words"
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// ParseStyle resolves a style by its config name.
func ParseStyle(name string) (Style, error) {
	for s := Style(0); s < styleCount; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return StyleDigital, fmt.Errorf("unknown style %q", name)
}

// Next returns the following style, wrapping past the last.
func (s Style) Next() Style { return Style((int(s) + 1) % NumStyles) }

// Prev returns the preceding style, wrapping past the first.
func (s Style) Prev() Style { return Style((int(s) - 1 + NumStyles) % NumStyles) }

// Render dispatches to the style's renderer.
func (s Style) Render(t TimeOfDay) []string {
	switch s {
	case StyleSimple:
		return RenderSimple(t)
	case StyleBinary:
		return RenderBinary(t)
	case StyleWords:
		return RenderWords(t)
	}
	return RenderDigital(t)
}

// RenderSimple draws the time as a single zero-padded 24-hour line.
func RenderSimple(t TimeOfDay) []string {
	return []string{fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)}
}
