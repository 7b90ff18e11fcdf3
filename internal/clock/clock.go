// Package clock holds the time model and the four display renderers.
// Everything here is pure: renderers map a TimeOfDay to display lines and
// never touch the terminal.
package clock

import "time"

// TimeOfDay is an immutable wall-clock snapshot, taken once per tick.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// Source provides the current time of day.
type Source interface {
	Now() TimeOfDay
}

// SystemSource reads the local system clock.
type SystemSource struct{}

func (SystemSource) Now() TimeOfDay {
	now := time.Now()
	return TimeOfDay{Hour: now.Hour(), Minute: now.Minute(), Second: now.Second()}
}

// FixedSource always reports the same time. Tests substitute it for the
// system clock.
type FixedSource TimeOfDay

func (s FixedSource) Now() TimeOfDay { return TimeOfDay(s) }
