// Package tui renders the clock with Bubble Tea: a single model whose
// state is only ever touched from the update loop, refreshed once per
// wall-clock second.
package tui

import (
	"time"

	"github.com/tocktui/tock/internal/clock"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg fires once per second, aligned to the wall-clock boundary.
type TickMsg time.Time

// Model is the top-level Bubble Tea model for the clock.
type Model struct {
	style         clock.Style
	footerVisible bool

	// Window dimensions, re-delivered by the runtime on every resize.
	width  int
	height int

	source clock.Source
	skin   Skin
	keys   KeyMap
	help   help.Model
}

// NewModel creates a clock model starting at the given style.
func NewModel(source clock.Source, initial clock.Style, footerVisible bool, skin Skin) *Model {
	h := help.New()
	h.Styles.ShortKey = skin.FooterKey
	h.Styles.ShortDesc = skin.FooterDesc
	h.Styles.ShortSeparator = skin.FooterDesc

	return &Model{
		style:         initial,
		footerVisible: footerVisible,
		source:        source,
		skin:          skin,
		keys:          DefaultKeyMap(),
		help:          h,
	}
}

// Init arms the first tick.
func (m *Model) Init() tea.Cmd {
	return nextTickCmd()
}

// nextTickCmd schedules a refresh at the next wall-clock second boundary so
// the seconds display never visibly skips.
func nextTickCmd() tea.Cmd {
	return tea.Tick(untilNextSecond(time.Now()), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// untilNextSecond returns the wait to the next second boundary, always in
// (0s, 1s].
func untilNextSecond(now time.Time) time.Duration {
	d := now.Truncate(time.Second).Add(time.Second).Sub(now)
	if d <= 0 {
		d = time.Second
	}
	return d
}
