package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case TickMsg:
		// The view re-reads the clock source on every render; the tick
		// only needs to trigger a repaint and re-arm itself.
		return m, nextTickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey applies a key press to the UI state. Unbound keys are ignored.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit), key.Matches(msg, k.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, k.PrevStyle):
		m.style = m.style.Prev()

	case key.Matches(msg, k.NextStyle):
		m.style = m.style.Next()

	case key.Matches(msg, k.ToggleFooter):
		m.footerVisible = !m.footerVisible
	}

	return m, nil
}
