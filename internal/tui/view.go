package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the full frame: the active style's lines centered in the
// window, with the help footer on the bottom row when visible.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Starting clock..."
	}

	lines := m.style.Render(m.source.Now())
	styled := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		styled[i] = m.skin.Clock.Render(line)
	}

	// The footer row is carved off before centering so it never shifts the
	// main block.
	mainHeight := m.height
	showFooter := m.footerVisible && m.height > 1
	if showFooter {
		mainHeight--
	}

	rows := centerFrame(styled, m.width, mainHeight)
	if showFooter {
		rows = append(rows, m.footerLine())
	}
	return strings.Join(rows, "\n")
}

// footerLine renders the key help centered on the bottom row.
func (m *Model) footerLine() string {
	f := m.help.ShortHelpView(m.keys.ShortHelp())
	return strings.Repeat(" ", centerCol(m.width, lipgloss.Width(f))) + f
}
