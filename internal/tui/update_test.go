package tui

import (
	"testing"
	"time"

	"github.com/tocktui/tock/internal/clock"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel() *Model {
	m := NewModel(clock.FixedSource{Hour: 9, Minute: 5, Second: 0}, clock.StyleDigital, true, Skin{})
	m.width = 80
	m.height = 24
	return m
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestUpdate_StyleCyclingWraps(t *testing.T) {
	t.Parallel()

	m := testModel()

	for i := 0; i < clock.NumStyles; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if got := m.style; got != clock.StyleDigital {
		t.Fatalf("style after full next cycle = %v, want digital", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.style; got != clock.Style(clock.NumStyles-1) {
		t.Fatalf("style after prev from first = %v, want last", got)
	}
}

func TestUpdate_FooterToggle(t *testing.T) {
	t.Parallel()

	m := testModel()

	m.Update(keyMsg('h'))
	if m.footerVisible {
		t.Fatal("footer still visible after h")
	}
	m.Update(keyMsg('H'))
	if !m.footerVisible {
		t.Fatal("footer hidden after H")
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{
		keyMsg('q'),
		keyMsg('Q'),
		{Type: tea.KeyCtrlC},
	} {
		m := testModel()
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("no command for %q, want quit", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("command for %q = %T, want tea.QuitMsg", msg.String(), cmd())
		}
	}
}

func TestUpdate_UnboundKeyIgnored(t *testing.T) {
	t.Parallel()

	m := testModel()
	before := *m

	_, cmd := m.Update(keyMsg('x'))
	if cmd != nil {
		t.Fatal("unbound key produced a command")
	}
	if m.style != before.style || m.footerVisible != before.footerVisible {
		t.Fatal("unbound key mutated state")
	}
}

func TestUpdate_WindowSizeTracked(t *testing.T) {
	t.Parallel()

	m := testModel()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Fatalf("dimensions = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestUpdate_TickRearms(t *testing.T) {
	t.Parallel()

	m := testModel()
	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick did not re-arm")
	}
}

func TestUntilNextSecond_Bounds(t *testing.T) {
	t.Parallel()

	for _, now := range []time.Time{
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 12, 0, 0, 1, time.UTC),
		time.Date(2026, 8, 30, 12, 0, 0, 999_999_999, time.UTC),
	} {
		d := untilNextSecond(now)
		if d <= 0 || d > time.Second {
			t.Fatalf("untilNextSecond(%v) = %v, want in (0s, 1s]", now, d)
		}
	}
}
