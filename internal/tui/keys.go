package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the clock's key bindings with built-in help text.
type KeyMap struct {
	PrevStyle    key.Binding
	NextStyle    key.Binding
	ToggleFooter key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevStyle: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "change style"),
		),
		NextStyle: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("←/→", "change style"),
		),
		ToggleFooter: key.NewBinding(
			key.WithKeys("h", "H"),
			key.WithHelp("h", "hide help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextStyle, k.ToggleFooter, k.Quit}
}

// FullHelp returns all bindings grouped in columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevStyle, k.NextStyle},
		{k.ToggleFooter, k.Quit, k.ForceQuit},
	}
}
