package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard bindings for the terminal demo.
type KeyMap struct {
	Quit  key.Binding
	Reset key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset values"),
		),
	}
}
