package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the preview key bindings.
type KeyMap struct {
	Widen  key.Binding
	Narrow key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Widen:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "widen")),
		Narrow: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "narrow")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}
