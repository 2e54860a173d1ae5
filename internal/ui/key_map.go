package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the transport surface.
type keyMap struct {
	toggle   key.Binding
	stop     key.Binding
	previous key.Binding
	next     key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		stop:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.toggle, k.stop, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.toggle, k.stop},
		{k.previous, k.next},
		{k.quit},
	}
}
