package teacarousel

import (
	"github.com/ayn2op/carousel/engine"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the carousel key bindings. It implements help.KeyMap.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns arrow and vim style bindings for the layout.
func DefaultKeyMap(layout engine.Layout) KeyMap {
	km := KeyMap{
		Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first")),
		Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	if layout == engine.LayoutVertical {
		km.Previous = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous"))
		km.Next = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next"))
	}
	return km
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.First, k.Last, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
