package carousel

import (
	"github.com/ayn2op/carousel/engine"
	"github.com/ayn2op/carousel/keybind"
)

// KeyMap holds the carousel's key bindings.
type KeyMap struct {
	Previous keybind.Keybind
	Next     keybind.Keybind
	First    keybind.Keybind
	Last     keybind.Keybind
}

// DefaultKeyMap returns arrow and vim style bindings for the given layout.
func DefaultKeyMap(layout engine.Layout) KeyMap {
	if layout == engine.LayoutVertical {
		return KeyMap{
			Previous: keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "previous")),
			Next:     keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "next")),
			First:    keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("home/g", "first")),
			Last:     keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("end/G", "last")),
		}
	}
	return KeyMap{
		Previous: keybind.NewKeybind(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "previous")),
		Next:     keybind.NewKeybind(keybind.WithKeys("right", "l"), keybind.WithHelp("→/l", "next")),
		First:    keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("home/g", "first")),
		Last:     keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("end/G", "last")),
	}
}

// ShortHelp returns the bindings in display order.
func (k KeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Previous, k.Next, k.First, k.Last}
}
