// Package keybind matches tcell key events against named key bindings.
//
// Keys are written the way they are shown to users: "left", "home", "ctrl+c"
// or a single character such as "G". Single characters are case sensitive.
package keybind

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Keybind is a set of keys with the help text shown for it. A disabled
// keybind never matches and is left out of help output.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Help is the text shown for a keybind.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.keys = k.keys[:0]
		for _, key := range keys {
			if key = normalizeKey(key); key != "" {
				k.keys = append(k.keys, key)
			}
		}
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

func (k Keybind) Keys() []string {
	return k.keys
}

func (k Keybind) Help() Help {
	return k.help
}

func (k Keybind) Enabled() bool {
	return !k.disabled
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether the event's key belongs to one of the enabled
// keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	key := eventKey(event)
	for _, kb := range keybinds {
		if kb.Enabled() && slices.Contains(kb.keys, key) {
			return true
		}
	}
	return false
}

var aliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"control":  "ctrl",
	"backtab":  "shift+tab",
}

// normalizeKey lowercases named keys and modifiers, and orders modifiers as
// ctrl, alt, shift.
func normalizeKey(key string) string {
	parts := strings.Split(strings.TrimSpace(key), "+")
	primary := strings.TrimSpace(parts[len(parts)-1])
	if primary == "" {
		return ""
	}
	if len([]rune(primary)) > 1 {
		primary = strings.ToLower(primary)
		primary = cmp.Or(aliases[primary], primary)
	}

	var ctrl, alt, shift bool
	for _, mod := range parts[:len(parts)-1] {
		switch m := strings.ToLower(strings.TrimSpace(mod)); cmp.Or(aliases[m], m) {
		case "ctrl":
			ctrl = true
		case "alt":
			alt = true
		case "shift":
			shift = true
		}
	}
	if (ctrl || alt) && len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	return withModifiers(primary, ctrl, alt, shift)
}

func withModifiers(primary string, ctrl, alt, shift bool) string {
	if shift && strings.HasPrefix(primary, "shift+") {
		shift = false
	}
	var b strings.Builder
	if ctrl {
		b.WriteString("ctrl+")
	}
	if alt {
		b.WriteString("alt+")
	}
	if shift {
		b.WriteString("shift+")
	}
	b.WriteString(primary)
	return b.String()
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
}

// eventKey returns the binding string of a key event.
func eventKey(event *tcell.EventKey) string {
	key := event.Key()
	mods := event.Modifiers()

	// Enter, tab and backspace share codes with ctrl+m, ctrl+i and ctrl+h, so
	// named keys are looked up first.
	if name, ok := keyNames[key]; ok {
		return withModifiers(name, mods&tcell.ModCtrl != 0, mods&tcell.ModAlt != 0, mods&tcell.ModShift != 0)
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}
	if key == tcell.KeyRune {
		// Shift is already part of the rune.
		return withModifiers(string(event.Rune()), false, mods&tcell.ModAlt != 0, false)
	}
	return normalizeKey(event.Name())
}
