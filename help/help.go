// Package help renders a single line of key hints for a keybind.KeyMap.
package help

import (
	"github.com/ayn2op/carousel"
	"github.com/ayn2op/carousel/keybind"
	"github.com/gdamore/tcell/v2"
)

// KeyMap returns the keybinds shown by [Help], in display order.
type KeyMap interface {
	ShortHelp() []keybind.Keybind
}

type Help struct {
	*carousel.Box
	Styles Styles

	keyMap    KeyMap
	separator string
	ellipsis  string
}

func New() *Help {
	return &Help{
		Box:       carousel.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  "…",
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	return h
}

func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

func (h *Help) SetStyles(styles Styles) *Help {
	h.Styles = styles
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	if height <= 0 {
		return
	}
	h.drawSegments(screen, x, y, width, h.segments(h.keyMap.ShortHelp(), width))
}

// String renders the help line as plain text limited to maxWidth cells. A
// maxWidth of zero means unlimited.
func (h *Help) String(maxWidth int) string {
	var text string
	for _, s := range h.segments(h.keyMap.ShortHelp(), maxWidth) {
		text += s.text
	}
	return text
}

type segment struct {
	text  string
	style tcell.Style
}

func (h *Help) segments(bindings []keybind.Keybind, maxWidth int) []segment {
	items := make([][]segment, 0, len(bindings))
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		if item := itemSegments(kb, h.Styles.KeyStyle, h.Styles.DescStyle); len(item) > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	sepText := h.separator
	if sepText == "" {
		sepText = " "
	}
	sep := segment{text: sepText, style: h.Styles.SeparatorStyle}

	out := append([]segment(nil), items[0]...)
	if maxWidth > 0 && segmentsWidth(out) > maxWidth {
		return nil
	}
	for _, item := range items[1:] {
		candidate := append(append(append([]segment(nil), out...), sep), item...)
		if maxWidth > 0 && segmentsWidth(candidate) > maxWidth {
			return append(out, h.truncationTail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

// truncationTail returns the ellipsis marker when it fully fits after current.
func (h *Help) truncationTail(current []segment, maxWidth int) []segment {
	if h.ellipsis == "" {
		return nil
	}
	tail := []segment{
		{text: " ", style: h.Styles.EllipsisStyle},
		{text: h.ellipsis, style: h.Styles.EllipsisStyle},
	}
	if segmentsWidth(current)+segmentsWidth(tail) <= maxWidth {
		return tail
	}
	return nil
}

func (h *Help) drawSegments(screen tcell.Screen, x, y, width int, segments []segment) {
	remaining := width
	for _, s := range segments {
		if remaining <= 0 {
			return
		}
		printed := carousel.PrintStyle(screen, s.text, x, y, remaining, carousel.AlignmentLeft, s.style)
		x += printed
		remaining -= printed
	}
}

func itemSegments(kb keybind.Keybind, keyStyle, descStyle tcell.Style) []segment {
	help := kb.Help()
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return []segment{{text: help.Desc, style: descStyle}}
	case help.Desc == "":
		return []segment{{text: help.Key, style: keyStyle}}
	default:
		return []segment{{text: help.Key, style: keyStyle}, {text: " ", style: descStyle}, {text: help.Desc, style: descStyle}}
	}
}

func segmentsWidth(segments []segment) int {
	width := 0
	for _, s := range segments {
		width += carousel.StringWidth(s.text)
	}
	return width
}
