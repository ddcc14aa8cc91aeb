package teacarousel

import (
	"github.com/ayn2op/carousel/engine"
	"github.com/charmbracelet/lipgloss"
)

// Option configures a Model.
type Option func(*Model)

func WithConfig(config engine.Config) Option {
	return func(m *Model) {
		m.config = config
	}
}

// WithViewport fixes the viewport size in cells and mounts immediately.
func WithViewport(width, height int) Option {
	return func(m *Model) {
		m.width, m.height = max(width, 0), max(height, 0)
	}
}

func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
		m.keysSet = true
	}
}

// WithItemStyle sets the style every item is rendered with.
func WithItemStyle(style lipgloss.Style) Option {
	return func(m *Model) {
		m.style = style
	}
}

// WithItemStyles sets a style per item. Items without an entry use the style
// from WithItemStyle.
func WithItemStyles(styles ...lipgloss.Style) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithArrowGlyphs replaces the previous and next arrows. In a vertical layout
// they replace the up and down arrows. Glyphs are cut to one cell; empty ones
// keep the default.
func WithArrowGlyphs(prev, next string) Option {
	return func(m *Model) {
		m.glyphs.left = cell(prev, defaultGlyphs.left)
		m.glyphs.right = cell(next, defaultGlyphs.right)
		m.glyphs.up = cell(prev, defaultGlyphs.up)
		m.glyphs.down = cell(next, defaultGlyphs.down)
	}
}

// WithDotGlyphs replaces the inactive and active dot glyphs.
func WithDotGlyphs(dot, active string) Option {
	return func(m *Model) {
		m.glyphs.dot = cell(dot, defaultGlyphs.dot)
		m.glyphs.activeDot = cell(active, defaultGlyphs.activeDot)
	}
}
