package teacarousel

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	arrowStyle         = lipgloss.NewStyle().Foreground(highlight).Bold(true)
	disabledArrowStyle = lipgloss.NewStyle().Foreground(subtle)
	dotStyle           = lipgloss.NewStyle().Foreground(subtle)
	activeDotStyle     = lipgloss.NewStyle().Foreground(highlight)

	// DefaultItemStyle frames every item with a rounded border.
	DefaultItemStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(highlight)
)

// glyphs are the one cell wide arrow and dot symbols.
type glyphs struct {
	left, right, up, down string
	dot, activeDot        string
}

var defaultGlyphs = glyphs{
	left:      "«",
	right:     "»",
	up:        "▲",
	down:      "▼",
	dot:       "●",
	activeDot: "●",
}

// cell cuts s to a single cell, keeping fallback when s is empty.
func cell(s, fallback string) string {
	if s = ansi.Truncate(s, 1, ""); s == "" {
		return fallback
	}
	return s
}
