package carousel

import (
	"strings"

	"github.com/ayn2op/carousel/engine"
	"github.com/gdamore/tcell/v2"
)

// Card is a framed block of wrapped text. It reports its box model to the
// carousel through [engine.Node].
type Card struct {
	*Box

	text      string
	textStyle tcell.Style
	alignment Alignment

	// Preferred content size in cells. Zero means derived from the text.
	width, height int

	marginTop, marginRight, marginBottom, marginLeft int
}

// NewCard returns a card with a rounded border around text.
func NewCard(text string) *Card {
	box := NewBox().SetBorders(BordersAll).SetBorderSet(BorderSetRound())
	return &Card{
		Box:       box,
		text:      text,
		textStyle: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
		alignment: AlignmentLeft,
	}
}

func (c *Card) SetText(text string) *Card {
	c.text = text
	return c
}

func (c *Card) GetText() string {
	return c.text
}

func (c *Card) SetTextStyle(style tcell.Style) *Card {
	c.textStyle = style
	return c
}

func (c *Card) SetAlignment(alignment Alignment) *Card {
	c.alignment = alignment
	return c
}

// SetSize sets the preferred content size. Zero values are derived from the
// text: the widest line for the width, the wrapped line count for the height.
func (c *Card) SetSize(width, height int) *Card {
	c.width, c.height = max(width, 0), max(height, 0)
	return c
}

// SetMargin sets the space kept free around the card. Margins count towards
// the card's footprint in a carousel but are never drawn.
func (c *Card) SetMargin(top, right, bottom, left int) *Card {
	c.marginTop, c.marginRight, c.marginBottom, c.marginLeft = max(top, 0), max(right, 0), max(bottom, 0), max(left, 0)
	return c
}

// contentSize returns the preferred content size.
func (c *Card) contentSize() (int, int) {
	width := c.width
	if width == 0 {
		width = widestLine(c.text)
	}
	height := c.height
	if height == 0 {
		height = len(WordWrap(c.text, width))
	}
	return width, height
}

// Metrics reports the padding inclusive extent plus margin, padding and
// border edges.
func (c *Card) Metrics() (engine.Metrics, bool) {
	width, height := c.contentSize()
	top, bottom, left, right := c.GetBorderPadding()
	borders := c.GetBorders()
	edge := func(flag Borders) float64 {
		if borders.Has(flag) {
			return 1
		}
		return 0
	}
	return engine.Metrics{
		Width:  float64(width + left + right),
		Height: float64(height + top + bottom),
		Margin: engine.EdgeSizes{
			Top:    float64(c.marginTop),
			Right:  float64(c.marginRight),
			Bottom: float64(c.marginBottom),
			Left:   float64(c.marginLeft),
		},
		Padding: engine.EdgeSizes{Top: float64(top), Right: float64(right), Bottom: float64(bottom), Left: float64(left)},
		Border:  engine.EdgeSizes{Top: edge(BordersTop), Right: edge(BordersRight), Bottom: edge(BordersBottom), Left: edge(BordersLeft)},
	}, true
}

// Draw draws this primitive onto the screen.
func (c *Card) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	style := c.textStyle.Background(c.GetBackgroundColor())
	for i, line := range WordWrap(c.text, width) {
		if i >= height {
			break
		}
		PrintStyle(screen, strings.TrimRight(line, " "), x, y+i, width, c.alignment, style)
	}
}

var (
	_ Primitive   = &Card{}
	_ engine.Node = &Card{}
)
