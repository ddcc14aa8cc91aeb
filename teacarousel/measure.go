package teacarousel

import (
	"github.com/ayn2op/carousel/engine"
	"github.com/charmbracelet/lipgloss"
)

// styledItem adapts a lipgloss-rendered item to engine.Node. The reported
// extent is the padding box: rendered size without margins and borders.
type styledItem struct {
	style lipgloss.Style
	text  string
}

func (s styledItem) Metrics() (engine.Metrics, bool) {
	rendered := s.style.Render(s.text)
	mt, mr, mb, ml := s.style.GetMargin()
	pt, pr, pb, pl := s.style.GetPadding()
	bt, br, bb, bl := s.style.GetBorderTopSize(), s.style.GetBorderRightSize(), s.style.GetBorderBottomSize(), s.style.GetBorderLeftSize()

	width := lipgloss.Width(rendered) - s.style.GetHorizontalMargins() - s.style.GetHorizontalBorderSize()
	height := lipgloss.Height(rendered) - s.style.GetVerticalMargins() - s.style.GetVerticalBorderSize()
	return engine.Metrics{
		Width:   float64(max(width, 0)),
		Height:  float64(max(height, 0)),
		Margin:  edges(mt, mr, mb, ml),
		Padding: edges(pt, pr, pb, pl),
		Border:  edges(bt, br, bb, bl),
	}, true
}

func edges(top, right, bottom, left int) engine.EdgeSizes {
	return engine.EdgeSizes{Top: float64(top), Right: float64(right), Bottom: float64(bottom), Left: float64(left)}
}
