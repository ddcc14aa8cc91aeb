package carousel

import "github.com/gdamore/tcell/v2"

// Dots shows one indicator per item and highlights the current one. Clicking a
// dot reports its index to the selected func.
type Dots struct {
	*Box

	count       int
	current     int
	orientation Orientation

	glyph       string
	activeGlyph string
	style       tcell.Style
	activeStyle tcell.Style

	selected func(index int)
}

// NewDots returns a horizontal dot row for count items.
func NewDots(count int) *Dots {
	return &Dots{
		Box:         NewBox(),
		count:       max(count, 0),
		glyph:       GeometricBlackCircle,
		activeGlyph: GeometricBlackCircle,
		style:       tcell.StyleDefault.Foreground(Styles.DotColor),
		activeStyle: tcell.StyleDefault.Foreground(Styles.ActiveDotColor).Bold(true),
	}
}

func (d *Dots) SetCount(count int) *Dots {
	d.count = max(count, 0)
	return d
}

func (d *Dots) GetCount() int {
	return d.count
}

// SetCurrent sets the highlighted dot.
func (d *Dots) SetCurrent(index int) *Dots {
	d.current = index
	return d
}

func (d *Dots) GetCurrent() int {
	return d.current
}

func (d *Dots) SetOrientation(orientation Orientation) *Dots {
	d.orientation = orientation
	return d
}

// SetGlyphs sets the glyphs of inactive and active dots.
func (d *Dots) SetGlyphs(glyph, active string) *Dots {
	d.glyph, d.activeGlyph = glyph, active
	return d
}

// SetStyles sets the styles of inactive and active dots.
func (d *Dots) SetStyles(style, active tcell.Style) *Dots {
	d.style, d.activeStyle = style, active
	return d
}

// SetSelectedFunc sets the handler called with the index of a clicked dot.
func (d *Dots) SetSelectedFunc(handler func(index int)) *Dots {
	d.selected = handler
	return d
}

// origin returns the cell of the first dot. Horizontal dots are spaced one
// cell apart and centered in the inner rect.
func (d *Dots) origin() (int, int) {
	x, y, width, height := d.GetInnerRect()
	if d.orientation == OrientationVertical {
		return x + width/2, y + max(height-d.count, 0)/2
	}
	return x + max(width-(2*d.count-1), 0)/2, y + height/2
}

// indexAt returns the dot under the given screen cell.
func (d *Dots) indexAt(x, y int) (int, bool) {
	if d.count == 0 || !d.InInnerRect(x, y) {
		return 0, false
	}
	ox, oy := d.origin()
	var index int
	if d.orientation == OrientationVertical {
		if x != ox {
			return 0, false
		}
		index = y - oy
	} else {
		if y != oy || (x-ox)%2 != 0 {
			return 0, false
		}
		index = (x - ox) / 2
	}
	if index < 0 || index >= d.count {
		return 0, false
	}
	return index, true
}

// Draw draws this primitive onto the screen.
func (d *Dots) Draw(screen tcell.Screen) {
	d.DrawForSubclass(screen, d)

	x, y, width, height := d.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	ox, oy := d.origin()
	for i := range d.count {
		glyph, style := d.glyph, d.style
		if i == d.current {
			glyph, style = d.activeGlyph, d.activeStyle
		}
		cx, cy := ox+2*i, oy
		if d.orientation == OrientationVertical {
			cx, cy = ox, oy+i
		}
		if cx >= x+width || cy >= y+height {
			break
		}
		setCell(screen, cx, cy, glyph, style.Background(d.GetBackgroundColor()))
	}
}

// MouseHandler reports clicks on a dot.
func (d *Dots) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action != MouseLeftClick {
		return nil, nil
	}
	index, ok := d.indexAt(event.Position())
	if !ok {
		return nil, nil
	}
	if d.selected != nil {
		d.selected(index)
	}
	return nil, RedrawCommand{}
}

var _ Primitive = &Dots{}
