package carousel

import (
	"cmp"
	"math"
	"time"

	"github.com/ayn2op/carousel/engine"
	"github.com/ayn2op/carousel/keybind"
	"github.com/gdamore/tcell/v2"
)

// arrowSize is the number of cells an arrow button takes across the layout
// axis.
const arrowSize = 3

type rect struct {
	x, y, width, height int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.width && y >= r.y && y < r.y+r.height
}

// Carousel shows a row (or column) of items that can be paged with arrow
// buttons, dots, keys and mouse dragging. Items snap to their leading edge.
//
// Geometry is measured when the carousel is first drawn with a non-empty
// viewport. Call [Carousel.Remeasure] after items change size.
type Carousel struct {
	*Box

	config     engine.Config
	controller *engine.Controller
	keyMap     KeyMap
	items      []Primitive

	prev, next    *Button
	arrowGlyphs   [2]string
	dots          *Dots
	scrollBar     *ScrollBar
	showScrollBar bool

	viewport rect

	// Set when the item list changed after mounting.
	remeasure bool
	// Index to restore when the controller is rebuilt after a config change.
	resume int

	transition engine.Transition
	// Longest animation started by the current handler.
	animation time.Duration
	now       func() time.Time

	subscription *Subscription
	changed      func(index int)
}

// NewCarousel returns an empty horizontal carousel with arrows and dots.
func NewCarousel() *Carousel {
	c := &Carousel{
		Box:       NewBox(),
		config:    engine.DefaultConfig(),
		keyMap:    DefaultKeyMap(engine.LayoutHorizontal),
		prev:      NewButton(SemigraphicsLeftGuillemet),
		next:      NewButton(SemigraphicsRightGuillemet),
		dots:      NewDots(0),
		scrollBar: NewScrollBar().SetOrientation(OrientationHorizontal).SetGlyphSet(UnicodeGlyphSet()),
		resume:    -1,
		now:       time.Now,
	}
	c.prev.SetSelectedFunc(func() { c.arrowClick(engine.DirectionPrevious) })
	c.next.SetSelectedFunc(func() { c.arrowClick(engine.DirectionNext) })
	c.dots.SetSelectedFunc(c.dotClick)
	return c
}

// AddItem appends an item. Items implementing [engine.Node] are measured with
// their box model, others by their current rect.
func (c *Carousel) AddItem(item Primitive) *Carousel {
	c.items = append(c.items, item)
	c.dots.SetCount(len(c.items))
	c.remeasure = true
	return c
}

// Clear removes all items.
func (c *Carousel) Clear() *Carousel {
	c.items = nil
	c.dots.SetCount(0)
	c.remeasure = true
	return c
}

func (c *Carousel) GetItemCount() int {
	return len(c.items)
}

// GetConfig returns the current options.
func (c *Carousel) GetConfig() engine.Config {
	return c.config
}

// SetConfig replaces all options at once.
func (c *Carousel) SetConfig(config engine.Config) *Carousel {
	layout := c.config.Layout
	c.config = config.Validate()
	if c.config.Layout != layout {
		c.keyMap = DefaultKeyMap(c.config.Layout)
	}
	c.SetFooter(c.config.Device)
	c.invalidate()
	return c
}

// SetLayout sets the axis items are arranged along.
func (c *Carousel) SetLayout(layout engine.Layout) *Carousel {
	config := c.config
	config.Layout = layout
	return c.SetConfig(config)
}

// SetArrows shows or hides the previous and next buttons.
func (c *Carousel) SetArrows(arrows bool) *Carousel {
	if c.config.Arrows != arrows {
		c.config.Arrows = arrows
		c.remeasure = true
	}
	return c
}

// SetArrowGlyphs replaces the arrow labels. An empty label falls back to the
// default for the layout. Labels wider than three cells are cut.
func (c *Carousel) SetArrowGlyphs(prev, next string) *Carousel {
	c.arrowGlyphs = [2]string{prev, next}
	return c
}

// SetDots shows or hides the item indicators.
func (c *Carousel) SetDots(dots bool) *Carousel {
	if c.config.Dots != dots {
		c.config.Dots = dots
		c.remeasure = true
	}
	return c
}

// SetDotGlyphs replaces the glyphs of inactive and active dots. An empty glyph
// keeps the current one. Each glyph should be one cell wide.
func (c *Carousel) SetDotGlyphs(dot, active string) *Carousel {
	c.dots.SetGlyphs(cmp.Or(dot, c.dots.glyph), cmp.Or(active, c.dots.activeGlyph))
	return c
}

// SetDotStyles sets the styles of inactive and active dots.
func (c *Carousel) SetDotStyles(style, active tcell.Style) *Carousel {
	c.dots.SetStyles(style, active)
	return c
}

// SetInfinite records a snap position for every item, even those that would
// reveal trailing space.
func (c *Carousel) SetInfinite(infinite bool) *Carousel {
	config := c.config
	config.Infinite = infinite
	return c.SetConfig(config)
}

// SetSpeed sets the transition duration in seconds. Zero disables animation.
func (c *Carousel) SetSpeed(seconds float64) *Carousel {
	config := c.config
	config.Speed = seconds
	return c.SetConfig(config)
}

// SetStartingItemIndex sets the item shown when the carousel mounts.
func (c *Carousel) SetStartingItemIndex(index int) *Carousel {
	c.config.StartingItemIndex = max(index, 0)
	return c
}

// SetDevice sets the display-mode tag. It is shown in the footer and does not
// affect geometry.
func (c *Carousel) SetDevice(device string) *Carousel {
	c.config.Device = device
	c.SetFooter(device)
	return c
}

func (c *Carousel) GetDevice() string {
	return c.config.Device
}

// SetScrollBar shows a scroll bar with the position of the viewport.
func (c *Carousel) SetScrollBar(show bool) *Carousel {
	if c.showScrollBar != show {
		c.showScrollBar = show
		c.remeasure = true
	}
	return c
}

func (c *Carousel) SetKeyMap(keyMap KeyMap) *Carousel {
	c.keyMap = keyMap
	return c
}

// SetChangedFunc sets a handler called whenever the current item changes.
func (c *Carousel) SetChangedFunc(handler func(index int)) *Carousel {
	c.changed = handler
	return c
}

// State returns the current index and offset. It is the zero state until the
// carousel has been drawn.
func (c *Carousel) State() engine.State {
	if c.controller == nil {
		return engine.State{}
	}
	return c.controller.State()
}

func (c *Carousel) GetCurrentItem() int {
	return c.State().Index
}

// SetCurrentItem moves to the snap position covering index.
func (c *Carousel) SetCurrentItem(index int) Command {
	if c.controller == nil {
		c.config.StartingItemIndex = max(index, 0)
		return nil
	}
	c.controller.DotClick(index)
	return c.commands()
}

// Remeasure rebuilds the offset table on the next draw.
func (c *Carousel) Remeasure() *Carousel {
	c.remeasure = true
	return c
}

// ShortHelp returns the key bindings, with those that cannot move disabled.
func (c *Carousel) ShortHelp() []keybind.Keybind {
	km := c.keyMap
	if c.controller != nil && c.controller.Mounted() {
		km.Previous.SetEnabled(!c.controller.IsAtStart())
		km.First.SetEnabled(!c.controller.IsAtStart())
		km.Next.SetEnabled(!c.controller.IsAtEnd())
		km.Last.SetEnabled(!c.controller.IsAtEnd())
	}
	return km.ShortHelp()
}

// Attach registers the carousel with app so drags keep tracking the pointer
// outside the carousel. Without it, the carousel captures the mouse instead.
func (c *Carousel) Attach(app *Application) *Carousel {
	if c.subscription != nil {
		c.subscription.Close()
	}
	c.subscription = app.Listen(c.listen)
	return c
}

// Detach removes the application listener and ends any drag in progress. The
// carousel mounts again on its next draw.
func (c *Carousel) Detach() {
	if c.subscription != nil {
		c.subscription.Close()
		c.subscription = nil
	}
	c.invalidate()
}

// invalidate drops the controller, keeping the current index for the next
// mount.
func (c *Carousel) invalidate() {
	if c.controller == nil {
		return
	}
	if c.controller.Mounted() {
		c.resume = c.controller.State().Index
	}
	c.controller.Unmount()
	c.controller = nil
}

func (c *Carousel) axis() engine.Axis {
	return c.config.Layout.Axis()
}

func (c *Carousel) horizontal() bool {
	return c.axis() == engine.AxisHorizontal
}

// layout positions the controls and stores the viewport.
func (c *Carousel) layout() {
	x, y, width, height := c.GetInnerRect()
	horizontal := c.horizontal()

	if c.config.Arrows {
		prev, next := SemigraphicsLeftGuillemet, SemigraphicsRightGuillemet
		if !horizontal {
			prev, next = GeometricBlackUpPointingTriangle, GeometricBlackDownPointingTriangle
		}
		c.prev.SetLabel(cmp.Or(c.arrowGlyphs[0], prev))
		c.next.SetLabel(cmp.Or(c.arrowGlyphs[1], next))
		if horizontal {
			c.prev.SetRect(x, y, arrowSize, height)
			c.next.SetRect(x+width-arrowSize, y, arrowSize, height)
			x += arrowSize
			width -= 2 * arrowSize
		} else {
			c.prev.SetRect(x, y, width, 1)
			c.next.SetRect(x, y+height-1, width, 1)
			y++
			height -= 2
		}
	}

	orientation := OrientationHorizontal
	if !horizontal {
		orientation = OrientationVertical
	}
	if c.config.Dots {
		c.dots.SetOrientation(orientation)
		if horizontal {
			c.dots.SetRect(x, y+height-1, width, 1)
			height--
		} else {
			c.dots.SetRect(x+width-1, y, 1, height)
			width--
		}
	}
	if c.showScrollBar {
		c.scrollBar.SetOrientation(orientation)
		if horizontal {
			c.scrollBar.SetRect(x, y+height-1, width, 1)
			height--
		} else {
			c.scrollBar.SetRect(x+width-1, y, 1, height)
			width--
		}
	}

	c.viewport = rect{x: x, y: y, width: max(width, 0), height: max(height, 0)}
}

func (c *Carousel) viewportLength() float64 {
	if c.horizontal() {
		return float64(c.viewport.width)
	}
	return float64(c.viewport.height)
}

func nodeFor(item Primitive) engine.Node {
	if node, ok := item.(engine.Node); ok {
		return node
	}
	return engine.NodeFunc(func() (engine.Metrics, bool) {
		_, _, width, height := item.GetRect()
		return engine.Metrics{Width: float64(width), Height: float64(height)}, width > 0 || height > 0
	})
}

func (c *Carousel) itemSizes() []float64 {
	nodes := make([]engine.Node, len(c.items))
	for i, item := range c.items {
		nodes[i] = nodeFor(item)
	}
	return engine.MeasureAll(nodes, c.axis(), true)
}

// mount creates and mounts the controller once the viewport has a size.
func (c *Carousel) mount() {
	if c.controller != nil && c.controller.Mounted() {
		if c.remeasure {
			c.controller.Remeasure(c.itemSizes(), c.viewportLength())
			c.remeasure = false
		}
		return
	}

	config := c.config
	if c.resume >= 0 {
		config.StartingItemIndex = c.resume
		c.resume = -1
	}
	c.controller = engine.NewController(config, carouselAnimator{c})
	c.controller.OnChange(c.stateChanged)
	c.controller.Mount(c.itemSizes(), c.viewportLength())
	c.remeasure = false
	c.stateChanged(c.controller.State())
}

func (c *Carousel) stateChanged(state engine.State) {
	previous := c.dots.GetCurrent()
	c.dots.SetCurrent(state.Index)
	c.prev.SetDisabled(!c.config.Infinite && c.controller.IsAtStart())
	c.next.SetDisabled(!c.config.Infinite && c.controller.IsAtEnd())
	if c.changed != nil && previous != state.Index {
		c.changed(state.Index)
	}
}

// displayedOffset returns the group translation for the current frame.
func (c *Carousel) displayedOffset() float64 {
	offset, _ := c.transition.At(c.now())
	return offset
}

// carouselAnimator applies controller offsets to the displayed translation.
type carouselAnimator struct {
	c *Carousel
}

func (a carouselAnimator) JumpTo(offset float64) {
	a.c.transition = engine.Transition{From: offset, To: offset}
}

func (a carouselAnimator) AnimateTo(offset float64, duration time.Duration) {
	now := a.c.now()
	from, _ := a.c.transition.At(now)
	a.c.transition = engine.Transition{From: from, To: offset, Start: now, Duration: duration}
	a.c.animation = max(a.c.animation, duration)
}

// commands returns the redraw request for the current handler, including any
// animation it started.
func (c *Carousel) commands() Command {
	var cmd Command = RedrawCommand{}
	if c.animation > 0 {
		cmd = AppendCommand(cmd, AnimateCommand{Duration: c.animation})
		c.animation = 0
	}
	return cmd
}

// Draw draws this primitive onto the screen.
func (c *Carousel) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)
	c.layout()
	if c.viewport.width <= 0 || c.viewport.height <= 0 {
		return
	}

	c.mount()
	c.controller.Flush()
	offset := c.displayedOffset()

	c.drawItems(screen, offset)

	if c.config.Arrows {
		c.prev.Draw(screen)
		c.next.Draw(screen)
	}
	if c.config.Dots {
		c.dots.Draw(screen)
	}
	if c.showScrollBar {
		table := c.controller.Table()
		c.scrollBar.SetLengths(ScrollLengths{
			ContentLen:  int(math.Round(table.TotalSize())),
			ViewportLen: int(math.Round(table.Viewport())),
		})
		c.scrollBar.SetOffset(int(math.Round(-offset)))
		c.scrollBar.Draw(screen)
	}
}

// drawItems lays the items out along the axis, translated by offset, and
// draws the visible ones clipped to the viewport.
func (c *Carousel) drawItems(screen tcell.Screen, offset float64) {
	v := c.viewport
	clipped := newClippedScreen(screen, v.x, v.y, v.width, v.height)
	sizes := c.controller.Table().Sizes()
	length := c.viewportLength()
	horizontal := c.horizontal()

	var leading float64
	for i, item := range c.items {
		if i >= len(sizes) {
			break
		}
		start := math.Round(offset + leading)
		size := sizes[i]
		leading += size
		if size <= 0 || start >= length || start+size <= 0 {
			continue
		}

		var margin engine.EdgeSizes
		if node, ok := item.(engine.Node); ok {
			if m, ok := node.Metrics(); ok {
				margin = m.Margin
			}
		}
		if horizontal {
			x := v.x + int(start+margin.Left)
			y := v.y + int(margin.Top)
			width := int(math.Round(size - margin.Left - margin.Right))
			height := v.height - int(margin.Top+margin.Bottom)
			item.SetRect(x, y, max(width, 0), max(height, 0))
		} else {
			x := v.x + int(margin.Left)
			y := v.y + int(start+margin.Top)
			width := v.width - int(margin.Left+margin.Right)
			height := int(math.Round(size - margin.Top - margin.Bottom))
			item.SetRect(x, y, max(width, 0), max(height, 0))
		}
		item.Draw(clipped)
	}
}

func (c *Carousel) arrowClick(direction engine.Direction) {
	if c.controller != nil {
		c.controller.ArrowClick(direction)
	}
}

func (c *Carousel) dotClick(index int) {
	if c.controller != nil {
		c.controller.DotClick(index)
	}
}

func (c *Carousel) mounted() bool {
	return c.controller != nil && c.controller.Mounted()
}

func (c *Carousel) dragging() bool {
	return c.mounted() && c.controller.Dragging()
}

func (c *Carousel) axisPosition(event *tcell.EventMouse) float64 {
	x, y := event.Position()
	if c.horizontal() {
		return float64(x)
	}
	return float64(y)
}

// InputHandler handles the navigation keys.
func (c *Carousel) InputHandler(event *tcell.EventKey) Command {
	if !c.mounted() {
		return nil
	}
	switch {
	case keybind.Matches(event, c.keyMap.Previous):
		c.controller.ArrowClick(engine.DirectionPrevious)
	case keybind.Matches(event, c.keyMap.Next):
		c.controller.ArrowClick(engine.DirectionNext)
	case keybind.Matches(event, c.keyMap.First):
		c.controller.First()
	case keybind.Matches(event, c.keyMap.Last):
		c.controller.Last()
	default:
		return nil
	}
	return c.commands()
}

// MouseHandler handles arrow and dot clicks, the wheel, and starts drags
// inside the viewport.
func (c *Carousel) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	switch action {
	case MouseMove, MouseLeftUp:
		// Attached carousels follow the drag through the application listener.
		if c.subscription != nil || !c.dragging() {
			return nil, nil
		}
		cmd := c.listen(action, event)
		if action == MouseMove {
			return c, cmd
		}
		return nil, cmd
	}

	x, y := event.Position()
	if !c.InRect(x, y) {
		return nil, nil
	}

	if c.config.Arrows {
		for _, button := range []*Button{c.prev, c.next} {
			if button.InRect(x, y) {
				_, cmd := button.MouseHandler(action, event)
				return nil, AppendCommand(cmd, c.animationCommand())
			}
		}
	}
	if c.config.Dots && c.dots.InRect(x, y) {
		_, cmd := c.dots.MouseHandler(action, event)
		return nil, AppendCommand(cmd, c.animationCommand())
	}

	if !c.mounted() {
		return nil, nil
	}
	switch action {
	case MouseLeftDown:
		focus := SetFocusCommand{Target: c}
		if !c.viewport.contains(x, y) {
			return nil, focus
		}
		c.controller.PointerDown(c.axisPosition(event))
		if c.subscription == nil {
			return c, AppendCommand(focus, RedrawCommand{})
		}
		return nil, AppendCommand(focus, RedrawCommand{})
	case MouseScrollUp, MouseScrollLeft:
		c.controller.ArrowClick(engine.DirectionPrevious)
		return nil, c.commands()
	case MouseScrollDown, MouseScrollRight:
		c.controller.ArrowClick(engine.DirectionNext)
		return nil, c.commands()
	}
	return nil, nil
}

// animationCommand returns only the animation request, if any.
func (c *Carousel) animationCommand() Command {
	if c.animation <= 0 {
		return nil
	}
	cmd := AnimateCommand{Duration: c.animation}
	c.animation = 0
	return cmd
}

// listen follows an active drag. Moves refused by the frame budget are
// flushed by the redraws of a short animation.
func (c *Carousel) listen(action MouseAction, event *tcell.EventMouse) Command {
	if !c.dragging() {
		return nil
	}
	switch action {
	case MouseMove:
		c.controller.PointerMove(c.axisPosition(event), c.now())
		frame := time.Second / time.Duration(c.controller.Config().FPS)
		return AppendCommand(RedrawCommand{}, AnimateCommand{Duration: 2 * frame})
	case MouseLeftUp:
		c.controller.PointerUp()
		return c.commands()
	}
	return nil
}

var _ Primitive = &Carousel{}
