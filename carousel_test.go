package carousel

import (
	"testing"
	"time"

	"github.com/ayn2op/carousel/engine"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestCarousel returns a 26x6 carousel of count cards, each 10 cells wide
// including the border. With arrows and dots the viewport is 20x5 at (3,0).
func newTestCarousel(count int) (*Carousel, *testClock) {
	clock := &testClock{now: time.Unix(1000, 0)}
	c := NewCarousel()
	c.now = clock.Now
	for range count {
		c.AddItem(NewCard("item").SetSize(8, 1))
	}
	c.SetRect(0, 0, 26, 6)
	return c, clock
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func key(k tcell.Key, ch rune) *tcell.EventKey {
	return tcell.NewEventKey(k, ch, tcell.ModNone)
}

func cellAt(screen tcell.Screen, x, y int) rune {
	mainc, _, _, _ := screen.GetContent(x, y)
	return mainc
}

func animation(cmd Command) time.Duration {
	switch c := cmd.(type) {
	case AnimateCommand:
		return c.Duration
	case BatchCommand:
		for _, item := range c {
			if d := animation(item); d > 0 {
				return d
			}
		}
	}
	return 0
}

func TestCarouselMountsOnFirstDraw(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	assert.False(t, c.mounted())
	assert.Nil(t, c.InputHandler(key(tcell.KeyRight, 0)))

	c.Draw(screen)
	require.True(t, c.mounted())
	assert.Equal(t, engine.State{}, c.State())
	assert.Equal(t, rect{x: 3, y: 0, width: 20, height: 5}, c.viewport)
	assert.Equal(t, []float64{10, 10, 10, 10, 10}, c.controller.Table().Sizes())
	assert.Equal(t, engine.BoundaryLimit{Index: 4, Offset: -30}, c.controller.Limit())

	x, y, width, height := c.items[0].GetRect()
	assert.Equal(t, []int{3, 0, 10, 5}, []int{x, y, width, height})
	assert.Equal(t, '╭', cellAt(screen, 3, 0))
	assert.True(t, c.prev.GetDisabled())
	assert.False(t, c.next.GetDisabled())
}

func TestCarouselStartingItem(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	c.SetStartingItemIndex(9)
	c.Draw(screen)
	assert.Equal(t, engine.State{Index: 4, Offset: -30}, c.State())
	assert.True(t, c.next.GetDisabled())
}

func TestCarouselKeysAnimate(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, clock := newTestCarousel(5)
	c.Draw(screen)

	cmd := c.InputHandler(key(tcell.KeyRight, 0))
	assert.Equal(t, engine.State{Index: 1, Offset: -10}, c.State())
	assert.Equal(t, 200*time.Millisecond, animation(cmd))

	c.Draw(screen)
	x, _, _, _ := c.items[1].GetRect()
	assert.Equal(t, 13, x)

	clock.Advance(100 * time.Millisecond)
	c.Draw(screen)
	x, _, _, _ = c.items[1].GetRect()
	assert.Equal(t, 8, x)

	clock.Advance(200 * time.Millisecond)
	c.Draw(screen)
	x, _, _, _ = c.items[1].GetRect()
	assert.Equal(t, 3, x)

	c.InputHandler(key(tcell.KeyRune, 'G'))
	assert.Equal(t, engine.State{Index: 4, Offset: -30}, c.State())
	c.InputHandler(key(tcell.KeyRune, 'h'))
	assert.Equal(t, engine.State{Index: 2, Offset: -20}, c.State())
	c.InputHandler(key(tcell.KeyRune, 'g'))
	assert.Equal(t, engine.State{Index: 0, Offset: 0}, c.State())
	assert.Nil(t, c.InputHandler(key(tcell.KeyRune, 'x')))
}

func TestCarouselArrowButtons(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	c.Draw(screen)

	// The previous arrow is disabled at the start.
	_, cmd := c.MouseHandler(MouseLeftClick, mouse(1, 2, tcell.ButtonNone))
	assert.Nil(t, cmd)
	assert.Equal(t, engine.State{}, c.State())

	_, cmd = c.MouseHandler(MouseLeftClick, mouse(24, 2, tcell.ButtonNone))
	assert.Equal(t, engine.State{Index: 1, Offset: -10}, c.State())
	assert.Positive(t, animation(cmd))
	assert.False(t, c.prev.GetDisabled())

	c.MouseHandler(MouseLeftClick, mouse(24, 2, tcell.ButtonNone))
	c.MouseHandler(MouseLeftClick, mouse(24, 2, tcell.ButtonNone))
	assert.Equal(t, engine.State{Index: 4, Offset: -30}, c.State())
	assert.True(t, c.next.GetDisabled())
}

func TestCarouselDotClick(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	var changes []int
	c.SetChangedFunc(func(index int) { changes = append(changes, index) })
	c.Draw(screen)

	// Five dots span nine cells, centered in the 20 cell row at y=5.
	assert.Equal(t, '●', cellAt(screen, 8, 5))
	c.MouseHandler(MouseLeftClick, mouse(12, 5, tcell.ButtonNone))
	assert.Equal(t, engine.State{Index: 2, Offset: -20}, c.State())
	assert.Equal(t, 2, c.dots.GetCurrent())

	c.MouseHandler(MouseLeftClick, mouse(14, 5, tcell.ButtonNone))
	assert.Equal(t, engine.State{Index: 4, Offset: -30}, c.State())
	assert.Equal(t, []int{2, 4}, changes)
}

func TestCarouselWheel(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	c.Draw(screen)

	c.MouseHandler(MouseScrollDown, mouse(10, 2, tcell.WheelDown))
	assert.Equal(t, 1, c.GetCurrentItem())
	c.MouseHandler(MouseScrollUp, mouse(10, 2, tcell.WheelUp))
	assert.Equal(t, 0, c.GetCurrentItem())
}

func TestCarouselDragCapturesWithoutApplication(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	c.Draw(screen)

	capture, _ := c.MouseHandler(MouseLeftDown, mouse(15, 2, tcell.Button1))
	assert.Equal(t, c, capture)

	capture, _ = c.MouseHandler(MouseMove, mouse(9, 2, tcell.Button1))
	assert.Equal(t, c, capture)
	assert.Equal(t, engine.State{Index: 0, Offset: -6}, c.State())

	capture, cmd := c.MouseHandler(MouseLeftUp, mouse(9, 2, tcell.ButtonNone))
	assert.Nil(t, capture)
	assert.Positive(t, animation(cmd))
	assert.Equal(t, engine.State{Index: 1, Offset: -10}, c.State())
	assert.False(t, c.dragging())
}

func TestCarouselDragThroughApplicationListener(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	c.Draw(screen)
	app := NewApplication().SetRoot(c)
	c.Attach(app)

	app.handleMouse(mouse(15, 2, tcell.Button1))
	require.True(t, c.dragging())

	// The pointer leaves the carousel and keeps dragging.
	app.handleMouse(mouse(5, 20, tcell.Button1))
	assert.Equal(t, engine.State{Index: 0, Offset: -10}, c.State())

	app.handleMouse(mouse(5, 20, tcell.ButtonNone))
	assert.False(t, c.dragging())
	assert.Equal(t, engine.State{Index: 1, Offset: -10}, c.State())
}

func TestCarouselDetachMidDrag(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	c.Draw(screen)
	app := NewApplication().SetRoot(c)
	c.Attach(app)
	subscription := c.subscription

	app.handleMouse(mouse(15, 2, tcell.Button1))
	app.handleMouse(mouse(12, 2, tcell.Button1))
	require.True(t, c.dragging())

	c.Detach()
	assert.False(t, subscription.Active())
	assert.False(t, c.dragging())
	assert.Empty(t, app.listeners)

	// The release goes nowhere.
	assert.False(t, app.handleMouse(mouse(12, 2, tcell.ButtonNone)))

	c.Draw(screen)
	assert.True(t, c.mounted())
	assert.Equal(t, engine.State{}, c.State())
}

func TestCarouselDetachKeepsIndex(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	c.Draw(screen)
	c.InputHandler(key(tcell.KeyRight, 0))

	c.Detach()
	c.Draw(screen)
	assert.Equal(t, engine.State{Index: 1, Offset: -10}, c.State())
}

func TestCarouselClipsItemsToViewport(t *testing.T) {
	screen := newTestScreen(t, 40, 6)
	c, _ := newTestCarousel(5)
	c.SetArrows(false)
	c.Draw(screen)

	assert.Equal(t, rect{x: 0, y: 0, width: 26, height: 5}, c.viewport)
	assert.Equal(t, engine.BoundaryLimit{Index: 4, Offset: -24}, c.controller.Limit())
	// The third card starts at x=20 and is cut at the viewport edge.
	assert.Equal(t, '╭', cellAt(screen, 20, 0))
	assert.Equal(t, '─', cellAt(screen, 25, 0))
	for x := 26; x < 40; x++ {
		assert.Equal(t, ' ', cellAt(screen, x, 0), "x=%d", x)
	}
}

func TestCarouselDegenerate(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(2)
	c.Draw(screen)

	assert.True(t, c.prev.GetDisabled())
	assert.True(t, c.next.GetDisabled())
	c.InputHandler(key(tcell.KeyRight, 0))
	assert.Equal(t, engine.State{}, c.State())
}

func TestCarouselAddItemRemeasures(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(2)
	c.Draw(screen)
	assert.Equal(t, engine.BoundaryLimit{}, c.controller.Limit())

	c.AddItem(NewCard("late").SetSize(8, 1))
	c.Draw(screen)
	assert.Equal(t, engine.BoundaryLimit{Index: 2, Offset: -10}, c.controller.Limit())
	assert.Equal(t, 3, c.dots.GetCount())
}

func TestCarouselVertical(t *testing.T) {
	screen := newTestScreen(t, 20, 12)
	c, _ := newTestCarousel(5)
	c.SetLayout(engine.LayoutVertical)
	c.SetRect(0, 0, 20, 12)
	c.Draw(screen)

	assert.Equal(t, rect{x: 0, y: 1, width: 19, height: 10}, c.viewport)
	assert.Equal(t, engine.BoundaryLimit{Index: 4, Offset: -5}, c.controller.Limit())
	x, y, width, height := c.items[0].GetRect()
	assert.Equal(t, []int{0, 1, 19, 3}, []int{x, y, width, height})
	assert.Equal(t, '▲', cellAt(screen, 10, 0))

	c.InputHandler(key(tcell.KeyDown, 0))
	assert.Equal(t, engine.State{Index: 1, Offset: -3}, c.State())
	c.InputHandler(key(tcell.KeyRune, 'j'))
	assert.Equal(t, engine.State{Index: 4, Offset: -5}, c.State())
	// Horizontal keys do nothing in a vertical carousel.
	assert.Nil(t, c.InputHandler(key(tcell.KeyLeft, 0)))
}

func TestCarouselScrollBar(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	c.SetScrollBar(true)
	c.Draw(screen)

	assert.Equal(t, rect{x: 3, y: 0, width: 20, height: 4}, c.viewport)
	assert.Equal(t, '█', cellAt(screen, 3, 4))
	assert.Equal(t, '─', cellAt(screen, 22, 4))
}

func TestCarouselDeviceFooter(t *testing.T) {
	c, _ := newTestCarousel(1)
	c.SetDevice("mobile")
	assert.Equal(t, "mobile", c.GetDevice())
	assert.Equal(t, "mobile", c.GetFooter())
}

func TestCarouselShortHelp(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	c.Draw(screen)

	enabled := func() []bool {
		var out []bool
		for _, kb := range c.ShortHelp() {
			out = append(out, kb.Enabled())
		}
		return out
	}
	assert.Equal(t, []bool{false, true, false, true}, enabled())
	c.InputHandler(key(tcell.KeyEnd, 0))
	assert.Equal(t, []bool{true, false, true, false}, enabled())
}

func TestCarouselCustomGlyphs(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	c.SetArrowGlyphs("<", ">").SetDotGlyphs("o", "*")
	c.Draw(screen)

	assert.Equal(t, '<', cellAt(screen, 1, 2))
	assert.Equal(t, '>', cellAt(screen, 24, 2))
	assert.Equal(t, '*', cellAt(screen, 8, 5))
	assert.Equal(t, 'o', cellAt(screen, 10, 5))

	// Labels survive later draws and layout changes.
	c.InputHandler(key(tcell.KeyRight, 0))
	c.Draw(screen)
	assert.Equal(t, '<', cellAt(screen, 1, 2))
	assert.Equal(t, 'o', cellAt(screen, 8, 5))
	assert.Equal(t, '*', cellAt(screen, 10, 5))

	// An empty label restores the default.
	c.SetArrowGlyphs("", ">")
	c.Draw(screen)
	assert.Equal(t, '«', cellAt(screen, 1, 2))
	assert.Equal(t, '>', cellAt(screen, 24, 2))
}

func TestCarouselTogglingArrowsRemeasures(t *testing.T) {
	screen := newTestScreen(t, 26, 6)
	c, _ := newTestCarousel(5)
	c.Draw(screen)
	c.InputHandler(key(tcell.KeyEnd, 0))
	require.Equal(t, engine.State{Index: 4, Offset: -30}, c.State())

	c.SetArrows(false)
	c.Draw(screen)
	assert.Equal(t, 26, c.viewport.width)
	assert.Equal(t, engine.BoundaryLimit{Index: 4, Offset: -24}, c.controller.Limit())
	assert.Equal(t, engine.State{Index: 4, Offset: -24}, c.State())

	c.SetArrows(true)
	c.Draw(screen)
	assert.Equal(t, engine.BoundaryLimit{Index: 4, Offset: -30}, c.controller.Limit())
	assert.Equal(t, engine.State{Index: 4, Offset: -30}, c.State())
}
