package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type animatorCall struct {
	offset   float64
	duration time.Duration
	animated bool
}

type recordingAnimator struct {
	calls []animatorCall
}

func (r *recordingAnimator) JumpTo(offset float64) {
	r.calls = append(r.calls, animatorCall{offset: offset})
}

func (r *recordingAnimator) AnimateTo(offset float64, duration time.Duration) {
	r.calls = append(r.calls, animatorCall{offset: offset, duration: duration, animated: true})
}

func (r *recordingAnimator) last() animatorCall {
	if len(r.calls) == 0 {
		return animatorCall{}
	}
	return r.calls[len(r.calls)-1]
}

var fiveItems = []float64{100, 100, 100, 100, 100}

func newMountedController(t *testing.T, cfg Config) (*Controller, *recordingAnimator) {
	t.Helper()
	animator := &recordingAnimator{}
	c := NewController(cfg, animator)
	c.Mount(fiveItems, 250)
	require.True(t, c.Mounted())
	return c, animator
}

func TestControllerMount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingItemIndex = 2
	c, animator := newMountedController(t, cfg)

	assert.Equal(t, State{Index: 2, Offset: -200}, c.State())
	assert.Equal(t, animatorCall{offset: -200}, animator.last(), "mount jumps without animation")
	assert.Equal(t, BoundaryLimit{Index: 4, Offset: -250}, c.Limit())
}

func TestControllerMountClampsStartingIndex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingItemIndex = 42
	c, _ := newMountedController(t, cfg)
	assert.Equal(t, State{Index: 4, Offset: -250}, c.State())
	assert.True(t, c.IsAtEnd())

	cfg.StartingItemIndex = -3
	c, _ = newMountedController(t, cfg)
	assert.Equal(t, State{Index: 0, Offset: 0}, c.State())
	assert.True(t, c.IsAtStart())
}

func TestControllerArrowClick(t *testing.T) {
	c, animator := newMountedController(t, DefaultConfig())

	assert.False(t, c.ArrowClick(DirectionPrevious), "left arrow at index 0 is a no-op")
	assert.Equal(t, State{}, c.State())

	require.True(t, c.ArrowClick(DirectionNext))
	assert.Equal(t, State{Index: 1, Offset: -100}, c.State())
	assert.Equal(t, animatorCall{offset: -100, duration: 200 * time.Millisecond, animated: true}, animator.last())

	require.True(t, c.ArrowClick(DirectionNext))
	require.True(t, c.ArrowClick(DirectionNext))
	assert.Equal(t, State{Index: 4, Offset: -250}, c.State())
	assert.True(t, c.IsAtEnd())

	calls := len(animator.calls)
	assert.False(t, c.ArrowClick(DirectionNext), "right arrow at the limit is a no-op")
	assert.Equal(t, State{Index: 4, Offset: -250}, c.State())
	assert.Len(t, animator.calls, calls)

	require.True(t, c.ArrowClick(DirectionPrevious))
	assert.Equal(t, State{Index: 2, Offset: -200}, c.State())
}

func TestControllerDotClick(t *testing.T) {
	c, _ := newMountedController(t, DefaultConfig())

	require.True(t, c.DotClick(2))
	assert.Equal(t, State{Index: 2, Offset: -200}, c.State())

	require.True(t, c.DotClick(3))
	assert.Equal(t, State{Index: 4, Offset: -250}, c.State())

	assert.False(t, c.DotClick(4), "already there")
	assert.False(t, c.DotClick(5))
	assert.False(t, c.DotClick(-1))
	assert.Equal(t, State{Index: 4, Offset: -250}, c.State())

	require.True(t, c.First())
	assert.Equal(t, State{}, c.State())
	require.True(t, c.Last())
	assert.Equal(t, State{Index: 4, Offset: -250}, c.State())
}

func TestControllerDragSnapsForward(t *testing.T) {
	c, animator := newMountedController(t, DefaultConfig())
	now := time.Unix(0, 0)

	c.PointerDown(100)
	require.True(t, c.Dragging())
	require.True(t, c.PointerMove(70, now))
	assert.Equal(t, State{Index: 0, Offset: -30}, c.State())
	assert.Equal(t, animatorCall{offset: -30}, animator.last(), "drag follows the pointer instantly")

	require.True(t, c.PointerUp())
	assert.False(t, c.Dragging())
	assert.Equal(t, State{Index: 1, Offset: -100}, c.State())
	assert.True(t, animator.last().animated)
}

func TestControllerDragBackFromLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingItemIndex = 4
	c, _ := newMountedController(t, cfg)
	now := time.Unix(0, 0)

	c.PointerDown(100)
	c.PointerMove(130, now)
	require.True(t, c.PointerUp())
	assert.Equal(t, State{Index: 2, Offset: -200}, c.State())
}

func TestControllerPointerUpWithoutMove(t *testing.T) {
	c, animator := newMountedController(t, DefaultConfig())
	calls := len(animator.calls)

	c.PointerDown(100)
	assert.False(t, c.PointerUp())
	assert.Equal(t, State{}, c.State())
	assert.Len(t, animator.calls, calls, "no snap was invoked")
}

func TestControllerDragIsClamped(t *testing.T) {
	c, _ := newMountedController(t, DefaultConfig())
	now := time.Unix(0, 0)

	c.PointerDown(100)
	assert.False(t, c.PointerMove(180, now), "cannot pull before the first item")
	assert.Equal(t, State{}, c.State())

	c.PointerMove(-400, now.Add(time.Second))
	assert.Equal(t, -250.0, c.State().Offset)
}

func TestControllerFlushAppliesCoalescedMove(t *testing.T) {
	c, _ := newMountedController(t, DefaultConfig())
	now := time.Unix(0, 0)

	c.PointerDown(100)
	require.True(t, c.PointerMove(95, now))
	assert.False(t, c.PointerMove(60, now.Add(time.Millisecond)))
	assert.Equal(t, -5.0, c.State().Offset)

	require.True(t, c.Flush())
	assert.Equal(t, -40.0, c.State().Offset)
	assert.False(t, c.Flush())
}

func TestControllerOnChange(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	var states []State
	c.OnChange(func(s State) { states = append(states, s) })

	c.Mount(fiveItems, 250)
	c.ArrowClick(DirectionNext)
	c.ArrowClick(DirectionPrevious)
	c.ArrowClick(DirectionPrevious)

	assert.Equal(t, []State{{0, 0}, {1, -100}, {0, 0}}, states)
}

func TestControllerUnmountIgnoresInput(t *testing.T) {
	c, _ := newMountedController(t, DefaultConfig())
	c.PointerDown(100)
	c.Unmount()

	assert.False(t, c.Dragging(), "unmount ends the drag")
	assert.False(t, c.ArrowClick(DirectionNext))
	assert.False(t, c.DotClick(2))
	assert.False(t, c.PointerUp())
	assert.Equal(t, State{}, c.State())
}

func TestControllerDegenerateCollection(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	c.Mount([]float64{20, 30}, 250)

	assert.True(t, c.IsAtStart())
	assert.True(t, c.IsAtEnd())
	assert.False(t, c.ArrowClick(DirectionNext))

	c.PointerDown(10)
	c.PointerMove(-50, time.Unix(0, 0))
	c.PointerUp()
	assert.Equal(t, State{}, c.State())

	empty := NewController(DefaultConfig(), nil)
	empty.Mount(nil, 100)
	assert.Equal(t, State{}, empty.State())
	assert.False(t, empty.DotClick(0))
}

func TestControllerRemeasure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingItemIndex = 2
	c, animator := newMountedController(t, cfg)

	c.Remeasure(fiveItems, 400)
	assert.Equal(t, State{Index: 4, Offset: -100}, c.State())
	assert.False(t, animator.last().animated)
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Layout: "diagonal", Speed: -1, FPS: 0, StartingItemIndex: -5}.Validate()
	assert.Equal(t, LayoutHorizontal, cfg.Layout)
	assert.Zero(t, cfg.Speed)
	assert.Equal(t, DefaultFPS, cfg.FPS)
	assert.Zero(t, cfg.StartingItemIndex)
	assert.Equal(t, MaxFPS, Config{FPS: 2_000_000_000}.Validate().FPS)
	assert.Equal(t, AxisVertical, LayoutVertical.Axis())
	assert.Equal(t, 200*time.Millisecond, DefaultConfig().Duration())
}

func TestControllerDragWithHugeFrameRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 2_000_000_000
	c, _ := newMountedController(t, cfg)
	now := time.Unix(0, 0)

	c.PointerDown(100)
	require.NotPanics(t, func() {
		c.PointerMove(90, now)
		c.PointerMove(80, now.Add(2*time.Millisecond))
	})
	assert.Equal(t, -20.0, c.State().Offset)
}

func TestControllerInfiniteDragIsClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Infinite = true
	c, _ := newMountedController(t, cfg)
	now := time.Unix(0, 0)

	c.PointerDown(100)
	assert.False(t, c.PointerMove(400, now), "cannot pull before the first item")
	assert.Equal(t, State{}, c.State())

	c.PointerMove(-1000, now.Add(time.Second))
	assert.Equal(t, -400.0, c.State().Offset)
}
