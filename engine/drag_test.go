package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameThrottle(t *testing.T) {
	throttle := NewFrameThrottle(10) // 100ms windows
	start := time.Unix(0, 0)

	assert.True(t, throttle.Allow(start), "first event passes")
	assert.False(t, throttle.Allow(start.Add(50*time.Millisecond)))
	assert.False(t, throttle.Allow(start.Add(100*time.Millisecond)))
	assert.True(t, throttle.Allow(start.Add(130*time.Millisecond)))
	// The window was realigned to 100ms, so 201ms is already the next frame.
	assert.True(t, throttle.Allow(start.Add(201*time.Millisecond)))

	throttle.Reset()
	assert.True(t, throttle.Allow(start.Add(202*time.Millisecond)))
}

func TestFrameThrottleDefaultsInvalidRate(t *testing.T) {
	assert.Equal(t, time.Second/DefaultFPS, NewFrameThrottle(0).Interval())
	assert.Equal(t, time.Second/MaxFPS, NewFrameThrottle(2_000_000_000).Interval())
}

func TestDragTrackerWithoutMove(t *testing.T) {
	tracker := NewDragTracker(30)
	tracker.PointerDown(50, -100)
	require.True(t, tracker.Active())

	_, ok := tracker.PointerUp()
	assert.False(t, ok)
	assert.False(t, tracker.Active())
}

func TestDragTrackerFollowsPointer(t *testing.T) {
	tracker := NewDragTracker(30)
	now := time.Unix(0, 0)

	tracker.PointerDown(100, -50)

	candidate, ok := tracker.PointerMove(90, now)
	require.True(t, ok)
	assert.Equal(t, -60.0, candidate)

	// Same position again: nothing to do.
	_, ok = tracker.PointerMove(90, now.Add(10*time.Millisecond))
	assert.False(t, ok)

	// Inside the frame window the move is coalesced.
	_, ok = tracker.PointerMove(80, now.Add(15*time.Millisecond))
	assert.False(t, ok)
	_, ok = tracker.PointerMove(75, now.Add(20*time.Millisecond))
	assert.False(t, ok)

	candidate, ok = tracker.Pending()
	require.True(t, ok)
	assert.Equal(t, -75.0, candidate, "last position in the window wins")
	_, ok = tracker.Pending()
	assert.False(t, ok)

	candidate, ok = tracker.PointerMove(70, now.Add(80*time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, -80.0, candidate)

	delta, ok := tracker.PointerUp()
	require.True(t, ok)
	assert.Equal(t, 30.0, delta)
	assert.False(t, tracker.Active())
}

func TestDragTrackerIgnoresMovesWhenInactive(t *testing.T) {
	tracker := NewDragTracker(30)
	_, ok := tracker.PointerMove(10, time.Now())
	assert.False(t, ok)
	_, ok = tracker.Pending()
	assert.False(t, ok)
}

func TestDragTrackerReturnToOrigin(t *testing.T) {
	tracker := NewDragTracker(30)
	now := time.Unix(0, 0)
	tracker.PointerDown(100, 0)
	tracker.PointerMove(120, now)
	tracker.PointerMove(100, now.Add(time.Second))

	_, ok := tracker.PointerUp()
	assert.False(t, ok)
}
