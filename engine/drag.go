package engine

import "time"

// DragSession is the state of one pointer drag, from pointer-down to
// pointer-up.
type DragSession struct {
	DownPosition         float64
	CurrentPosition      float64
	GroupPositionAtStart float64
	IsActive             bool

	moved   bool
	pending bool
}

// Delta returns how far the pointer travelled since pointer-down, positive
// when it moved toward the leading edge.
func (s DragSession) Delta() float64 {
	return s.DownPosition - s.CurrentPosition
}

// Candidate returns the group translation that follows the pointer.
func (s DragSession) Candidate() float64 {
	return s.GroupPositionAtStart - s.Delta()
}

// DragTracker turns raw pointer positions along the active axis into group
// translations, rate limited to a frame budget.
type DragTracker struct {
	session  DragSession
	throttle *FrameThrottle
}

// NewDragTracker returns an inactive tracker emitting at most fps updates per
// second.
func NewDragTracker(fps int) *DragTracker {
	return &DragTracker{throttle: NewFrameThrottle(fps)}
}

// Active reports whether a drag is in progress.
func (d *DragTracker) Active() bool {
	return d.session.IsActive
}

// Session returns a copy of the current session.
func (d *DragTracker) Session() DragSession {
	return d.session
}

// PointerDown starts a new session at position while the group sits at
// currentOffset.
func (d *DragTracker) PointerDown(position, currentOffset float64) {
	d.session = DragSession{
		DownPosition:         position,
		CurrentPosition:      position,
		GroupPositionAtStart: currentOffset,
		IsActive:             true,
	}
	d.throttle.Reset()
}

// PointerMove records position and returns the candidate translation if this
// move produced a change and the frame budget allows an update. Moves that are
// refused by the budget stay pending; see Pending.
func (d *DragTracker) PointerMove(position float64, now time.Time) (float64, bool) {
	if !d.session.IsActive {
		return 0, false
	}
	changed := position != d.session.CurrentPosition
	d.session.moved = true
	d.session.CurrentPosition = position
	if !changed {
		return 0, false
	}

	if !d.throttle.Allow(now) {
		d.session.pending = true
		return 0, false
	}
	d.session.pending = false
	return d.session.Candidate(), true
}

// Pending returns the newest candidate refused by the frame budget, if any.
// Calling it clears the pending state.
func (d *DragTracker) Pending() (float64, bool) {
	if !d.session.IsActive || !d.session.pending {
		return 0, false
	}
	d.session.pending = false
	return d.session.Candidate(), true
}

// PointerUp ends the session. ok is false if the pointer never moved (or came
// back to where it went down), in which case no drag happened and the caller
// must not snap.
func (d *DragTracker) PointerUp() (finalDelta float64, ok bool) {
	session := d.session
	d.session = DragSession{}
	if !session.IsActive || !session.moved || session.Delta() == 0 {
		return 0, false
	}
	return session.Delta(), true
}

// Cancel drops the session without reporting a drag.
func (d *DragTracker) Cancel() {
	d.session = DragSession{}
}
