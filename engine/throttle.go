package engine

import "time"

const (
	// DefaultFPS is the default frame budget for pointer-driven updates.
	DefaultFPS = 30
	// MaxFPS bounds the frame budget so that a frame never rounds down to a
	// zero duration.
	MaxFPS = 1000
)

// FrameThrottle limits how often a continuous stream of events is allowed
// through. It does not queue anything: events arriving inside a frame window
// are simply refused.
type FrameThrottle struct {
	interval time.Duration
	then     time.Time
	started  bool
}

// NewFrameThrottle returns a throttle which lets at most fps events per second
// through. Values below 1 fall back to DefaultFPS; values above MaxFPS are
// capped.
func NewFrameThrottle(fps int) *FrameThrottle {
	if fps < 1 {
		fps = DefaultFPS
	}
	fps = min(fps, MaxFPS)
	return &FrameThrottle{interval: time.Second / time.Duration(fps)}
}

// Interval returns the length of one frame window.
func (f *FrameThrottle) Interval() time.Duration {
	return f.interval
}

// Allow reports whether an event at now may pass. The first event always
// passes; after that the window start is realigned to the frame grid so that
// irregular event timing does not drift the effective rate.
func (f *FrameThrottle) Allow(now time.Time) bool {
	if !f.started {
		f.started = true
		f.then = now
		return true
	}
	elapsed := now.Sub(f.then)
	if elapsed <= f.interval {
		return false
	}
	f.then = now.Add(-(elapsed % f.interval))
	return true
}

// Reset forgets the current window so the next event passes.
func (f *FrameThrottle) Reset() {
	f.started = false
	f.then = time.Time{}
}
