package engine

import (
	"math"
	"time"
)

// Transition interpolates a translation from From to To over Duration using
// the CSS ease-in-out timing function.
type Transition struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
}

// At returns the interpolated value at now and whether the transition has
// finished.
func (t Transition) At(now time.Time) (float64, bool) {
	if t.Duration <= 0 {
		return t.To, true
	}
	elapsed := now.Sub(t.Start)
	if elapsed <= 0 {
		return t.From, false
	}
	if elapsed >= t.Duration {
		return t.To, true
	}
	progress := EaseInOut(float64(elapsed) / float64(t.Duration))
	return t.From + (t.To-t.From)*progress, false
}

// EaseInOut evaluates cubic-bezier(.42, 0, .58, 1) at x in [0, 1].
func EaseInOut(x float64) float64 {
	return cubicBezier(0.42, 0, 0.58, 1, x)
}

func cubicBezier(x1, y1, x2, y2, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	bezier := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	slope := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
	}

	// Newton-Raphson first, bisection if the slope gets too flat.
	t := x
	for range 8 {
		diff := bezier(t, x1, x2) - x
		if math.Abs(diff) < 1e-7 {
			return bezier(t, y1, y2)
		}
		d := slope(t, x1, x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= diff / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for range 50 {
		v := bezier(t, x1, x2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezier(t, y1, y2)
}
