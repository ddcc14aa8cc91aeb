package engine

import "time"

// Layout selects the axis items are arranged along.
type Layout string

const (
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
)

// Axis returns the measurement axis for the layout.
func (l Layout) Axis() Axis {
	if l == LayoutVertical {
		return AxisVertical
	}
	return AxisHorizontal
}

// Config holds the carousel options.
type Config struct {
	Layout Layout
	Arrows bool
	Dots   bool
	// Infinite records a snap position for every item. Wraparound itself is
	// not implemented.
	Infinite bool
	// Speed is the transition duration in seconds. Zero disables animation.
	Speed             float64
	StartingItemIndex int
	// Device is a display-mode tag and has no effect on geometry.
	Device string
	// FPS is the frame budget for drag updates.
	FPS int
}

// DefaultConfig returns the default options.
func DefaultConfig() Config {
	return Config{
		Layout: LayoutHorizontal,
		Arrows: true,
		Dots:   true,
		Speed:  0.2,
		FPS:    DefaultFPS,
	}
}

// Validate returns a copy of c with out of range values replaced. The
// starting index is clamped at mount time, when the item count is known.
func (c Config) Validate() Config {
	if c.Layout != LayoutVertical {
		c.Layout = LayoutHorizontal
	}
	if c.Speed < 0 {
		c.Speed = 0
	}
	if c.FPS < 1 {
		c.FPS = DefaultFPS
	}
	c.FPS = min(c.FPS, MaxFPS)
	if c.StartingItemIndex < 0 {
		c.StartingItemIndex = 0
	}
	return c
}

// Duration returns Speed as a duration.
func (c Config) Duration() time.Duration {
	return time.Duration(c.Speed * float64(time.Second))
}
