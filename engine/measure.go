// Package engine implements the geometry and interaction engine behind a
// carousel: item measurement, snap offset tables, drag tracking, snap
// resolution and the navigation state machine. It does not render anything;
// frontends feed it measured sizes and pointer positions and read back the
// current index and offset.
package engine

import "math"

// Axis is the direction along which items are arranged.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// EdgeSizes represents the sizes of edges (top, right, bottom, left).
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// Metrics describes a laid out node. Width and Height are the rendered extent
// which already includes padding.
type Metrics struct {
	Width, Height float64

	Margin  EdgeSizes
	Padding EdgeSizes
	Border  EdgeSizes
}

// Node is anything the measurement code can ask for metrics. ok is false for
// nodes which are not laid out (yet).
type Node interface {
	Metrics() (m Metrics, ok bool)
}

// NodeFunc adapts a plain function to the Node interface.
type NodeFunc func() (Metrics, bool)

// Metrics implements Node.
func (f NodeFunc) Metrics() (Metrics, bool) {
	return f()
}

// Measure returns the size of node along axis: the rendered extent plus
// margin (only if includeMargin is set) minus padding plus border. Missing
// nodes and non-finite values count as zero and the result is never negative.
func Measure(node Node, axis Axis, includeMargin bool) float64 {
	if node == nil {
		return 0
	}
	m, ok := node.Metrics()
	if !ok {
		return 0
	}

	var extent, margin, padding, border float64
	switch axis {
	case AxisVertical:
		extent = finite(m.Height)
		margin = finite(m.Margin.Top) + finite(m.Margin.Bottom)
		padding = finite(m.Padding.Top) + finite(m.Padding.Bottom)
		border = finite(m.Border.Top) + finite(m.Border.Bottom)
	default:
		extent = finite(m.Width)
		margin = finite(m.Margin.Left) + finite(m.Margin.Right)
		padding = finite(m.Padding.Left) + finite(m.Padding.Right)
		border = finite(m.Border.Left) + finite(m.Border.Right)
	}
	if !includeMargin {
		margin = 0
	}

	size := extent + margin - padding + border
	if size < 0 {
		return 0
	}
	return size
}

// MeasureAll measures every node in order.
func MeasureAll(nodes []Node, axis Axis, includeMargin bool) []float64 {
	sizes := make([]float64, len(nodes))
	for i, node := range nodes {
		sizes[i] = Measure(node, axis, includeMargin)
	}
	return sizes
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
