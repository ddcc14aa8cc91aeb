package engine

import "math"

// epsilon absorbs floating point noise when offsets built from running sums
// are compared with each other.
const epsilon = 1e-9

// OffsetEntry is one snap position: the translation (always <= 0) that puts
// item Index flush with the leading edge of the viewport.
type OffsetEntry struct {
	Index  int
	Offset float64
}

// BoundaryLimit is the last valid snap position. Scrolling past it would
// reveal empty space after the last item.
type BoundaryLimit OffsetEntry

// Entry returns the limit as a regular offset entry.
func (l BoundaryLimit) Entry() OffsetEntry {
	return OffsetEntry(l)
}

// BuildOffsets walks the items from the leading edge and records a snap
// position for every item that can be aligned with the leading edge without
// revealing trailing space (or for every item when infinite is set). The table
// always ends at the last item flush with the trailing edge, and that final
// entry is returned as the boundary limit.
//
// A collection which fits into the viewport cannot scroll; it yields the single
// entry {0, 0}, which is also the limit.
func BuildOffsets(itemSizes []float64, viewportSize float64, infinite bool) ([]OffsetEntry, BoundaryLimit) {
	n := len(itemSizes)
	if n == 0 {
		return []OffsetEntry{{}}, BoundaryLimit{}
	}

	total := 0.0
	for _, size := range itemSizes {
		total += sanitizeSize(size)
	}
	limitOffset := finite(viewportSize) - total

	if infinite {
		entries := make([]OffsetEntry, 0, n)
		offset := 0.0
		for i, size := range itemSizes {
			entries = append(entries, OffsetEntry{Index: i, Offset: offset})
			offset -= sanitizeSize(size)
		}
		return entries, BoundaryLimit(entries[n-1])
	}

	if limitOffset >= -epsilon {
		return []OffsetEntry{{}}, BoundaryLimit{}
	}

	entries := make([]OffsetEntry, 0, n)
	offset := 0.0
	for i, size := range itemSizes {
		if offset >= limitOffset-epsilon {
			entries = append(entries, OffsetEntry{Index: i, Offset: offset})
		}
		offset -= sanitizeSize(size)
	}

	// The first entry (offset 0) is always recorded because the limit is
	// negative here, so entries is never empty.
	last := &entries[len(entries)-1]
	switch {
	case math.Abs(last.Offset-limitOffset) <= epsilon:
		last.Index = n - 1
		last.Offset = limitOffset
	case last.Index == n-1:
		// The last item is larger than the viewport. Align its trailing edge.
		last.Offset = limitOffset
	default:
		// The last recorded entry stays a snap position of its own.
		entries = append(entries, OffsetEntry{Index: n - 1, Offset: limitOffset})
	}

	return entries, BoundaryLimit(entries[len(entries)-1])
}

// IndexAtOffset returns the first item whose leading edge sits at or beyond
// the given translation. For offsets produced by snapping this is the item
// flush with the leading edge; for the boundary limit it is the first item
// which is at least partially cut off.
func IndexAtOffset(itemSizes []float64, offset float64) int {
	if len(itemSizes) == 0 {
		return 0
	}
	leading := 0.0
	for i, size := range itemSizes {
		if leading <= offset+epsilon {
			return i
		}
		leading -= sanitizeSize(size)
	}
	return len(itemSizes) - 1
}

// LeadingOffset returns the translation which puts item index flush with the
// leading edge, ignoring any boundary.
func LeadingOffset(itemSizes []float64, index int) float64 {
	offset := 0.0
	for i := 0; i < index && i < len(itemSizes); i++ {
		offset -= sanitizeSize(itemSizes[i])
	}
	return offset
}

// Table is an immutable offset table together with the sizes it was built
// from.
type Table struct {
	sizes    []float64
	viewport float64
	entries  []OffsetEntry
	limit    BoundaryLimit
}

// NewTable builds the offset table for the given sizes.
func NewTable(itemSizes []float64, viewportSize float64, infinite bool) *Table {
	sizes := make([]float64, len(itemSizes))
	for i, size := range itemSizes {
		sizes[i] = sanitizeSize(size)
	}
	entries, limit := BuildOffsets(sizes, viewportSize, infinite)
	return &Table{
		sizes:    sizes,
		viewport: finite(viewportSize),
		entries:  entries,
		limit:    limit,
	}
}

// Sizes returns a copy of the measured item sizes.
func (t *Table) Sizes() []float64 {
	return append([]float64(nil), t.sizes...)
}

// Viewport returns the viewport size the table was built for.
func (t *Table) Viewport() float64 {
	return t.viewport
}

// TotalSize returns the summed size of all items.
func (t *Table) TotalSize() float64 {
	total := 0.0
	for _, size := range t.sizes {
		total += size
	}
	return total
}

// ItemCount returns the number of measured items.
func (t *Table) ItemCount() int {
	return len(t.sizes)
}

// Entries returns a copy of the snap positions.
func (t *Table) Entries() []OffsetEntry {
	return append([]OffsetEntry(nil), t.entries...)
}

// Limit returns the boundary limit.
func (t *Table) Limit() BoundaryLimit {
	return t.limit
}

// Len returns the number of snap positions.
func (t *Table) Len() int {
	return len(t.entries)
}

// At returns the snap position at pos.
func (t *Table) At(pos int) (OffsetEntry, bool) {
	if pos < 0 || pos >= len(t.entries) {
		return OffsetEntry{}, false
	}
	return t.entries[pos], true
}

// Position returns the position of the first snap entry covering item index,
// or -1 if index is not reachable.
func (t *Table) Position(index int) int {
	if index < 0 || index > t.limit.Index {
		return -1
	}
	for pos, entry := range t.entries {
		if entry.Index >= index {
			return pos
		}
	}
	return -1
}

// Entry returns the snap entry covering item index.
func (t *Table) Entry(index int) (OffsetEntry, bool) {
	return t.At(t.Position(index))
}

// Clamp limits offset to the scrollable range [limit, 0]. Infinite tables
// clamp too; they only differ in which positions are recorded.
func (t *Table) Clamp(offset float64) float64 {
	return min(max(offset, t.limit.Offset), 0)
}

func sanitizeSize(size float64) float64 {
	size = finite(size)
	if size < 0 {
		return 0
	}
	return size
}
