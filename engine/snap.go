package engine

// ResolveSnap decides where the group settles after a drag. previousIndex is
// the item the drag started from and delta is the change in group translation
// the drag produced: negative when the group was pulled toward the leading
// edge (revealing higher indices), positive when it was pulled the other way.
//
// The item boundary nearest to the dragged position wins, but any non-zero
// drag moves at least one item. The result never passes the boundary limit.
func ResolveSnap(previousIndex int, delta float64, itemSizes []float64, limit BoundaryLimit) OffsetEntry {
	n := len(itemSizes)
	if n == 0 {
		return OffsetEntry{}
	}
	previousIndex = min(max(previousIndex, 0), n-1)

	index := previousIndex
	switch {
	case delta < 0:
		index = walkForward(previousIndex, -delta, itemSizes)
	case delta > 0:
		index = walkBackward(previousIndex, delta, itemSizes)
	}

	return clampToLimit(index, itemSizes, limit)
}

// walkForward consumes distance item by item starting at previousIndex.
func walkForward(previousIndex int, distance float64, itemSizes []float64) int {
	last := len(itemSizes) - 1
	remaining := distance
	for i := previousIndex; i <= last; i++ {
		before := remaining
		remaining -= sanitizeSize(itemSizes[i])
		if remaining <= 0 {
			if -remaining < before || i == previousIndex {
				return min(i+1, last)
			}
			return i
		}
	}
	return last
}

// walkBackward consumes distance item by item starting at the item before
// previousIndex.
func walkBackward(previousIndex int, distance float64, itemSizes []float64) int {
	remaining := -distance
	for i := previousIndex - 1; i >= 0; i-- {
		before := remaining
		remaining += sanitizeSize(itemSizes[i])
		if remaining >= 0 {
			if remaining < -before || i == previousIndex-1 {
				return i
			}
			return i + 1
		}
	}
	return 0
}

func clampToLimit(index int, itemSizes []float64, limit BoundaryLimit) OffsetEntry {
	if index >= limit.Index {
		return limit.Entry()
	}
	offset := LeadingOffset(itemSizes, index)
	if offset <= limit.Offset+epsilon {
		return limit.Entry()
	}
	return OffsetEntry{Index: index, Offset: offset}
}
