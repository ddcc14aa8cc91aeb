package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSnap(t *testing.T) {
	five := []float64{100, 100, 100, 100, 100}
	fiveLimit := BoundaryLimit{Index: 4, Offset: -250}
	three := []float64{100, 100, 100}
	threeLimit := BoundaryLimit{Index: 2, Offset: -200}

	tests := []struct {
		name     string
		previous int
		delta    float64
		sizes    []float64
		limit    BoundaryLimit
		want     OffsetEntry
	}{
		{"small drag still moves one item", 0, -30, three, threeLimit, OffsetEntry{1, -100}},
		{"small drag back still moves one item", 2, 30, three, threeLimit, OffsetEntry{1, -100}},
		{"nearer boundary wins going forward", 0, -160, five, fiveLimit, OffsetEntry{2, -200}},
		{"nearer boundary wins going forward, short", 0, -140, five, fiveLimit, OffsetEntry{1, -100}},
		{"nearer boundary wins going back", 3, 160, five, fiveLimit, OffsetEntry{1, -100}},
		{"nearer boundary wins going back, long", 3, 240, five, fiveLimit, OffsetEntry{1, -100}},
		{"walk reaches the first item", 2, 900, five, fiveLimit, OffsetEntry{0, 0}},
		{"cannot move before the first item", 0, 30, five, fiveLimit, OffsetEntry{0, 0}},
		{"forward past the limit snaps to the limit", 1, -180, five, fiveLimit, OffsetEntry{4, -250}},
		{"forward beyond the last item", 0, -5000, five, fiveLimit, OffsetEntry{4, -250}},
		{"zero delta keeps the item", 2, 0, five, fiveLimit, OffsetEntry{2, -200}},
		{"degenerate limit pins everything", 0, -80, []float64{50, 50}, BoundaryLimit{}, OffsetEntry{0, 0}},
		{"no items", 0, -30, nil, BoundaryLimit{}, OffsetEntry{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSnap(tt.previous, tt.delta, tt.sizes, tt.limit))
		})
	}
}

func TestResolveSnapMovesAtLeastOneItem(t *testing.T) {
	sizes := []float64{40, 60, 80, 60, 40, 90, 70}
	_, limit := BuildOffsets(sizes, 100, false)

	for previous := 0; previous < limit.Index; previous++ {
		for _, delta := range []float64{-0.5, -1, -10, -39} {
			got := ResolveSnap(previous, delta, sizes, limit)
			assert.Greater(t, got.Index, previous, "previous %d delta %v", previous, delta)
		}
	}
	for previous := 1; previous <= limit.Index; previous++ {
		for _, delta := range []float64{0.5, 1, 10, 39} {
			got := ResolveSnap(previous, delta, sizes, limit)
			assert.Less(t, got.Index, previous, "previous %d delta %v", previous, delta)
		}
	}
}

func TestResolveSnapStaysWithinLimit(t *testing.T) {
	sizes := []float64{30, 70, 20, 90, 50, 10}
	_, limit := BuildOffsets(sizes, 120, false)

	for previous := -2; previous < len(sizes)+2; previous++ {
		for delta := -400.0; delta <= 400; delta += 7 {
			got := ResolveSnap(previous, delta, sizes, limit)
			assert.GreaterOrEqual(t, got.Index, 0)
			assert.LessOrEqual(t, got.Index, limit.Index)
			assert.LessOrEqual(t, got.Offset, 0.0)
			assert.GreaterOrEqual(t, got.Offset, limit.Offset)
		}
	}
}
