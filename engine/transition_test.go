package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOut(0))
	assert.Equal(t, 1.0, EaseInOut(1))
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-6)
	assert.Less(t, EaseInOut(0.2), 0.2, "slow start")
	assert.Greater(t, EaseInOut(0.8), 0.8, "slow end")

	previous := 0.0
	for x := 0.05; x < 1; x += 0.05 {
		v := EaseInOut(x)
		assert.GreaterOrEqual(t, v, previous)
		previous = v
	}
}

func TestTransitionAt(t *testing.T) {
	start := time.Unix(100, 0)
	tr := Transition{From: 0, To: -100, Start: start, Duration: 200 * time.Millisecond}

	v, done := tr.At(start)
	assert.Equal(t, 0.0, v)
	assert.False(t, done)

	v, done = tr.At(start.Add(100 * time.Millisecond))
	assert.InDelta(t, -50, v, 1e-3)
	assert.False(t, done)

	v, done = tr.At(start.Add(time.Second))
	assert.Equal(t, -100.0, v)
	assert.True(t, done)

	instant := Transition{From: 5, To: 9}
	v, done = instant.At(start)
	assert.Equal(t, 9.0, v)
	assert.True(t, done)
}
