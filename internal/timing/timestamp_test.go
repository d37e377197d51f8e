package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp_Sub(t *testing.T) {
	a := At(2 * time.Second)
	b := At(3500 * time.Millisecond)

	assert.Equal(t, 1500*time.Millisecond, b.Sub(a))
	assert.Equal(t, time.Duration(0), a.Sub(a))
}

func TestTimestamp_SubPanicsWhenOutOfOrder(t *testing.T) {
	a := At(2 * time.Second)
	b := At(time.Second)

	assert.Panics(t, func() { b.Sub(a) })
}

func TestTimestamp_AddAndBefore(t *testing.T) {
	a := At(time.Second)
	b := a.Add(250 * time.Millisecond)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.Equal(t, 1250*time.Millisecond, b.SinceEpoch())
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(At(0))

	assert.Equal(t, At(0), c.Now())
	c.Advance(16 * time.Millisecond)
	assert.Equal(t, At(16*time.Millisecond), c.Now())

	c.Set(At(time.Second))
	assert.Equal(t, At(time.Second), c.Now())

	assert.Panics(t, func() { c.Set(At(0)) })
	assert.Panics(t, func() { c.Advance(-time.Millisecond) })
}

func TestMonotonicClock_NeverGoesBackwards(t *testing.T) {
	c := NewMonotonicClock()
	prev := c.Now()
	for i := 0; i < 100; i++ {
		now := c.Now()
		assert.False(t, now.Before(prev))
		prev = now
	}
}
