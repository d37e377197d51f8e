// Package timing provides the frame timestamp type shared by every demo.
//
// A Timestamp is an offset from a clock's epoch. Scenes receive exactly one
// Timestamp per frame and thread it through every transition of that frame.
package timing

import (
	"fmt"
	"time"
)

// Timestamp is a monotonic point in time, measured from a clock epoch.
type Timestamp struct {
	offset time.Duration
}

// At returns the timestamp that lies d after the epoch.
func At(d time.Duration) Timestamp {
	return Timestamp{offset: d}
}

// SinceEpoch returns the offset from the clock epoch.
func (t Timestamp) SinceEpoch() time.Duration {
	return t.offset
}

// Sub returns t - earlier.
// Panics if earlier is after t: the clock must be monotonic.
func (t Timestamp) Sub(earlier Timestamp) time.Duration {
	d := t.offset - earlier.offset
	if d < 0 {
		panic(fmt.Sprintf("timing: timestamp %v is before %v", t.offset, earlier.offset))
	}
	return d
}

// Add returns t shifted forward by d.
func (t Timestamp) Add(d time.Duration) Timestamp {
	return Timestamp{offset: t.offset + d}
}

// Before reports whether t is strictly before u.
func (t Timestamp) Before(u Timestamp) bool {
	return t.offset < u.offset
}

func (t Timestamp) String() string {
	return t.offset.String()
}

// Clock produces frame timestamps.
type Clock interface {
	Now() Timestamp
}

// MonotonicClock reads the runtime's monotonic clock relative to its creation.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock whose epoch is the moment of the call.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the elapsed time since the clock was created.
func (c *MonotonicClock) Now() Timestamp {
	return Timestamp{offset: time.Since(c.start)}
}

// ManualClock is a clock advanced by hand (tests, headless replays).
type ManualClock struct {
	now Timestamp
}

// NewManualClock creates a manual clock starting at the given timestamp.
func NewManualClock(start Timestamp) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() Timestamp {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) Timestamp {
	if d < 0 {
		panic("timing: cannot advance a clock backwards")
	}
	c.now = c.now.Add(d)
	return c.now
}

// Set jumps the clock to t. t must not be before the current time.
func (c *ManualClock) Set(t Timestamp) {
	_ = t.Sub(c.now)
	c.now = t
}
