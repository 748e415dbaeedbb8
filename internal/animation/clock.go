package animation

import "time"

// Clock supplies the frame time. The driver never reads the wall clock
// itself.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Useful for deterministic sampling.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}
