package testutil

import "time"

// Clock is a manually advanced time source.
type Clock struct {
	T time.Time
}

// NewClock starts a clock at the given Unix millisecond.
func NewClock(ms int64) *Clock {
	return &Clock{T: time.UnixMilli(ms)}
}

// Now returns the current time.
func (c *Clock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
