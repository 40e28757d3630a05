package fruitbox

import "time"

// Clock is the round countdown. It only moves when advanced, so freezing
// it outside of play is the caller's job.
type Clock struct {
	total time.Duration
	left  time.Duration
}

// NewClock creates a full clock.
func NewClock(total time.Duration) *Clock {
	return &Clock{total: total, left: total}
}

// Reset refills the clock to its total duration.
func (c *Clock) Reset() {
	c.left = c.total
}

// Advance subtracts dt, flooring at zero. Negative deltas count as zero.
// It reports whether the clock is empty afterwards.
func (c *Clock) Advance(dt time.Duration) bool {
	if dt > 0 {
		c.left = max(0, c.left-dt)
	}
	return c.left == 0
}

// Left returns the remaining time.
func (c *Clock) Left() time.Duration {
	return c.left
}

// Total returns the full round duration.
func (c *Clock) Total() time.Duration {
	return c.total
}

// Fraction returns left/total in [0, 1].
func (c *Clock) Fraction() float64 {
	if c.total <= 0 {
		return 0
	}
	return float64(c.left) / float64(c.total)
}

// Elapsed returns how much of the round has been played.
func (c *Clock) Elapsed() time.Duration {
	return c.total - c.left
}
