package sim

import "time"

// maxCatchUp caps how many steps one Advance call may report, so a host
// that stalled (window dragged, laptop slept) does not fast-forward the
// board by thousands of generations at once.
const maxCatchUp = 4

// Cadence is a fixed-timestep accumulator that tells the host loop how
// many generation steps are due. The host owns the scheduling primitive
// (frame callback, ticker); the cadence only does the bookkeeping, so
// stopping the host loop stops stepping with nothing left in flight.
type Cadence struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewCadence constructs a cadence targeting the given steps per second.
func NewCadence(tps int) *Cadence {
	c := &Cadence{}
	c.SetTPS(tps)
	return c
}

// SetTPS changes the step rate. Non-positive rates fall back to 10.
func (c *Cadence) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	c.step = time.Second / time.Duration(tps)
}

// TPS returns the current steps-per-second target.
func (c *Cadence) TPS() int {
	return int(time.Second / c.step)
}

// Advance accumulates the time elapsed since the previous call and
// returns how many steps are now due, at most maxCatchUp.
func (c *Cadence) Advance(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	c.accumulator += now.Sub(c.last)
	c.last = now
	due := 0
	for c.accumulator >= c.step && due < maxCatchUp {
		c.accumulator -= c.step
		due++
	}
	if due == maxCatchUp {
		c.accumulator = 0
	}
	return due
}

// Reset drops any accumulated time, e.g. after the session was stopped.
func (c *Cadence) Reset() {
	c.accumulator = 0
	c.last = time.Time{}
}
