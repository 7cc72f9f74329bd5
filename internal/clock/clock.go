// Package clock throttles the game loop to a fixed frame interval and hands
// out the clamped frame delta.
package clock

import "time"

// Source provides the time operations the frame clock needs.
// Tests swap in a fake to control elapsed time.
type Source interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// System is the Source backed by the standard library.
var System Source = systemSource{}

type systemSource struct{}

func (systemSource) Now() time.Time        { return time.Now() }
func (systemSource) Sleep(d time.Duration) { time.Sleep(d) }

// FrameClock enforces a minimum interval between frames.
type FrameClock struct {
	src      Source
	interval time.Duration
	maxDelta float64
	last     time.Time
}

// New returns a clock whose first frame is measured from now.
func New(src Source, interval time.Duration, maxDelta float64) *FrameClock {
	c := &FrameClock{src: src, interval: interval, maxDelta: maxDelta}
	c.Reset()
	return c
}

// Reset restarts measurement from the current time.
func (c *FrameClock) Reset() {
	c.last = c.src.Now()
}

// Tick blocks until at least the frame interval has passed since the previous
// tick, then returns the elapsed time in seconds, capped at the max delta.
// Elapsed time is counted in whole milliseconds.
func (c *FrameClock) Tick() float64 {
	deadline := c.last.Add(c.interval)
	now := c.src.Now()
	for now.Before(deadline) {
		c.src.Sleep(deadline.Sub(now))
		now = c.src.Now()
	}

	dt := float64(now.Sub(c.last).Milliseconds()) / 1000
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.last = now
	return dt
}

// Interval is the minimum time between ticks.
func (c *FrameClock) Interval() time.Duration {
	return c.interval
}
