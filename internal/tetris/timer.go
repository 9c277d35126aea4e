package tetris

import "time"

// Timer is a repeating elapsed-accumulator timer. It fires on the Advance call
// whose accumulated time reaches the interval and keeps the remainder.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewTimer returns a timer with the given interval. A non-positive interval
// fires on every Advance.
func NewTimer(interval time.Duration) *Timer {
	return &Timer{interval: interval}
}

// Advance adds dt to the accumulator and reports whether the timer fired.
func (t *Timer) Advance(dt time.Duration) bool {
	if t.interval <= 0 {
		return true
	}
	t.elapsed += dt
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed %= t.interval
	return true
}

// Reset clears the accumulator.
func (t *Timer) Reset() {
	t.elapsed = 0
}
