// Package scheduler drives frame and spawn callbacks from elapsed time.
// Hosts without a timer of their own (the Ebiten window, the headless
// simulator) feed it frame deltas; nothing here reads the wall clock.
package scheduler

import "time"

// Interval fires once per period of accumulated time. It is inert until
// started and, once started, is never cancelled.
type Interval struct {
	period  time.Duration
	acc     time.Duration
	running bool
	fired   uint64
}

// NewInterval creates a stopped interval. Non-positive periods are treated
// as one nanosecond.
func NewInterval(period time.Duration) *Interval {
	if period <= 0 {
		period = time.Nanosecond
	}
	return &Interval{period: period}
}

// Start begins accumulating time. Later calls are no-ops and report false.
func (i *Interval) Start() bool {
	if i.running {
		return false
	}
	i.running = true
	return true
}

// Running reports whether Start has been called.
func (i *Interval) Running() bool {
	return i.running
}

// Period returns the firing period.
func (i *Interval) Period() time.Duration {
	return i.period
}

// Fired returns how many times the interval has fired.
func (i *Interval) Fired() uint64 {
	return i.fired
}

// Advance adds elapsed time and returns how many periods completed.
// A stopped interval ignores time.
func (i *Interval) Advance(elapsed time.Duration) int {
	if !i.running || elapsed <= 0 {
		return 0
	}
	i.acc += elapsed
	n := int(i.acc / i.period)
	i.acc -= time.Duration(n) * i.period
	i.fired += uint64(n)
	return n
}
