// Package schedule runs delayed actions that can be cancelled before they fire.
package schedule

import "time"

// Timer is a handle to a pending action.
type Timer interface {
	// Stop cancels the action. It reports whether the call prevented the
	// action from running.
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
// Implementations: Clock (wall time), Manual (tests and deterministic replay)
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Clock schedules against the wall clock using time.AfterFunc.
// Callbacks run on their own goroutine.
type Clock struct{}

// NewClock returns a wall-clock scheduler.
func NewClock() Clock {
	return Clock{}
}

// AfterFunc implements Scheduler.
func (Clock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
