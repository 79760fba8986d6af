// Package schedule provides the deferred continuations that drive the kiosk
// state machines. Every callback runs on a single logical thread: either the
// goroutine of a Loop, or the goroutine that advances a Manual clock.
package schedule

import "time"

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}

// Timer is a pending continuation.
type Timer interface {
	// Stop prevents the continuation from running. It reports whether the
	// call stopped it; false means it already ran or was already stopped.
	Stop() bool
}
