// Package budget provides the explicit clock handle that replaces the
// original engine's global_timer.h stopwatch singleton (spec.md §9's
// redesign note: "explicit clock handle instead of global stopwatch").
package budget

import "time"

// Clock reports elapsed time since it was started. Tests can substitute a
// fake Clock to make deadline-dependent code deterministic.
type Clock interface {
	// Elapsed returns the duration since the Clock was created.
	Elapsed() time.Duration
}

// RealClock is a time.Now-backed Clock.
type RealClock struct {
	start time.Time
}

// NewRealClock returns a RealClock started at the current instant.
func NewRealClock() *RealClock { return &RealClock{start: time.Now()} }

// Elapsed implements Clock.
func (c *RealClock) Elapsed() time.Duration { return time.Since(c.start) }

// Deadline wraps a Clock with a fixed time budget and answers whether the
// budget has been exhausted — the single question every island round loop
// and exchange pacing decision needs.
type Deadline struct {
	clock Clock
	limit time.Duration
}

// NewDeadline returns a Deadline that expires `limit` after clock was
// started.
func NewDeadline(clock Clock, limit time.Duration) Deadline {
	return Deadline{clock: clock, limit: limit}
}

// Exhausted reports whether the deadline has passed.
func (d Deadline) Exhausted() bool { return d.clock.Elapsed() >= d.limit }

// Limit returns the total time budget the Deadline was constructed with,
// needed by callers (e.g. island pool-size auto-sizing) that must reason
// about the budget itself rather than just how much of it remains.
func (d Deadline) Limit() time.Duration { return d.limit }

// Remaining returns the time left before the deadline, or 0 if already
// exhausted.
func (d Deadline) Remaining() time.Duration {
	left := d.limit - d.clock.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}
