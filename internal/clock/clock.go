// Package clock provides an abstraction for time operations to improve testability.
// The run report's elapsed-time figure comes from a Clock so tests can pin it
// instead of sleeping.
package clock

import "time"

// Clock is an interface for time operations.
// This allows code to be tested with mock clocks.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Since returns the time elapsed since t.
	Since(t time.Time) time.Duration
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the elapsed wall-clock time since t.
func (RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Fixed implements Clock with a pinned instant. Now always returns the
// same time and Since measures against it, which keeps duration
// assertions in tests deterministic.
type Fixed struct {
	Instant time.Time
}

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return f.Instant
}

// Since returns the difference between the pinned instant and t.
func (f Fixed) Since(t time.Time) time.Duration {
	return f.Instant.Sub(t)
}

// Ensure both implementations satisfy Clock.
var (
	_ Clock = RealClock{}
	_ Clock = Fixed{}
)
