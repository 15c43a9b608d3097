// Package clock provides an injectable time source and calendar helpers.
// Preset windows are always resolved against an injected Clock so the core
// never reads wall time ambiently
package clock

import "time"

// Clock is the minimal time source seam
type Clock interface {
	Now() time.Time
}

// System reads wall time
type System struct{}

// Now implements Clock
func (System) Now() time.Time { return time.Now() }

// Fixed is a Clock pinned to one instant, handy in tests
type Fixed struct{ T time.Time }

// Now implements Clock
func (f Fixed) Now() time.Time { return f.T }

// StartOfDay returns t truncated to midnight in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last second of t's calendar day
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

// OnDay keeps t's calendar day and replaces the clock component
func OnDay(t time.Time, hour, minute int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, t.Location())
}
