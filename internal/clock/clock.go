// Package clock supplies the engine's notion of "now" and "today".
//
// Every date-sensitive computation (streak day comparisons, daily-goal
// bucketing, time-of-day badges) goes through an injected Clock rather
// than reading the system time directly, so a day offset can be applied
// for development and so tests can run in parallel without shared state.
package clock

import "time"

// DateLayout is the calendar-date format used throughout the engine.
const DateLayout = "2006-01-02"

// Clock resolves the current time, optionally shifted by a whole number
// of days. The zero value is a real-time clock with no offset.
type Clock struct {
	offsetDays int
	now        func() time.Time // overridable for tests
}

// New returns a real-time clock.
func New() *Clock {
	return &Clock{now: time.Now}
}

// NewOffset returns a clock shifted by offsetDays from the real time.
// Positive values move into the future, negative into the past.
func NewOffset(offsetDays int) *Clock {
	return &Clock{offsetDays: offsetDays, now: time.Now}
}

// NewFixed returns a clock frozen at t, for tests.
func NewFixed(t time.Time) *Clock {
	return &Clock{now: func() time.Time { return t }}
}

// SetOffset changes the day offset on an existing clock.
func (c *Clock) SetOffset(days int) {
	c.offsetDays = days
}

// Offset returns the configured day offset.
func (c *Clock) Offset() int {
	return c.offsetDays
}

// Now returns the current time with the day offset applied.
func (c *Clock) Now() time.Time {
	fn := c.now
	if fn == nil {
		fn = time.Now
	}
	return fn().AddDate(0, 0, c.offsetDays)
}

// Today returns the current calendar date as YYYY-MM-DD in UTC.
func (c *Clock) Today() string {
	return c.Now().UTC().Format(DateLayout)
}

// DaysBetween returns the absolute number of whole days between two
// YYYY-MM-DD dates. Unparseable dates count as zero days apart.
func DaysBetween(a, b string) int {
	da, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0
	}
	db, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0
	}
	diff := db.Sub(da)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}
