package clock

import (
	"time"
)

// DateLayout is the calendar-date format used for day comparisons
const DateLayout = "2006-01-02"

// Clock provides the current time to the engines so tests can simulate days
type Clock interface {
	// Now returns the current time in the clock's local zone
	Now() time.Time
}

// RealClock uses the actual system time
type RealClock struct{}

// NewRealClock creates a new RealClock instance
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// SimulatedClock allows time manipulation for testing
type SimulatedClock struct {
	current time.Time
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{
		current: start,
	}
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	return c.current
}

// Advance moves the simulated time forward by the given duration
func (c *SimulatedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// AdvanceDays moves the simulated time forward by whole calendar days
func (c *SimulatedClock) AdvanceDays(days int) {
	c.current = c.current.AddDate(0, 0, days)
}

// Set sets the simulated time to a specific value
func (c *SimulatedClock) Set(t time.Time) {
	c.current = t
}

// Today returns the current calendar date of c as YYYY-MM-DD
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// Yesterday returns the calendar date before Today(c)
func Yesterday(c Clock) string {
	return c.Now().AddDate(0, 0, -1).Format(DateLayout)
}
