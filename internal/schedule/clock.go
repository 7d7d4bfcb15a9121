package schedule

import "time"

// Clock abstracts wall-clock access so today-dependent logic can run under
// a fixed time in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the real wall clock.
func SystemClock() Clock { return systemClock{} }

// Today renders the clock's current date in the local time zone.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}
