package clock

import "time"

// System reads the wall clock
type System struct{}

// NewSystem creates a new System clock
func NewSystem() System {
	return System{}
}

// Now returns the current local time
func (System) Now() time.Time {
	return time.Now()
}
