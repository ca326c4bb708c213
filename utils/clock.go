package utils

import "time"

// Clock abstracts the system clock so session expiry and availability windows
// can be tested with a frozen time.
type Clock interface {
	Now() time.Time
}

// SystemClock implements the Clock interface using the system clock.
type SystemClock struct{}

// Now returns the current time.
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
