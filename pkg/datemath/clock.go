package datemath

import (
	"fmt"
	"time"
)

// Clock yields the current instant. Date-producing code takes a Clock (or a
// time.Time derived from one) so tests can freeze time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	location *time.Location
}

// NewSystemClock creates a wall clock for the given IANA timezone.
func NewSystemClock(timezone string) (SystemClock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return SystemClock{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return SystemClock{location: loc}, nil
}

func (c SystemClock) Now() time.Time {
	if c.location == nil {
		return time.Now()
	}
	return time.Now().In(c.location)
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }
