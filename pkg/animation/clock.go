package animation

import "time"

// Clock is the time source behind Now. Everything in this package measures
// elapsed time through it, so swapping the clock is all a test needs to
// drive frames deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// clock backs Now; replaced via SetClock.
var clock Clock = systemClock{}

// SetClock installs c as the package time source and returns the clock it
// replaced, so test helpers can restore it on cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now reads the current time from the installed clock.
func Now() time.Time { return clock.Now() }
