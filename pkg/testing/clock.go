// Package testing provides helpers for deterministic animation tests:
// a controllable clock and frame-pump helpers.
//
// Typical usage:
//
//	import slidetest "github.com/go-drift/slidable/pkg/testing"
//
//	clock := slidetest.InstallFakeClock(t)
//	ctrl.OpenTo(0.4, 200*time.Millisecond, animation.Ease, nil)
//	slidetest.PumpFor(clock, 250*time.Millisecond, 16*time.Millisecond)
package testing

import (
	"sync"
	"time"

	"github.com/go-drift/slidable/pkg/animation"
)

// FakeClock is an animation.Clock whose time stands still until the test
// moves it. The mutex makes the accessors safe even if a test pumps frames
// from a helper goroutine.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock pinned to an arbitrary fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now reports the clock's current time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Tickers only observe the change on
// the next frame; pair Advance with animation.StepTickers, or use Pump.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set pins the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// TB is the subset of testing.TB used by InstallFakeClock. It exists so this
// package does not import the standard testing package outside test files.
type TB interface {
	Cleanup(func())
}

// InstallFakeClock makes a fresh FakeClock the animation time source for the
// duration of the test, restoring whatever clock was installed before once
// the test finishes.
func InstallFakeClock(t TB) *FakeClock {
	clock := NewFakeClock()
	prev := animation.SetClock(clock)
	t.Cleanup(func() {
		animation.SetClock(prev)
	})
	return clock
}
