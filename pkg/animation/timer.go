package animation

import "time"

// Timer is a cancellable one-shot delay driven by the frame pump.
type Timer struct {
	ticker *Ticker
	fired  bool
}

// After runs fn once at least d has elapsed on the animation clock.
// The callback fires from StepTickers, never from After itself, so a zero
// delay still waits for the next frame.
func After(d time.Duration, fn func()) *Timer {
	t := &Timer{}
	t.ticker = NewTicker(func(elapsed time.Duration) {
		if elapsed < d || t.fired {
			return
		}
		t.fired = true
		t.ticker.Stop()
		fn()
	})
	t.ticker.Start()
	return t
}

// Cancel stops the timer. The callback will not fire after Cancel returns.
// Cancelling an already-fired timer is a no-op.
func (t *Timer) Cancel() {
	t.ticker.Stop()
}

// Fired reports whether the callback has run.
func (t *Timer) Fired() bool {
	return t.fired
}
