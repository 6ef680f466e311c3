// Package animation provides the timing and interpolation primitives behind
// the slidable gesture controller.
//
// # Core Components
//
//   - [AnimationController]: drives a scalar value in [0, 1] toward a target
//     with a per-call duration, easing curve, and completion callback.
//     Superseded animations report completion(false), which is how callers
//     express "abort if overtaken" sequencing without blocking.
//
//   - [Ticker] and [StepTickers]: the frame pump. The embedding application
//     calls StepTickers once per frame; tests drive it with a fake [Clock].
//
//   - [Timer] and [After]: one-shot delays on the same frame pump, used for
//     timed pauses between animation phases.
//
//   - [Curve] functions: easing, including [CubicBezier] for custom curves.
//
// Everything in this package is single-threaded by design: tickers fire on
// whichever goroutine calls StepTickers, and controllers must only be touched
// from that goroutine.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController] and
// [Timer]. Most code should use those instead. The callback receives the
// elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// StepTickers advances all active tickers.
// This should be called once per frame by the embedding application.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
