package testing

import (
	"time"

	"github.com/go-drift/slidable/pkg/animation"
)

// Pump advances the fake clock by d and runs one animation frame.
func Pump(clock *FakeClock, d time.Duration) {
	clock.Advance(d)
	animation.StepTickers()
}

// PumpFor advances fake time in frame-sized steps until total has elapsed,
// running one animation frame per step. The last step is shortened so exactly
// total elapses.
func PumpFor(clock *FakeClock, total, frame time.Duration) {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	for total > 0 {
		step := frame
		if step > total {
			step = total
		}
		Pump(clock, step)
		total -= step
	}
}

// PumpUntilIdle runs frames until no tickers remain active, advancing the
// clock by frame each step. The limit guards against animations that never
// settle; when it is reached the helper simply returns.
func PumpUntilIdle(clock *FakeClock, frame time.Duration, limit int) {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	for i := 0; i < limit && animation.HasActiveTickers(); i++ {
		Pump(clock, frame)
	}
}
