package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/slidable/pkg/animation"
	slidetest "github.com/go-drift/slidable/pkg/testing"
)

func TestAnimateToReachesTarget(t *testing.T) {
	clock := slidetest.InstallFakeClock(t)
	c := animation.NewAnimationController()
	defer c.Dispose()

	var completions []bool
	c.AnimateTo(1, 100*time.Millisecond, nil, func(completed bool) {
		completions = append(completions, completed)
	})
	if !c.IsAnimating() {
		t.Fatal("expected animation in flight")
	}

	slidetest.PumpFor(clock, 120*time.Millisecond, 16*time.Millisecond)

	if c.Value() != 1 {
		t.Errorf("Value = %f, want 1", c.Value())
	}
	if c.IsAnimating() {
		t.Error("expected animation to be finished")
	}
	if len(completions) != 1 || !completions[0] {
		t.Errorf("completions = %v, want [true]", completions)
	}
}

func TestAnimateToIntermediateValues(t *testing.T) {
	clock := slidetest.InstallFakeClock(t)
	c := animation.NewAnimationController()
	defer c.Dispose()

	c.AnimateTo(1, 100*time.Millisecond, animation.Linear, nil)
	slidetest.Pump(clock, 50*time.Millisecond)

	if c.Value() < 0.45 || c.Value() > 0.55 {
		t.Errorf("Value at half time = %f, want about 0.5", c.Value())
	}
}

func TestAnimateToAppliesCurve(t *testing.T) {
	clock := slidetest.InstallFakeClock(t)
	c := animation.NewAnimationController()
	defer c.Dispose()

	square := animation.Curve(func(t float64) float64 { return t * t })
	c.AnimateTo(1, 100*time.Millisecond, square, nil)
	slidetest.Pump(clock, 50*time.Millisecond)

	if c.Value() < 0.2 || c.Value() > 0.3 {
		t.Errorf("Value at half time = %f, want about 0.25", c.Value())
	}
}

func TestSupersededAnimationReportsFalseOnce(t *testing.T) {
	clock := slidetest.InstallFakeClock(t)
	c := animation.NewAnimationController()
	defer c.Dispose()

	var first []bool
	c.AnimateTo(1, 100*time.Millisecond, nil, func(completed bool) {
		first = append(first, completed)
	})
	slidetest.Pump(clock, 30*time.Millisecond)

	var second []bool
	c.AnimateTo(0, 100*time.Millisecond, nil, func(completed bool) {
		second = append(second, completed)
	})
	if len(first) != 1 || first[0] {
		t.Fatalf("first completions = %v, want [false]", first)
	}

	slidetest.PumpFor(clock, 120*time.Millisecond, 16*time.Millisecond)

	if len(first) != 1 {
		t.Errorf("first completion fired again: %v", first)
	}
	if len(second) != 1 || !second[0] {
		t.Errorf("second completions = %v, want [true]", second)
	}
	if c.Value() != 0 {
		t.Errorf("Value = %f, want 0", c.Value())
	}
}

func TestSetValueCancelsInFlightAnimation(t *testing.T) {
	clock := slidetest.InstallFakeClock(t)
	c := animation.NewAnimationController()
	defer c.Dispose()

	var completions []bool
	c.AnimateTo(1, 100*time.Millisecond, nil, func(completed bool) {
		completions = append(completions, completed)
	})
	slidetest.Pump(clock, 30*time.Millisecond)

	notified := 0
	remove := c.AddListener(func() { notified++ })
	defer remove()

	c.SetValue(0.75)

	if c.Value() != 0.75 {
		t.Errorf("Value = %f, want 0.75", c.Value())
	}
	if notified != 1 {
		t.Errorf("listener notified %d times, want 1", notified)
	}
	if len(completions) != 1 || completions[0] {
		t.Errorf("completions = %v, want [false]", completions)
	}
	if c.IsAnimating() {
		t.Error("expected no animation after SetValue")
	}

	slidetest.PumpFor(clock, 200*time.Millisecond, 16*time.Millisecond)
	if c.Value() != 0.75 {
		t.Errorf("Value drifted to %f after cancel", c.Value())
	}
}

func TestSetValueClampsToUnitRange(t *testing.T) {
	c := animation.NewAnimationController()
	defer c.Dispose()

	c.SetValue(1.5)
	if c.Value() != 1 {
		t.Errorf("Value = %f, want 1", c.Value())
	}
	c.SetValue(-0.5)
	if c.Value() != 0 {
		t.Errorf("Value = %f, want 0", c.Value())
	}
}

func TestZeroDurationCompletesOnNextFrame(t *testing.T) {
	clock := slidetest.InstallFakeClock(t)
	c := animation.NewAnimationController()
	defer c.Dispose()

	var completions []bool
	c.AnimateTo(0.5, 0, nil, func(completed bool) {
		completions = append(completions, completed)
	})
	if len(completions) != 0 {
		t.Fatal("completion fired synchronously")
	}

	slidetest.Pump(clock, time.Millisecond)

	if c.Value() != 0.5 {
		t.Errorf("Value = %f, want 0.5", c.Value())
	}
	if len(completions) != 1 || !completions[0] {
		t.Errorf("completions = %v, want [true]", completions)
	}
}

func TestStopReportsFalse(t *testing.T) {
	clock := slidetest.InstallFakeClock(t)
	c := animation.NewAnimationController()
	defer c.Dispose()

	var completions []bool
	c.AnimateTo(1, 100*time.Millisecond, nil, func(completed bool) {
		completions = append(completions, completed)
	})
	slidetest.Pump(clock, 30*time.Millisecond)
	before := c.Value()

	c.Stop()

	if len(completions) != 1 || completions[0] {
		t.Errorf("completions = %v, want [false]", completions)
	}
	if c.Value() != before {
		t.Errorf("Stop moved value from %f to %f", before, c.Value())
	}
}

func TestAddListenerUnsubscribe(t *testing.T) {
	c := animation.NewAnimationController()
	defer c.Dispose()

	notified := 0
	remove := c.AddListener(func() { notified++ })

	c.SetValue(0.1)
	remove()
	c.SetValue(0.2)

	if notified != 1 {
		t.Errorf("listener notified %d times, want 1", notified)
	}
}

func TestListenerCanStartNewAnimation(t *testing.T) {
	clock := slidetest.InstallFakeClock(t)
	c := animation.NewAnimationController()
	defer c.Dispose()

	var second []bool
	started := false
	remove := c.AddListener(func() {
		if !started && c.Value() >= 1 {
			started = true
			c.AnimateTo(0, 100*time.Millisecond, nil, func(completed bool) {
				second = append(second, completed)
			})
		}
	})
	defer remove()

	c.AnimateTo(1, 100*time.Millisecond, nil, nil)
	slidetest.PumpFor(clock, 120*time.Millisecond, 16*time.Millisecond)

	if !started {
		t.Fatal("listener never started the follow-up animation")
	}
	if !c.IsAnimating() {
		t.Fatal("follow-up animation was finished prematurely")
	}

	slidetest.PumpFor(clock, 120*time.Millisecond, 16*time.Millisecond)
	if c.Value() != 0 {
		t.Errorf("Value = %f, want 0", c.Value())
	}
	if len(second) != 1 || !second[0] {
		t.Errorf("second completions = %v, want [true]", second)
	}
}
