package animation

import "time"

// Curve transforms linear animation progress in [0, 1] into eased progress.
type Curve func(t float64) float64

// AnimationController drives a scalar value in [0, 1] toward a target over
// time.
//
// Every animate call carries its own duration and curve, and reports how it
// ended through a completion callback: completion(true) when the target is
// reached, completion(false) when the animation is superseded by a later
// AnimateTo/AnimateBack/SetValue call or stopped. The completion fires
// exactly once per animate call.
//
// The controller is driven by the frame pump (see [StepTickers]) and must be
// used from the frame goroutine. Always call Dispose when done.
type AnimationController struct {
	value float64

	ticker     *Ticker
	startValue float64
	target     float64
	duration   time.Duration
	curve      Curve
	completion func(completed bool)

	listeners      map[int]func()
	nextListenerID int
}

// NewAnimationController creates a controller with value 0.
func NewAnimationController() *AnimationController {
	return &AnimationController{
		listeners: make(map[int]func()),
	}
}

// Value returns the current animation value.
func (c *AnimationController) Value() float64 {
	return c.value
}

// SetValue jumps immediately to v without animating. Any in-flight animation
// is cancelled; its completion fires with false after listeners have seen
// the new value.
func (c *AnimationController) SetValue(v float64) {
	pending := c.preempt()
	c.value = clampUnit(v)
	c.notifyListeners()
	if pending != nil {
		pending(false)
	}
}

// AnimateTo animates the value to target over the given duration.
//
// A nil curve means linear progress. A non-positive duration completes on the
// next frame. The completion callback may be nil.
func (c *AnimationController) AnimateTo(target float64, duration time.Duration, curve Curve, completion func(completed bool)) {
	pending := c.preempt()

	c.target = clampUnit(target)
	c.startValue = c.value
	c.duration = duration
	c.curve = curve
	c.completion = completion

	var ticker *Ticker
	ticker = NewTicker(func(elapsed time.Duration) {
		c.tick(ticker, elapsed)
	})
	c.ticker = ticker
	ticker.Start()

	// Fired after the new animation is installed, so a completion that
	// itself starts an animation supersedes this one rather than racing it.
	if pending != nil {
		pending(false)
	}
}

// AnimateBack animates the value to target with the same semantics as
// AnimateTo. It exists so call sites can state closing intent.
func (c *AnimationController) AnimateBack(target float64, duration time.Duration, curve Curve, completion func(completed bool)) {
	c.AnimateTo(target, duration, curve, completion)
}

func (c *AnimationController) tick(ticker *Ticker, elapsed time.Duration) {
	progress := 1.0
	if c.duration > 0 {
		progress = float64(elapsed) / float64(c.duration)
		if progress > 1 {
			progress = 1
		}
	}

	eased := progress
	if c.curve != nil {
		eased = c.curve(progress)
	}
	c.value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	// A listener may have started a different animation; this frame then
	// belongs to a superseded one and must not finish the new animation.
	if c.ticker != ticker {
		return
	}
	if progress >= 1 {
		c.finish()
	}
}

// finish stops the ticker and fires the completion with true.
func (c *AnimationController) finish() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	completion := c.completion
	c.completion = nil
	if completion != nil {
		completion(true)
	}
}

// preempt stops the ticker and detaches the pending completion so the caller
// can fire it once its own bookkeeping is in place.
func (c *AnimationController) preempt() func(completed bool) {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	completion := c.completion
	c.completion = nil
	return completion
}

// Stop cancels the in-flight animation, leaving the value where it is.
// The cancelled animation's completion fires with false.
func (c *AnimationController) Stop() {
	if pending := c.preempt(); pending != nil {
		pending(false)
	}
}

// IsAnimating returns true while an animation is in flight.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose cancels any in-flight animation and releases listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
