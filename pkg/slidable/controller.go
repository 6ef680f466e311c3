package slidable

import (
	"math"
	"time"

	"github.com/go-drift/slidable/pkg/animation"
)

// Default timings for controller animations. Zero-valued duration arguments
// fall back to DefaultMovementDuration; the full-width defaults seed the
// corresponding Controller fields.
const (
	DefaultMovementDuration  = 200 * time.Millisecond
	DefaultFullWidthDuration = 300 * time.Millisecond
	DefaultFullWidthDelay    = time.Second
)

const (
	// fullyExtendedEpsilon absorbs floating point settling when comparing the
	// position against the pane extent.
	fullyExtendedEpsilon = 0.01
	// openRedirectNudge is the tiny signed ratio used to establish a
	// direction before animating open from dead center.
	openRedirectNudge = 0.05
)

// RatioConfigurator is supplied by whichever action pane currently governs
// the controller. Implementations belong to the rendering layer.
type RatioConfigurator interface {
	// NormalizeRatio applies pane-specific snapping or rounding to a
	// requested signed ratio.
	NormalizeRatio(ratio float64) float64
	// ExtentRatio is the pane's maximum openness, in [0, 1].
	ExtentRatio() float64
	// HandleEndGestureChanged replays an end gesture that arrived before the
	// configurator attached.
	HandleEndGestureChanged()
}

// Animator is the animation engine contract the controller drives. It holds
// the position value; animate calls report through their completion callback
// whether they ran to the target (true) or were superseded (false).
// animation.AnimationController is the default implementation.
type Animator interface {
	Value() float64
	SetValue(v float64)
	AnimateTo(target float64, duration time.Duration, curve animation.Curve, completion func(completed bool))
	AnimateBack(target float64, duration time.Duration, curve animation.Curve, completion func(completed bool))
	Stop()
	IsAnimating() bool
	AddListener(fn func()) func()
	Dispose()
}

// Controller is the gesture/animation state machine for one slidable panel.
//
// Position (how open, 0 to 1) lives in the animation engine; direction
// (which side, -1/0/+1) lives in a notifier whose writes recompute the
// action pane type. The signed ratio combines both.
//
// The exported fields are plain configuration; they may be set at any time
// from the frame goroutine. Ratios and thresholds go through validating
// setters that silently ignore out-of-range values.
type Controller struct {
	// EnableStartActionPane permits dragging the start pane open.
	EnableStartActionPane bool
	// EnableEndActionPane permits dragging the end pane open.
	EnableEndActionPane bool
	// IsLeftToRight maps positive ratios to the start pane when true, to the
	// end pane when false.
	IsLeftToRight bool
	// AllowFullWidthBeyondExtent lets drags continue past the pane extent all
	// the way to fully open.
	AllowFullWidthBeyondExtent bool
	// FullWidthDuration is the duration of each phase of the full-width
	// escalation.
	FullWidthDuration time.Duration
	// FullWidthDelay is the pause between the escalation's open and close
	// phases.
	FullWidthDelay time.Duration
	// OnFullyExtended, when set, fires once each time the position reaches
	// the pane extent, then triggers the full-width escalation.
	OnFullyExtended func()

	group  *Group
	engine Animator

	startActionPaneExtentRatio float64
	endActionPaneExtentRatio   float64
	snapBackThreshold          float64

	configurator RatioConfigurator

	direction      *ValueNotifier[int]
	actionPaneType *ValueNotifier[ActionPaneType]
	endGesture     *ValueNotifier[EndGesture]
	dismissGesture *ValueNotifier[*DismissGesture]
	resizeRequest  *ValueNotifier[*ResizeRequest]

	// Guard flags; see the concurrency notes in the package doc. Each one
	// cuts a specific reentrant cycle between position notifications and the
	// mutations they can trigger.
	closing                bool
	inFullWidthAnimation   bool
	closingOthers          bool
	hasCalledFullyExtended bool
	replayEndGesture       bool
	wasFullyExtended       bool

	fullWidthTimer *animation.Timer

	removeEngineListener    func()
	removeDirectionListener func()
}

// NewController creates a controller backed by a fresh animation engine.
// A nil group is allowed for a panel with no siblings.
func NewController(group *Group) *Controller {
	return NewControllerWithAnimator(group, animation.NewAnimationController())
}

// NewControllerWithAnimator creates a controller driving the given engine.
// The controller takes ownership of the engine and disposes it.
func NewControllerWithAnimator(group *Group, engine Animator) *Controller {
	c := &Controller{
		EnableStartActionPane: true,
		EnableEndActionPane:   true,
		IsLeftToRight:         true,
		FullWidthDuration:     DefaultFullWidthDuration,
		FullWidthDelay:        DefaultFullWidthDelay,

		group:  group,
		engine: engine,

		startActionPaneExtentRatio: 0.5,
		endActionPaneExtentRatio:   0.5,
		snapBackThreshold:          0.5,

		direction:      NewValueNotifier(0),
		actionPaneType: NewValueNotifier(PaneNone),
		endGesture:     NewValueNotifier[EndGesture](nil),
		dismissGesture: NewValueNotifier[*DismissGesture](nil),
		resizeRequest:  NewValueNotifier[*ResizeRequest](nil),
	}
	c.removeDirectionListener = c.direction.AddListener(c.onDirectionChanged)
	c.removeEngineListener = engine.AddListener(c.onPositionChanged)
	if group != nil {
		group.add(c)
	}
	return c
}

// Position is the magnitude of openness, in [0, 1].
func (c *Controller) Position() float64 {
	return c.engine.Value()
}

// Direction is the active side: +1, -1, or 0 when centered.
func (c *Controller) Direction() int {
	return c.direction.Value()
}

// Ratio is the signed openness, position times direction.
func (c *Controller) Ratio() float64 {
	return c.engine.Value() * float64(c.direction.Value())
}

// ActionPaneType is the currently active pane, derived from direction and
// the left-to-right flag.
func (c *Controller) ActionPaneType() ActionPaneType {
	return c.actionPaneType.Value()
}

// IsExtended reports whether the panel is open to any degree.
func (c *Controller) IsExtended() bool {
	return c.Ratio() != 0
}

// IsClosed reports whether the panel is at its resting position.
func (c *Controller) IsClosed() bool {
	return c.engine.Value() == 0
}

// IsFullyExtended reports whether the position has reached the active pane's
// extent, within a small tolerance.
func (c *Controller) IsFullyExtended() bool {
	if c.configurator == nil {
		return false
	}
	extent := c.configurator.ExtentRatio()
	return extent > 0 && c.engine.Value() >= extent-fullyExtendedEpsilon
}

// Closing reports whether a close animation is in progress. While closing,
// ratio mutations and open calls are rejected.
func (c *Controller) Closing() bool {
	return c.closing
}

// IsDismissibleReady reports whether any observer has attached to the
// dismiss-gesture subject, which signals that dismiss semantics are active
// for this panel.
func (c *Controller) IsDismissibleReady() bool {
	return c.dismissGesture.HasListeners()
}

// DirectionNotifier exposes the direction subject.
func (c *Controller) DirectionNotifier() *ValueNotifier[int] {
	return c.direction
}

// ActionPaneTypeNotifier exposes the active-pane subject.
func (c *Controller) ActionPaneTypeNotifier() *ValueNotifier[ActionPaneType] {
	return c.actionPaneType
}

// EndGestureNotifier exposes the classified drag-release subject.
func (c *Controller) EndGestureNotifier() *ValueNotifier[EndGesture] {
	return c.endGesture
}

// DismissGestureNotifier exposes the dismiss-gesture subject. Dismissal
// collaborators both observe and publish on it.
func (c *Controller) DismissGestureNotifier() *ValueNotifier[*DismissGesture] {
	return c.dismissGesture
}

// ResizeRequestNotifier exposes the resize-request subject.
func (c *Controller) ResizeRequestNotifier() *ValueNotifier[*ResizeRequest] {
	return c.resizeRequest
}

// AddPositionListener registers a callback for position changes.
// Returns an unsubscribe function.
func (c *Controller) AddPositionListener(fn func()) func() {
	return c.engine.AddListener(fn)
}

// StartActionPaneExtentRatio is the configured extent for the start pane.
func (c *Controller) StartActionPaneExtentRatio() float64 {
	return c.startActionPaneExtentRatio
}

// SetStartActionPaneExtentRatio updates the start pane extent. Values
// outside [0, 1] are ignored.
func (c *Controller) SetStartActionPaneExtentRatio(v float64) {
	if v < 0 || v > 1 || math.IsNaN(v) {
		return
	}
	c.startActionPaneExtentRatio = v
}

// EndActionPaneExtentRatio is the configured extent for the end pane.
func (c *Controller) EndActionPaneExtentRatio() float64 {
	return c.endActionPaneExtentRatio
}

// SetEndActionPaneExtentRatio updates the end pane extent. Values outside
// [0, 1] are ignored.
func (c *Controller) SetEndActionPaneExtentRatio(v float64) {
	if v < 0 || v > 1 || math.IsNaN(v) {
		return
	}
	c.endActionPaneExtentRatio = v
}

// SnapBackThreshold is the fraction of the extent below which a release
// snaps closed.
func (c *Controller) SnapBackThreshold() float64 {
	return c.snapBackThreshold
}

// SetSnapBackThreshold updates the snap-back fraction. Values outside [0, 1]
// are ignored.
func (c *Controller) SetSnapBackThreshold(v float64) {
	if v < 0 || v > 1 || math.IsNaN(v) {
		return
	}
	c.snapBackThreshold = v
}

// ActionPaneConfigurator returns the currently attached configurator, or nil.
func (c *Controller) ActionPaneConfigurator() RatioConfigurator {
	return c.configurator
}

// SetActionPaneConfigurator attaches (or, with nil, detaches) the
// configurator governing ratio clamping. If an end gesture arrived while no
// configurator was attached, the new configurator's end-gesture hook is
// replayed exactly once.
func (c *Controller) SetActionPaneConfigurator(configurator RatioConfigurator) {
	if c.configurator == configurator {
		return
	}
	c.configurator = configurator
	if configurator != nil && c.replayEndGesture {
		c.replayEndGesture = false
		configurator.HandleEndGestureChanged()
	}
}

// SetRatio applies a requested signed ratio from a live drag.
//
// The value is normalized by the configurator, clamped to the allowed range,
// and silently dropped while closing, when it repeats the current ratio, or
// when its sign maps to a disabled pane side.
func (c *Controller) SetRatio(value float64) {
	if math.IsNaN(value) {
		return
	}
	if c.configurator != nil {
		value = c.configurator.NormalizeRatio(value)
	}

	bound := 0.0
	if c.AllowFullWidthBeyondExtent {
		bound = 1
	} else if c.configurator != nil {
		bound = c.configurator.ExtentRatio()
	}
	value = clamp(value, -bound, bound)

	if c.closing || value == c.Ratio() {
		return
	}
	if value > 0 && !c.positivePaneEnabled() {
		return
	}
	if value < 0 && !c.negativePaneEnabled() {
		return
	}

	c.setDirection(sign(value))
	c.engine.SetValue(math.Abs(value))
}

// DispatchEndGesture classifies a drag release and resolves it into a snap
// decision.
//
// A zero velocity produces a still event carrying the caller's intent; a
// velocity matching the current direction produces an opening event; an
// opposing velocity produces a closing event. The event is always published.
// The snap half runs only when a configurator with a positive extent is
// attached and no close or full-width escalation is in flight; with no
// configurator the gesture is latched for replay on attach.
func (c *Controller) DispatchEndGesture(velocity float64, intent GestureDirection) {
	var gesture EndGesture
	switch {
	case velocity == 0 || math.IsNaN(velocity):
		gesture = StillGesture{Intent: intent}
	case sign(velocity) == c.direction.Value():
		gesture = OpeningGesture{Velocity: velocity}
	default:
		gesture = ClosingGesture{Velocity: math.Abs(velocity)}
	}
	c.endGesture.Set(gesture)

	if c.configurator == nil {
		c.replayEndGesture = true
		return
	}
	if c.closing || c.inFullWidthAnimation {
		return
	}
	extent := c.configurator.ExtentRatio()
	if extent <= 0 {
		return
	}
	if c.engine.Value() < extent*c.snapBackThreshold {
		c.close(DefaultMovementDuration, animation.EaseOut, nil)
		return
	}
	c.engine.AnimateTo(extent, DefaultMovementDuration, animation.EaseOut, nil)
}

// Close animates the panel back to its resting position. While the
// animation runs, ratio mutations and open calls are rejected. A zero
// duration selects DefaultMovementDuration; a nil curve selects Ease.
// onClosed, if non-nil, runs only when the close ran to completion rather
// than being superseded.
func (c *Controller) Close(duration time.Duration, curve animation.Curve, onClosed func()) {
	c.close(duration, curve, func(completed bool) {
		if completed && onClosed != nil {
			onClosed()
		}
	})
}

func (c *Controller) close(duration time.Duration, curve animation.Curve, completion func(completed bool)) {
	if duration <= 0 {
		duration = DefaultMovementDuration
	}
	if curve == nil {
		curve = animation.Ease
	}
	c.cancelFullWidth()
	// Start the engine before raising the guard: superseding an older close
	// fires its completion synchronously, which lowers the guard it owns.
	c.engine.AnimateBack(0, duration, curve, func(completed bool) {
		c.closing = false
		if completed {
			c.setDirection(0)
			c.hasCalledFullyExtended = false
			c.wasFullyExtended = false
		}
		if completion != nil {
			completion(completed)
		}
	})
	c.closing = true
}

// OpenTo animates the panel to the given signed ratio. Ratios outside
// [-1, 1] are rejected; the call is a no-op while closing or during a
// full-width escalation. Opening from dead center first nudges the ratio to
// a tiny value of the target sign so the direction and pane type are
// established before the animation runs.
func (c *Controller) OpenTo(ratio float64, duration time.Duration, curve animation.Curve, onOpened func()) {
	if ratio < -1 || ratio > 1 || math.IsNaN(ratio) {
		return
	}
	if c.closing || c.inFullWidthAnimation {
		return
	}
	if duration <= 0 {
		duration = DefaultMovementDuration
	}
	if curve == nil {
		curve = animation.Ease
	}
	if c.engine.Value() == 0 && ratio != 0 {
		c.SetRatio(openRedirectNudge * float64(sign(ratio)))
	}
	c.engine.AnimateTo(math.Abs(ratio), duration, curve, func(completed bool) {
		if completed && onOpened != nil {
			onOpened()
		}
	})
}

// OpenCurrentActionPane opens the active pane to its configured extent.
// It panics when no configurator is attached; callers are expected to check
// attachment first.
func (c *Controller) OpenCurrentActionPane(duration time.Duration, curve animation.Curve, onOpened func()) {
	if c.configurator == nil {
		panic("slidable: OpenCurrentActionPane called with no action pane configurator attached")
	}
	extent := c.configurator.ExtentRatio()
	c.OpenTo(extent*float64(c.direction.Value()), duration, curve, onOpened)
}

// OpenStartActionPane opens the start pane to its configured extent,
// redirecting through center first when a different pane is showing.
func (c *Controller) OpenStartActionPane(duration time.Duration, curve animation.Curve, onOpened func()) {
	c.openPane(PaneStart, c.startActionPaneExtentRatio, duration, curve, onOpened)
}

// OpenEndActionPane opens the end pane to its configured extent, redirecting
// through center first when a different pane is showing.
func (c *Controller) OpenEndActionPane(duration time.Duration, curve animation.Curve, onOpened func()) {
	c.openPane(PaneEnd, c.endActionPaneExtentRatio, duration, curve, onOpened)
}

func (c *Controller) openPane(pane ActionPaneType, extent float64, duration time.Duration, curve animation.Curve, onOpened func()) {
	// Checked here as well as in OpenTo: the reset below must not preempt an
	// in-flight close or escalation before OpenTo gets to its own guard.
	if c.closing || c.inFullWidthAnimation {
		return
	}
	paneSign := c.signFor(pane)
	if c.actionPaneType.Value() != pane {
		// Reset to center so the animation never travels through the other
		// pane, then force the direction so the pane type flips before the
		// position moves.
		c.engine.SetValue(0)
		c.setDirection(paneSign)
	}
	c.OpenTo(extent*float64(paneSign), duration, curve, onOpened)
}

// Dismiss animates the panel fully open, then publishes a resize request
// handing the shrink-and-remove step to the embedding layout.
func (c *Controller) Dismiss(request ResizeRequest, duration time.Duration, curve animation.Curve, onDismissed func()) {
	if duration <= 0 {
		duration = DefaultMovementDuration
	}
	if curve == nil {
		curve = animation.Ease
	}
	c.engine.AnimateTo(1, duration, curve, func(completed bool) {
		if !completed {
			return
		}
		req := request
		c.resizeRequest.Set(&req)
		if onDismissed != nil {
			onDismissed()
		}
	})
}

// Dispose removes the controller from its group, detaches internal
// listeners, and releases the engine and all subjects. It must be called
// exactly once; the controller is unusable afterward.
func (c *Controller) Dispose() {
	if c.group != nil {
		c.group.remove(c)
	}
	c.cancelFullWidth()
	if c.removeEngineListener != nil {
		c.removeEngineListener()
		c.removeEngineListener = nil
	}
	if c.removeDirectionListener != nil {
		c.removeDirectionListener()
		c.removeDirectionListener = nil
	}
	c.engine.Dispose()
	c.direction.Dispose()
	c.actionPaneType.Dispose()
	c.endGesture.Dispose()
	c.dismissGesture.Dispose()
	c.resizeRequest.Dispose()
}

// onPositionChanged runs after every engine value change. It detects the
// fully-extended edge, sweeps siblings shut, and starts the full-width
// escalation.
func (c *Controller) onPositionChanged() {
	fully := c.IsFullyExtended()
	if fully && !c.wasFullyExtended {
		if !c.inFullWidthAnimation && !c.closing {
			c.closeOthers()
		}
		if c.OnFullyExtended != nil && !c.hasCalledFullyExtended && !c.inFullWidthAnimation {
			c.hasCalledFullyExtended = true
			c.OnFullyExtended()
			c.startFullWidth()
		}
	}
	if !fully {
		// Leaving the extended state re-arms the callback.
		c.hasCalledFullyExtended = false
	}
	c.wasFullyExtended = fully
}

// onDirectionChanged recomputes the active pane from the direction sign and
// the left-to-right flip.
func (c *Controller) onDirectionChanged(direction int) {
	flip := 1
	if !c.IsLeftToRight {
		flip = -1
	}
	pane := PaneNone
	switch d := flip * direction; {
	case d > 0:
		pane = PaneStart
	case d < 0:
		pane = PaneEnd
	}
	if pane != c.actionPaneType.Value() {
		c.actionPaneType.Set(pane)
	}
}

// startFullWidth runs the escalation: animate fully open, hold, close.
// Any phase is abandoned when superseded; the guard flag is cleared on every
// exit path.
func (c *Controller) startFullWidth() {
	if c.inFullWidthAnimation {
		return
	}
	c.inFullWidthAnimation = true
	c.engine.AnimateTo(1, c.FullWidthDuration, animation.EaseOut, func(completed bool) {
		if !completed {
			c.inFullWidthAnimation = false
			return
		}
		c.fullWidthTimer = animation.After(c.FullWidthDelay, func() {
			c.fullWidthTimer = nil
			c.close(c.FullWidthDuration, animation.EaseIn, func(bool) {
				c.inFullWidthAnimation = false
			})
		})
	})
}

// cancelFullWidth abandons a pending or in-flight escalation sequence.
func (c *Controller) cancelFullWidth() {
	if c.fullWidthTimer != nil {
		c.fullWidthTimer.Cancel()
		c.fullWidthTimer = nil
	}
	c.inFullWidthAnimation = false
}

// closeOthers snaps every other extended controller in the group shut,
// without animating. The closingOthers guard keeps the resulting position
// notifications from re-entering the sweep.
func (c *Controller) closeOthers() {
	if c.group == nil || c.closingOthers {
		return
	}
	c.closingOthers = true
	for _, other := range c.group.snapshot() {
		if other == c || other.closing || other.engine.Value() == 0 {
			continue
		}
		other.closeImmediate()
	}
	c.closingOthers = false
}

// closeImmediate resets position and direction without animating and clears
// the transient flags, so simultaneously closing siblings never race through
// the engine.
func (c *Controller) closeImmediate() {
	c.closingOthers = true
	c.cancelFullWidth()
	c.engine.SetValue(0)
	c.setDirection(0)
	c.hasCalledFullyExtended = false
	c.wasFullyExtended = false
	c.closingOthers = false
}

// setDirection writes the direction only when it changes, so pane-type
// recomputation fires once per actual flip.
func (c *Controller) setDirection(direction int) {
	if c.direction.Value() != direction {
		c.direction.Set(direction)
	}
}

func (c *Controller) positivePaneEnabled() bool {
	if c.IsLeftToRight {
		return c.EnableStartActionPane
	}
	return c.EnableEndActionPane
}

func (c *Controller) negativePaneEnabled() bool {
	if c.IsLeftToRight {
		return c.EnableEndActionPane
	}
	return c.EnableStartActionPane
}

// signFor maps a pane to the direction sign that reveals it, honoring the
// left-to-right flip.
func (c *Controller) signFor(pane ActionPaneType) int {
	s := 0
	switch pane {
	case PaneStart:
		s = 1
	case PaneEnd:
		s = -1
	}
	if !c.IsLeftToRight {
		s = -s
	}
	return s
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
