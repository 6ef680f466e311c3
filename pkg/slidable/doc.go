// Package slidable implements the gesture and animation state machine behind
// a horizontally draggable panel that reveals an action pane on either side.
//
// The package owns a single scalar openness value (position, 0 to 1) and a
// signed direction selecting which side is active. Rendering, hit testing and
// drag capture live outside this package: the embedding layer translates drag
// deltas into [Controller.SetRatio] calls, release velocities into
// [Controller.DispatchEndGesture], and observes the controller's notifiers to
// draw the panes.
//
// # Collaborators
//
// Two capabilities are consumed through narrow interfaces:
//
//   - [RatioConfigurator], supplied by whichever action pane is currently
//     active. It clamps requested ratios and reports the pane's extent.
//   - [Animator], the interpolation engine. The default implementation is
//     animation.AnimationController, driven by the frame pump.
//
// # Sibling exclusivity
//
// Controllers constructed with the same [Group] auto-close one another: when
// one reaches its full extent, every other extended controller in the group
// snaps shut immediately, without animating.
//
// # Threading
//
// Everything here runs on the single frame goroutine. Animation calls do not
// block; sequencing is expressed through completion callbacks, and a
// superseded animation reports that it did not complete.
package slidable
