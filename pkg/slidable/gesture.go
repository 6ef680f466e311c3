package slidable

import (
	"fmt"
	"time"
)

// ActionPaneType identifies which action pane is active.
type ActionPaneType int

const (
	// PaneNone means the panel is centered and no pane is active.
	PaneNone ActionPaneType = iota
	// PaneStart is the pane revealed by dragging toward the end side.
	PaneStart
	// PaneEnd is the pane revealed by dragging toward the start side.
	PaneEnd
)

func (p ActionPaneType) String() string {
	switch p {
	case PaneNone:
		return "none"
	case PaneStart:
		return "start"
	case PaneEnd:
		return "end"
	default:
		return fmt.Sprintf("ActionPaneType(%d)", int(p))
	}
}

// GestureDirection is the caller-declared intent of a drag release, used to
// classify a release with no measurable velocity.
type GestureDirection int

const (
	// DirectionOpening means the drag was moving the pane open.
	DirectionOpening GestureDirection = iota
	// DirectionClosing means the drag was moving the pane shut.
	DirectionClosing
)

func (d GestureDirection) String() string {
	switch d {
	case DirectionOpening:
		return "opening"
	case DirectionClosing:
		return "closing"
	default:
		return fmt.Sprintf("GestureDirection(%d)", int(d))
	}
}

// EndGesture is the classified result of a drag release. It is a sealed sum
// type: the only variants are [OpeningGesture], [ClosingGesture] and
// [StillGesture].
type EndGesture interface {
	endGesture()
}

// OpeningGesture is a release whose velocity points in the active direction.
type OpeningGesture struct {
	// Velocity is the signed release velocity.
	Velocity float64
}

// ClosingGesture is a release whose velocity points against the active
// direction.
type ClosingGesture struct {
	// Velocity is the magnitude of the release velocity.
	Velocity float64
}

// StillGesture is a release with zero or unknown velocity. It carries the
// caller's declared intent instead.
type StillGesture struct {
	Intent GestureDirection
}

func (OpeningGesture) endGesture() {}
func (ClosingGesture) endGesture() {}
func (StillGesture) endGesture()   {}

// DismissGesture wraps the end gesture that provoked a dismiss. It is
// published by dismissal collaborators on the controller's dismiss-gesture
// subject.
type DismissGesture struct {
	// Gesture is the provoking end gesture, nil when the dismiss was
	// triggered programmatically.
	Gesture EndGesture
}

// ResizeRequest asks the embedding layout to shrink and remove the panel. It
// is published after a dismiss animation reaches full openness.
type ResizeRequest struct {
	// Duration is how long the resize should take.
	Duration time.Duration
	// OnDone runs when the embedding layer has finished resizing.
	OnDone func()
}
