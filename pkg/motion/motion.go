// Package motion loads optional tuning presets for slidable controllers from
// a slidable.yaml file, so applications can adjust durations, thresholds and
// curves without recompiling.
package motion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/slidable/pkg/animation"
	"github.com/go-drift/slidable/pkg/slidable"
)

// Preset is a resolved set of slidable tunings. Build one with Default,
// Parse or LoadOptional.
type Preset struct {
	// MovementDuration is the default open/close animation length.
	MovementDuration time.Duration
	// FullWidthDuration is the length of each full-width escalation phase.
	FullWidthDuration time.Duration
	// FullWidthDelay is the pause between the escalation phases.
	FullWidthDelay time.Duration
	// SnapBackThreshold is the release fraction below which the pane snaps
	// shut, in (0, 1].
	SnapBackThreshold float64
	// StartExtentRatio and EndExtentRatio are the per-side pane extents,
	// in (0, 1].
	StartExtentRatio float64
	EndExtentRatio   float64
	// Curve names the easing curve for gesture-resolution animations:
	// linear, ease, ease-in, ease-out or ease-in-out.
	Curve string
}

// presetFile is the YAML shape of slidable.yaml. Durations are written in
// Go syntax ("200ms", "1s").
type presetFile struct {
	MovementDuration  string  `yaml:"movement_duration,omitempty"`
	FullWidthDuration string  `yaml:"full_width_duration,omitempty"`
	FullWidthDelay    string  `yaml:"full_width_delay,omitempty"`
	SnapBackThreshold float64 `yaml:"snap_back_threshold,omitempty"`
	StartExtentRatio  float64 `yaml:"start_extent_ratio,omitempty"`
	EndExtentRatio    float64 `yaml:"end_extent_ratio,omitempty"`
	Curve             string  `yaml:"curve,omitempty"`
}

// Default returns the preset matching the controller's built-in defaults.
func Default() Preset {
	return Preset{
		MovementDuration:  slidable.DefaultMovementDuration,
		FullWidthDuration: slidable.DefaultFullWidthDuration,
		FullWidthDelay:    slidable.DefaultFullWidthDelay,
		SnapBackThreshold: 0.5,
		StartExtentRatio:  0.5,
		EndExtentRatio:    0.5,
		Curve:             "ease",
	}
}

// LoadOptional reads slidable.yaml from dir if present. A missing file
// yields the defaults; unreadable or malformed files return an error.
func LoadOptional(dir string) (Preset, error) {
	path := filepath.Join(dir, "slidable.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Preset{}, fmt.Errorf("failed to read slidable.yaml: %w", err)
	}
	return Parse(data)
}

// Parse decodes a preset from YAML. Malformed YAML and unparsable durations
// are errors; missing or out-of-range values fall back to defaults.
func Parse(data []byte) (Preset, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Preset{}, fmt.Errorf("failed to parse slidable.yaml: %w", err)
	}

	p := Preset{
		SnapBackThreshold: file.SnapBackThreshold,
		StartExtentRatio:  file.StartExtentRatio,
		EndExtentRatio:    file.EndExtentRatio,
		Curve:             file.Curve,
	}

	var err error
	if p.MovementDuration, err = parseDuration("movement_duration", file.MovementDuration); err != nil {
		return Preset{}, err
	}
	if p.FullWidthDuration, err = parseDuration("full_width_duration", file.FullWidthDuration); err != nil {
		return Preset{}, err
	}
	if p.FullWidthDelay, err = parseDuration("full_width_delay", file.FullWidthDelay); err != nil {
		return Preset{}, err
	}

	return normalize(p), nil
}

func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return d, nil
}

// normalize fills invalid values with defaults. Out-of-range numbers are
// dropped silently, matching the controller's setter behavior.
func normalize(p Preset) Preset {
	defaults := Default()
	if p.MovementDuration <= 0 {
		p.MovementDuration = defaults.MovementDuration
	}
	if p.FullWidthDuration <= 0 {
		p.FullWidthDuration = defaults.FullWidthDuration
	}
	if p.FullWidthDelay <= 0 {
		p.FullWidthDelay = defaults.FullWidthDelay
	}
	if p.SnapBackThreshold <= 0 || p.SnapBackThreshold > 1 {
		p.SnapBackThreshold = defaults.SnapBackThreshold
	}
	if p.StartExtentRatio <= 0 || p.StartExtentRatio > 1 {
		p.StartExtentRatio = defaults.StartExtentRatio
	}
	if p.EndExtentRatio <= 0 || p.EndExtentRatio > 1 {
		p.EndExtentRatio = defaults.EndExtentRatio
	}
	if _, ok := CurveByName(p.Curve); !ok {
		p.Curve = defaults.Curve
	}
	return p
}

// CurveByName resolves a curve name from a preset file.
func CurveByName(name string) (animation.Curve, bool) {
	switch name {
	case "linear":
		return animation.Linear, true
	case "ease":
		return animation.Ease, true
	case "ease-in":
		return animation.EaseIn, true
	case "ease-out":
		return animation.EaseOut, true
	case "ease-in-out":
		return animation.EaseInOut, true
	default:
		return nil, false
	}
}

// ResolveCurve returns the preset's easing curve.
func (p Preset) ResolveCurve() animation.Curve {
	if curve, ok := CurveByName(p.Curve); ok {
		return curve
	}
	return animation.Ease
}

// Apply copies the preset onto a controller.
func (p Preset) Apply(c *slidable.Controller) {
	c.FullWidthDuration = p.FullWidthDuration
	c.FullWidthDelay = p.FullWidthDelay
	c.SetSnapBackThreshold(p.SnapBackThreshold)
	c.SetStartActionPaneExtentRatio(p.StartExtentRatio)
	c.SetEndActionPaneExtentRatio(p.EndExtentRatio)
}
