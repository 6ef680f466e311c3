package animation_test

import (
	"math"
	"testing"

	"github.com/go-drift/slidable/pkg/animation"
)

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]animation.Curve{
		"Linear":    animation.Linear,
		"Ease":      animation.Ease,
		"EaseIn":    animation.EaseIn,
		"EaseOut":   animation.EaseOut,
		"EaseInOut": animation.EaseInOut,
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %f, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %f, want 1", name, got)
		}
	}
}

func TestBezierCurvesClampOutOfRangeInput(t *testing.T) {
	curves := map[string]animation.Curve{
		"Ease":      animation.Ease,
		"EaseIn":    animation.EaseIn,
		"EaseOut":   animation.EaseOut,
		"EaseInOut": animation.EaseInOut,
	}
	for name, curve := range curves {
		if got := curve(-0.5); got != 0 {
			t.Errorf("%s(-0.5) = %f, want 0", name, got)
		}
		if got := curve(1.5); got != 1 {
			t.Errorf("%s(1.5) = %f, want 1", name, got)
		}
	}
}

func TestCurvesAreMonotonic(t *testing.T) {
	curves := map[string]animation.Curve{
		"Ease":      animation.Ease,
		"EaseIn":    animation.EaseIn,
		"EaseOut":   animation.EaseOut,
		"EaseInOut": animation.EaseInOut,
	}
	for name, curve := range curves {
		prev := curve(0)
		for i := 1; i <= 100; i++ {
			v := curve(float64(i) / 100)
			if v < prev-1e-9 {
				t.Errorf("%s not monotonic at t=%.2f: %f < %f", name, float64(i)/100, v, prev)
				break
			}
			prev = v
		}
	}
}

func TestCubicBezierIdentityControlPoints(t *testing.T) {
	// Control points on the diagonal produce the identity curve.
	linear := animation.CubicBezier(0.25, 0.25, 0.75, 0.75)
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		if got := linear(tt); math.Abs(got-tt) > 1e-4 {
			t.Errorf("identity bezier(%f) = %f", tt, got)
		}
	}
}

func TestEaseInStartsSlow(t *testing.T) {
	if animation.EaseIn(0.25) >= 0.25 {
		t.Errorf("EaseIn(0.25) = %f, want below 0.25", animation.EaseIn(0.25))
	}
	if animation.EaseOut(0.25) <= 0.25 {
		t.Errorf("EaseOut(0.25) = %f, want above 0.25", animation.EaseOut(0.25))
	}
}
