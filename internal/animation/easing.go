package animation

import (
	"fmt"
	"math"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(fraction float64) float64

// Linear applies no easing.
func Linear(fraction float64) float64 {
	return fraction
}

// FastOutSlowIn is the standard material curve, cubic-bezier(0.4, 0, 0.2, 1).
// Tweens use it unless told otherwise.
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier returns a CSS-style timing curve anchored at (0,0) and (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(fraction float64) float64 {
		if fraction <= 0 {
			return 0
		}
		if fraction >= 1 {
			return 1
		}
		t := solveCurveX(fraction, x1, x2)
		return bezier(t, y1, y2)
	}
}

// bezier evaluates one axis of the curve with P0=0 and P3=1.
func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// solveCurveX finds t such that x(t) = x. Newton first, bisection as fallback.
func solveCurveX(x, x1, x2 float64) float64 {
	const epsilon = 1e-7

	t := x
	for i := 0; i < 8; i++ {
		err := bezier(t, x1, x2) - x
		if math.Abs(err) < epsilon {
			return t
		}
		slope := bezierSlope(t, x1, x2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		t -= err / slope
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 64; i++ {
		v := bezier(t, x1, x2)
		if math.Abs(v-x) < epsilon {
			return t
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// ParseEasing resolves a configured curve name.
func ParseEasing(name string) (Easing, error) {
	switch name {
	case "", "fast_out_slow_in":
		return FastOutSlowIn, nil
	case "linear":
		return Linear, nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}
