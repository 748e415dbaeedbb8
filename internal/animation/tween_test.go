package animation

import (
	"math"
	"testing"
	"time"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		duration time.Duration
		want     float64
	}{
		{"before start", -10 * time.Millisecond, 100 * time.Millisecond, 0},
		{"at start", 0, 100 * time.Millisecond, 0},
		{"halfway", 50 * time.Millisecond, 100 * time.Millisecond, 5},
		{"at end", 100 * time.Millisecond, 100 * time.Millisecond, 10},
		{"past end", time.Second, 100 * time.Millisecond, 10},
		{"zero duration jumps", 0, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(0, 10, tt.elapsed, tt.duration, Linear)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestEasingEndpoints(t *testing.T) {
	for _, e := range []struct {
		name string
		fn   Easing
	}{{"linear", Linear}, {"fastOutSlowIn", FastOutSlowIn}} {
		if e.fn(0) != 0 {
			t.Errorf("%s(0) = %f, expected 0", e.name, e.fn(0))
		}
		if e.fn(1) != 1 {
			t.Errorf("%s(1) = %f, expected 1", e.name, e.fn(1))
		}
	}
}

func TestFastOutSlowInShape(t *testing.T) {
	mid := FastOutSlowIn(0.5)
	if mid <= 0.5 {
		t.Errorf("Expected eased midpoint ahead of linear, got %f", mid)
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := FastOutSlowIn(float64(i) / 100)
		if v < prev-1e-9 {
			t.Fatalf("Curve not monotonic at %d: %f < %f", i, v, prev)
		}
		prev = v
	}
}

func TestCubicBezierDiagonalIsLinear(t *testing.T) {
	diag := CubicBezier(0, 0, 1, 1)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.8, 0.99} {
		if got := diag(x); math.Abs(got-x) > 1e-5 {
			t.Errorf("diag(%f) = %f", x, got)
		}
	}
}

func TestTweenRetarget(t *testing.T) {
	t0 := time.Unix(0, 0)
	tw := NewTween(0, Linear)

	if !tw.Done(t0) {
		t.Error("Expected resting tween to be done")
	}
	if !tw.Retarget(t0, 10, 100*time.Millisecond) {
		t.Fatal("Expected retarget to a new value to start a leg")
	}
	if tw.Done(t0.Add(50 * time.Millisecond)) {
		t.Error("Expected tween in flight at 50ms")
	}

	mid := t0.Add(50 * time.Millisecond)
	before := tw.Value(mid)
	tw.Retarget(mid, 0, 100*time.Millisecond)
	if after := tw.Value(mid); math.Abs(after-before) > 1e-9 {
		t.Errorf("Retarget jumped from %f to %f", before, after)
	}
	if got := tw.Value(mid.Add(100 * time.Millisecond)); got != 0 {
		t.Errorf("Expected 0 after second leg, got %f", got)
	}

	if tw.Retarget(mid, 0, time.Second) {
		t.Error("Expected retarget to the same value to be ignored")
	}
	if tw.Duration() != 100*time.Millisecond {
		t.Errorf("Expected duration to stay 100ms, got %v", tw.Duration())
	}
}

func TestTweenIntValueTruncates(t *testing.T) {
	t0 := time.Unix(0, 0)
	tw := NewTween(0, Linear)
	tw.Retarget(t0, 6, 300*time.Millisecond)

	// 6 * 149/300 = 2.98
	if got := tw.IntValue(t0.Add(149 * time.Millisecond)); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}

	down := NewTween(0, Linear)
	down.Retarget(t0, -3, 100*time.Millisecond)
	if got := down.IntValue(t0.Add(50 * time.Millisecond)); got != -1 {
		t.Errorf("Expected truncation toward zero (-1), got %d", got)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewManualClock(start)
	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", got)
	}
	c.Set(start)
	if !c.Now().Equal(start) {
		t.Errorf("Expected reset to start")
	}
}

func TestSpringSettles(t *testing.T) {
	s := NewSpring(60, 6.0, 1.0)
	for i := 0; i < 600; i++ {
		s.Update(4)
	}
	if !s.Settled(4) {
		t.Errorf("Expected spring at rest on 4, got %f", s.Position())
	}

	s.Jump(1)
	if s.Position() != 1 || !s.Settled(1) {
		t.Errorf("Expected jump to rest at 1, got %f", s.Position())
	}
}

func TestParseEasing(t *testing.T) {
	tests := []struct {
		name    string
		mid     float64
		wantErr bool
	}{
		{name: "linear", mid: 0.5},
		{name: "fast_out_slow_in", mid: FastOutSlowIn(0.5)},
		{name: "", mid: FastOutSlowIn(0.5)},
		{name: "bounce", wantErr: true},
	}
	for _, tt := range tests {
		e, err := ParseEasing(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Expected error for %q", tt.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", tt.name, err)
		}
		if got := e(0.5); math.Abs(got-tt.mid) > 1e-9 {
			t.Errorf("%q: expected %f at 0.5, got %f", tt.name, tt.mid, got)
		}
	}
}
