package geometry

import (
	"math"
	"testing"
	"time"
)

func TestSelectionDuration(t *testing.T) {
	tests := []struct {
		name               string
		selected, previous int
		want               time.Duration
	}{
		{"adjacent forward", 3, 2, 50 * time.Millisecond},
		{"adjacent backward", 2, 3, 50 * time.Millisecond},
		{"same index clamps up", 4, 4, 100 * time.Millisecond},
		{"two apart", 5, 3, 120 * time.Millisecond},
		{"three apart", 3, 0, 180 * time.Millisecond},
		{"six apart", 6, 0, 360 * time.Millisecond},
		{"ten apart clamps down", 10, 0, 500 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectionDuration(tt.selected, tt.previous); got != tt.want {
				t.Errorf("SelectionDuration(%d, %d) = %v, want %v", tt.selected, tt.previous, got, tt.want)
			}
		})
	}
}

func TestExpandDuration(t *testing.T) {
	if got := ExpandDuration(true, 5); got != 300*time.Millisecond {
		t.Errorf("Expected 300ms expanding, got %v", got)
	}
	if got := ExpandDuration(true, 1); got != 300*time.Millisecond {
		t.Errorf("Expected 300ms expanding regardless of n, got %v", got)
	}
	if got := ExpandDuration(false, 5); got != 500*time.Millisecond {
		t.Errorf("Expected 500ms collapsing 5 items, got %v", got)
	}
	if got := ExpandDuration(false, 7); got != 700*time.Millisecond {
		t.Errorf("Expected 700ms collapsing 7 items, got %v", got)
	}
	if got := ExpandDuration(false, 0); got != 0 {
		t.Errorf("Expected 0 collapsing empty menu, got %v", got)
	}
}

func TestRotation(t *testing.T) {
	if DefaultPolicy().RotationDuration() != 500*time.Millisecond {
		t.Errorf("Expected 500ms rotation, got %v", DefaultPolicy().RotationDuration())
	}
	if RotationTarget(true) != 0 || RotationTarget(false) != 180 {
		t.Errorf("Unexpected rotation targets %f/%f", RotationTarget(true), RotationTarget(false))
	}
}

func TestTargets(t *testing.T) {
	if ExpansionTarget(true, 6) != 6 || ExpansionTarget(false, 6) != 0 {
		t.Error("Unexpected expansion targets")
	}
	if SelectionTarget(true, 4) != 4 || SelectionTarget(false, 4) != 0 {
		t.Error("Unexpected selection targets")
	}
}

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Policy)
		wantErr bool
	}{
		{"default", func(*Policy) {}, false},
		{"negative rotation", func(p *Policy) { p.Rotation = -time.Millisecond }, true},
		{"inverted clamp", func(p *Policy) { p.SelectionMin = time.Second }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.mutate(&p)
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCustomPolicy(t *testing.T) {
	p := DefaultPolicy()
	p.SelectionMax = 200 * time.Millisecond
	if got := p.SelectionDuration(6, 0); got != 200*time.Millisecond {
		t.Errorf("Expected custom clamp 200ms, got %v", got)
	}
}

func TestAngleStep(t *testing.T) {
	for n := 1; n <= 7; n++ {
		if got := AngleStep(n); got != 360/float64(n) {
			t.Errorf("AngleStep(%d) = %f", n, got)
		}
	}
	if AngleStep(0) != 0 {
		t.Errorf("Expected AngleStep(0) = 0, got %f", AngleStep(0))
	}
}

func TestItemOffset(t *testing.T) {
	step := AngleStep(4)
	tests := []struct {
		i    int
		want Point
	}{
		{0, Point{X: 44, Y: 0}},
		{1, Point{X: 0, Y: 44}},
		{2, Point{X: -44, Y: 0}},
		{3, Point{X: 0, Y: -44}},
	}
	for _, tt := range tests {
		got := ItemOffset(tt.i, step, 44)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("ItemOffset(%d) = %+v, want %+v", tt.i, got, tt.want)
		}
	}
}

func TestItemPlacementStaysUpright(t *testing.T) {
	step := AngleStep(6)
	for i := 0; i < 6; i++ {
		if ItemRotation(i, step) != step*float64(i) {
			t.Errorf("ItemRotation(%d) = %f", i, ItemRotation(i, step))
		}
		if IconRotation(i, step) != -step*float64(i) {
			t.Errorf("IconRotation(%d) = %f", i, IconRotation(i, step))
		}
		if p := ItemPlacement(i, step, 44); p.Rotation != 0 {
			t.Errorf("item %d: expected net rotation 0, got %f", i, p.Rotation)
		}
	}
}

func TestIndicatorPlacement(t *testing.T) {
	p := IndicatorPlacement(2, 90, 48, 45)
	if p.Rotation != 225 {
		t.Errorf("Expected rotation 225, got %f", p.Rotation)
	}
	if math.Abs(p.Offset.X+48) > 1e-9 || math.Abs(p.Offset.Y) > 1e-9 {
		t.Errorf("Expected offset (-48, 0), got %+v", p.Offset)
	}
}
