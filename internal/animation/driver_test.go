package animation

import (
	"math"
	"testing"
	"time"

	"circularmenu/internal/geometry"
	"circularmenu/internal/menu"
)

func sixItems() []menu.MenuItem {
	titles := []string{"Home", "Search", "Mail", "Music", "Photos", "Settings"}
	items := make([]menu.MenuItem, len(titles))
	for i, title := range titles {
		items[i] = menu.NewVectorItem(title, "•")
	}
	return items
}

func TestDriverRestsOnInitialTargets(t *testing.T) {
	collapsed := NewDriver(menu.New(sixItems()).Snapshot())
	f := collapsed.Sample(time.Unix(0, 0))
	if f.Expansion != 0 || f.Rotation != 180 || f.Selection != 0 || f.Animating {
		t.Errorf("Unexpected collapsed frame %+v", f)
	}

	expanded := NewDriver(menu.New(sixItems(), menu.WithExpanded(true)).Snapshot())
	f = expanded.Sample(time.Unix(0, 0))
	if f.Expansion != 6 || f.Rotation != 0 || f.Animating {
		t.Errorf("Unexpected expanded frame %+v", f)
	}
}

func TestDriverToggleLinear(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	state := menu.New(sixItems())
	d := NewDriver(state.Snapshot(), WithEasing(Linear))
	defer d.Attach(state, clock)()

	state.Toggle()
	clock.Advance(150 * time.Millisecond)

	f := d.Sample(clock.Now())
	if f.Expansion != 3 {
		t.Errorf("Expected 3 items revealed halfway, got %d", f.Expansion)
	}
	if math.Abs(f.Rotation-126) > 1e-9 {
		t.Errorf("Expected rotation 126, got %f", f.Rotation)
	}
	if !f.Animating {
		t.Error("Expected frame to be animating")
	}

	clock.Advance(350 * time.Millisecond)
	f = d.Sample(clock.Now())
	if f.Expansion != 6 || f.Rotation != 0 || f.Animating {
		t.Errorf("Expected settled expanded frame, got %+v", f)
	}
}

func TestDriverRetargetIsContinuous(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	state := menu.New(sixItems())
	d := NewDriver(state.Snapshot())
	defer d.Attach(state, clock)()

	state.Toggle()
	clock.Advance(120 * time.Millisecond)
	before := d.Sample(clock.Now())

	state.Toggle()
	after := d.Sample(clock.Now())

	if before.Expansion != after.Expansion {
		t.Errorf("Expansion jumped from %d to %d", before.Expansion, after.Expansion)
	}
	if math.Abs(before.Rotation-after.Rotation) > 1e-9 {
		t.Errorf("Rotation jumped from %f to %f", before.Rotation, after.Rotation)
	}

	clock.Advance(time.Second)
	f := d.Sample(clock.Now())
	if f.Expansion != 0 || f.Rotation != 180 {
		t.Errorf("Expected collapsed frame after second toggle, got %+v", f)
	}
}

func TestDriverCustomPolicy(t *testing.T) {
	p := geometry.DefaultPolicy()
	p.ExpandIn = 100 * time.Millisecond

	clock := NewManualClock(time.Unix(0, 0))
	state := menu.New(sixItems())
	d := NewDriver(state.Snapshot(), WithPolicy(p))
	defer d.Attach(state, clock)()

	state.Show()
	if got := d.LastTimings().Expansion; got != 100*time.Millisecond {
		t.Errorf("Expected 100ms expansion, got %v", got)
	}
	clock.Advance(100 * time.Millisecond)
	if got := d.Sample(clock.Now()).Expansion; got != 6 {
		t.Errorf("Expected all items after 100ms, got %d", got)
	}
}

func TestDetachStopsUpdates(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	state := menu.New(sixItems())
	d := NewDriver(state.Snapshot())
	detach := d.Attach(state, clock)
	detach()

	state.Show()
	clock.Advance(time.Second)
	if got := d.Sample(clock.Now()).Expansion; got != 0 {
		t.Errorf("Expected detached driver to ignore show, got %d", got)
	}
}

func TestTimingsFor(t *testing.T) {
	p := geometry.DefaultPolicy()
	tests := []struct {
		name string
		snap menu.Snapshot
		want Timings
	}{
		{
			name: "expanding five",
			snap: menu.Snapshot{Expanded: true, ItemCount: 5},
			want: Timings{300 * time.Millisecond, 500 * time.Millisecond, 100 * time.Millisecond},
		},
		{
			name: "collapsing five",
			snap: menu.Snapshot{Expanded: false, ItemCount: 5},
			want: Timings{500 * time.Millisecond, 500 * time.Millisecond, 100 * time.Millisecond},
		},
		{
			name: "adjacent selection",
			snap: menu.Snapshot{Expanded: true, ItemCount: 5, SelectedIndex: 2, PreviousIndex: 1},
			want: Timings{300 * time.Millisecond, 500 * time.Millisecond, 50 * time.Millisecond},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimingsFor(tt.snap, p); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestEndToEndSixItems(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	state := menu.New(sixItems())
	d := NewDriver(state.Snapshot())
	defer d.Attach(state, clock)()

	state.Toggle()
	if !state.Expanded() {
		t.Fatal("Expected expanded after toggle")
	}
	if got := d.LastTimings().Expansion; got != 300*time.Millisecond {
		t.Errorf("Expected 300ms expansion, got %v", got)
	}

	if err := state.SelectMenu(3); err != nil {
		t.Fatalf("SelectMenu(3): %v", err)
	}
	if state.SelectedIndex() != 3 || state.PreviousIndex() != 0 {
		t.Errorf("Expected 3/0, got %d/%d", state.SelectedIndex(), state.PreviousIndex())
	}

	if err := state.SelectMenu(5); err != nil {
		t.Fatalf("SelectMenu(5): %v", err)
	}
	if state.SelectedIndex() != 5 || state.PreviousIndex() != 3 {
		t.Errorf("Expected 5/3, got %d/%d", state.SelectedIndex(), state.PreviousIndex())
	}
	if got := d.LastTimings().Selection; got != 120*time.Millisecond {
		t.Errorf("Expected 120ms selection, got %v", got)
	}

	clock.Advance(120 * time.Millisecond)
	if got := d.Sample(clock.Now()).Selection; got != 5 {
		t.Errorf("Expected indicator on 5, got %d", got)
	}

	state.Toggle()
	if state.Expanded() || state.PreviousIndex() != 0 || state.SelectedIndex() != 5 {
		t.Errorf("Expected collapsed with 5/0, got expanded=%v %d/%d",
			state.Expanded(), state.SelectedIndex(), state.PreviousIndex())
	}
	if got := d.LastTimings().Expansion; got != 600*time.Millisecond {
		t.Errorf("Expected 600ms collapse for 6 items, got %v", got)
	}

	clock.Advance(time.Second)
	f := d.Sample(clock.Now())
	if f.Expansion != 0 || f.Selection != 0 || f.Rotation != 180 || f.Animating {
		t.Errorf("Expected settled collapsed frame, got %+v", f)
	}
}
