// Package animation turns menu snapshots into values interpolated over time.
package animation

import (
	"time"

	"circularmenu/internal/geometry"
	"circularmenu/internal/menu"
)

// Frame is one sample of the three animated channels.
type Frame struct {
	Expansion int     // number of visible ring items
	Rotation  float64 // controller angle in degrees
	Selection int     // index the indicator currently points at
	Animating bool    // at least one channel is still moving
}

// Timings are the leg durations a snapshot asks for.
type Timings struct {
	Expansion time.Duration
	Rotation  time.Duration
	Selection time.Duration
}

// TimingsFor computes the durations each channel uses when retargeted to snap.
func TimingsFor(snap menu.Snapshot, policy geometry.Policy) Timings {
	return Timings{
		Expansion: policy.ExpandDuration(snap.Expanded, snap.ItemCount),
		Rotation:  policy.RotationDuration(),
		Selection: policy.SelectionDuration(snap.SelectedIndex, snap.PreviousIndex),
	}
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithPolicy replaces the default duration policy.
func WithPolicy(p geometry.Policy) DriverOption {
	return func(d *Driver) {
		d.policy = p
	}
}

// WithEasing replaces FastOutSlowIn on every channel. nil is ignored.
func WithEasing(e Easing) DriverOption {
	return func(d *Driver) {
		if e != nil {
			d.easing = e
		}
	}
}

// Driver keeps the expansion, rotation and selection channels converging on
// the latest snapshot.
type Driver struct {
	policy geometry.Policy
	easing Easing

	expansion Tween
	rotation  Tween
	selection Tween

	last Timings
}

// NewDriver creates a driver resting on the targets of snap.
func NewDriver(snap menu.Snapshot, opts ...DriverOption) *Driver {
	d := &Driver{
		policy: geometry.DefaultPolicy(),
		easing: FastOutSlowIn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	d.expansion = NewTween(float64(geometry.ExpansionTarget(snap.Expanded, snap.ItemCount)), d.easing)
	d.rotation = NewTween(geometry.RotationTarget(snap.Expanded), d.easing)
	d.selection = NewTween(float64(geometry.SelectionTarget(snap.Expanded, snap.SelectedIndex)), d.easing)
	return d
}

// Apply retargets every channel whose target changed. Channels with an
// unchanged target keep their in-flight leg.
func (d *Driver) Apply(snap menu.Snapshot, now time.Time) {
	t := TimingsFor(snap, d.policy)
	d.last = t

	d.expansion.Retarget(now, float64(geometry.ExpansionTarget(snap.Expanded, snap.ItemCount)), t.Expansion)
	d.rotation.Retarget(now, geometry.RotationTarget(snap.Expanded), t.Rotation)
	d.selection.Retarget(now, float64(geometry.SelectionTarget(snap.Expanded, snap.SelectedIndex)), t.Selection)
}

// Attach subscribes the driver to s, stamping each snapshot with clock.
func (d *Driver) Attach(s *menu.State, clock Clock) (detach func()) {
	return s.Subscribe(func(snap menu.Snapshot) {
		d.Apply(snap, clock.Now())
	})
}

// Sample reads all channels at now.
func (d *Driver) Sample(now time.Time) Frame {
	return Frame{
		Expansion: d.expansion.IntValue(now),
		Rotation:  d.rotation.Value(now),
		Selection: d.selection.IntValue(now),
		Animating: !d.expansion.Done(now) || !d.rotation.Done(now) || !d.selection.Done(now),
	}
}

// LastTimings returns the durations computed for the most recent snapshot.
func (d *Driver) LastTimings() Timings {
	return d.last
}
