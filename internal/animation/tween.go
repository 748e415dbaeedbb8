package animation

import "time"

// Interpolate is the progress of a single tween sampled at elapsed.
// A non-positive duration jumps straight to target.
func Interpolate(start, target float64, elapsed, duration time.Duration, easing Easing) float64 {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	if elapsed <= 0 {
		return start
	}
	fraction := float64(elapsed) / float64(duration)
	if easing != nil {
		fraction = easing(fraction)
	}
	return start + (target-start)*fraction
}

// Tween animates one value towards a target. Retargeting starts from the
// value sampled at that instant, so the output never jumps.
type Tween struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	easing   Easing
}

// NewTween returns a tween already resting at value.
func NewTween(value float64, easing Easing) Tween {
	return Tween{from: value, to: value, easing: easing}
}

// Value samples the tween at now.
func (t *Tween) Value(now time.Time) float64 {
	return Interpolate(t.from, t.to, now.Sub(t.start), t.duration, t.easing)
}

// Target is the value the tween converges to.
func (t *Tween) Target() float64 {
	return t.to
}

// Duration is the length of the current leg.
func (t *Tween) Duration() time.Duration {
	return t.duration
}

// Done reports whether the current leg has finished at now.
func (t *Tween) Done(now time.Time) bool {
	return t.duration <= 0 || now.Sub(t.start) >= t.duration
}

// Retarget begins a new leg from the current value. An unchanged target is
// ignored and false is returned.
func (t *Tween) Retarget(now time.Time, target float64, duration time.Duration) bool {
	if target == t.to {
		return false
	}
	t.from = t.Value(now)
	t.to = target
	t.start = now
	t.duration = duration
	return true
}

// IntValue samples the tween and truncates toward zero, the way integer
// animations are converted from their float representation.
func (t *Tween) IntValue(now time.Time) int {
	return int(t.Value(now))
}
