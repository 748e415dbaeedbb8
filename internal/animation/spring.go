package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring follows a moving target with damped harmonic motion. The host
// uses it for the keyboard focus ring, which has no fixed duration.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSpring creates a spring stepping at fps. Frequency controls speed and
// damping below 1 allows overshoot.
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Update advances one frame towards target and returns the new position.
func (s *Spring) Update(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// Position is the current spring position.
func (s *Spring) Position() float64 {
	return s.pos
}

// Settled reports whether the spring is effectively at rest on target.
func (s *Spring) Settled(target float64) bool {
	return math.Abs(s.pos-target) < 0.01 && math.Abs(s.vel) < 0.01
}

// Jump moves the spring to pos without motion.
func (s *Spring) Jump(pos float64) {
	s.pos = pos
	s.vel = 0
}
