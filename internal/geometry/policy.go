// Package geometry computes ring positions and animation durations.
// Every function is pure.
package geometry

import "time"

const (
	ExpandInDuration         = 300 * time.Millisecond // show, independent of item count
	ExpandOutPerItemDuration = 100 * time.Millisecond // hide, per revealed item
	RotationDuration         = 500 * time.Millisecond // controller spin
	SelectionStepDuration    = 50 * time.Millisecond  // adjacent selection
	SelectionPerStepDuration = 60 * time.Millisecond  // distant selection, per index
	SelectionMinDuration     = 100 * time.Millisecond
	SelectionMaxDuration     = 500 * time.Millisecond

	CollapsedRotation = 180.0
	ExpandedRotation  = 0.0
)

// Policy holds the duration constants so hosts can tune the feel.
// The zero value is not useful; start from DefaultPolicy.
type Policy struct {
	ExpandIn         time.Duration `toml:"expand_in"`
	ExpandOutPerItem time.Duration `toml:"expand_out_per_item"`
	Rotation         time.Duration `toml:"rotation"`
	SelectionStep    time.Duration `toml:"selection_step"`
	SelectionPerStep time.Duration `toml:"selection_per_step"`
	SelectionMin     time.Duration `toml:"selection_min"`
	SelectionMax     time.Duration `toml:"selection_max"`
}

// DefaultPolicy returns the stock timings.
func DefaultPolicy() Policy {
	return Policy{
		ExpandIn:         ExpandInDuration,
		ExpandOutPerItem: ExpandOutPerItemDuration,
		Rotation:         RotationDuration,
		SelectionStep:    SelectionStepDuration,
		SelectionPerStep: SelectionPerStepDuration,
		SelectionMin:     SelectionMinDuration,
		SelectionMax:     SelectionMaxDuration,
	}
}

// ExpandDuration is fixed when expanding and scales with n when collapsing.
func (p Policy) ExpandDuration(expanding bool, n int) time.Duration {
	if expanding {
		return p.ExpandIn
	}
	return p.ExpandOutPerItem * time.Duration(n)
}

// RotationDuration is the controller spin time.
func (p Policy) RotationDuration() time.Duration {
	return p.Rotation
}

// SelectionDuration snaps adjacent moves and scales distant ones, clamped
// to [SelectionMin, SelectionMax].
func (p Policy) SelectionDuration(selected, previous int) time.Duration {
	delta := selected - previous
	if delta < 0 {
		delta = -delta
	}
	if delta == 1 {
		return p.SelectionStep
	}
	return clampDuration(p.SelectionPerStep*time.Duration(delta), p.SelectionMin, p.SelectionMax)
}

// Validate rejects negative durations and an inverted selection range.
func (p Policy) Validate() error {
	fields := []struct {
		name string
		d    time.Duration
	}{
		{"ExpandIn", p.ExpandIn},
		{"ExpandOutPerItem", p.ExpandOutPerItem},
		{"Rotation", p.Rotation},
		{"SelectionStep", p.SelectionStep},
		{"SelectionPerStep", p.SelectionPerStep},
		{"SelectionMin", p.SelectionMin},
		{"SelectionMax", p.SelectionMax},
	}
	for _, f := range fields {
		if f.d < 0 {
			return &PolicyError{Field: f.name, Message: "must not be negative"}
		}
	}
	if p.SelectionMin > p.SelectionMax {
		return &PolicyError{Field: "SelectionMin", Message: "exceeds SelectionMax"}
	}
	return nil
}

// PolicyError represents an invalid timing value.
type PolicyError struct {
	Field   string
	Message string
}

func (e *PolicyError) Error() string {
	return "policy error: " + e.Field + " " + e.Message
}

var defaultPolicy = DefaultPolicy()

// ExpandDuration uses DefaultPolicy.
func ExpandDuration(expanding bool, n int) time.Duration {
	return defaultPolicy.ExpandDuration(expanding, n)
}

// SelectionDuration uses DefaultPolicy.
func SelectionDuration(selected, previous int) time.Duration {
	return defaultPolicy.SelectionDuration(selected, previous)
}

// RotationTarget is the controller angle for the given expansion.
func RotationTarget(expanded bool) float64 {
	if expanded {
		return ExpandedRotation
	}
	return CollapsedRotation
}

// ExpansionTarget is the number of visible items for the given expansion.
func ExpansionTarget(expanded bool, n int) int {
	if expanded {
		return n
	}
	return 0
}

// SelectionTarget is where the indicator rests. Collapsed menus park it at 0.
func SelectionTarget(expanded bool, selected int) int {
	if expanded {
		return selected
	}
	return 0
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
