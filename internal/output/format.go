package output

import (
	"fmt"
	"strconv"
	"time"

	"circularmenu/internal/animation"
	"circularmenu/internal/geometry"
	"circularmenu/internal/menu"
)

// Section constants to avoid hardcoded strings
const (
	SectionState     = "state"
	SectionRing      = "ring"
	SectionTiming    = "timing"
	SectionAnimation = "animation"
)

// Item statuses
const (
	StatusSelected = "SEL"
	StatusVisible  = "ON"
	StatusHidden   = "OFF"
)

// UI/view-model types (no printing here)
type Item struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	Status string  `json:"status,omitempty"`
	Note   string  `json:"note,omitempty"`
}

type Section struct {
	ID    string `json:"id"` // state/ring/timing/animation
	Title string `json:"title"`
	Items []Item `json:"items"`
}

type Report struct {
	Sections  []Section `json:"sections"`
	Expanded  bool      `json:"expanded"`
	Selected  int       `json:"selected_index"`
	Previous  int       `json:"previous_index"`
	ItemCount int       `json:"item_count"`
	AngleStep float64   `json:"angle_step"`
}

// BuildReport converts the menu state and a sampled frame into UI-ready
// sections.
func BuildReport(s *menu.State, frame animation.Frame, policy geometry.Policy) Report {
	snap := s.Snapshot()
	layout := s.Layout()

	state := Section{ID: SectionState, Title: "State"}
	state.Items = append(state.Items,
		Item{Key: "expanded", Label: "Expanded", Value: boolValue(snap.Expanded), Note: strconv.FormatBool(snap.Expanded)},
		Item{Key: "selected_index", Label: "Selected", Value: float64(snap.SelectedIndex), Note: titleAt(s, snap.SelectedIndex)},
		Item{Key: "previous_index", Label: "Previous", Value: float64(snap.PreviousIndex), Note: titleAt(s, snap.PreviousIndex)},
		Item{Key: "item_count", Label: "Items", Value: float64(snap.ItemCount)},
		Item{Key: "angle_step", Label: "Angle Step", Value: snap.AngleStep, Unit: "°"},
		Item{Key: "seq", Label: "Transitions", Value: float64(snap.Seq)},
	)

	ring := Section{ID: SectionRing, Title: "Ring"}
	for i, it := range s.Items() {
		p := geometry.ItemPlacement(i, snap.AngleStep, layout.ItemRadius)
		status := StatusHidden
		switch {
		case i == snap.SelectedIndex && i < frame.Expansion:
			status = StatusSelected
		case i < frame.Expansion:
			status = StatusVisible
		}
		ring.Items = append(ring.Items, Item{
			Key:    "item_" + strconv.Itoa(i),
			Label:  fmt.Sprintf("%d %s", i, it.Title),
			Value:  geometry.ItemRotation(i, snap.AngleStep),
			Unit:   "°",
			Status: status,
			Note:   fmt.Sprintf("%s (%.0f,%.0f)", iconNote(it.Icon), p.Offset.X, p.Offset.Y),
		})
	}
	ind := geometry.IndicatorPlacement(frame.Selection, snap.AngleStep, layout.IndicatorRadius, layout.IndicatorTilt)
	ring.Items = append(ring.Items, Item{
		Key:   "indicator",
		Label: "Indicator",
		Value: ind.Rotation,
		Unit:  "°",
		Note:  fmt.Sprintf("(%.0f,%.0f)", ind.Offset.X, ind.Offset.Y),
	})

	timing := Section{ID: SectionTiming, Title: "Timing"}
	timing.Items = append(timing.Items,
		Item{Key: "expand_in", Label: "Expand", Value: ms(policy.ExpandDuration(true, snap.ItemCount)), Unit: "ms"},
		Item{Key: "expand_out", Label: "Collapse", Value: ms(policy.ExpandDuration(false, snap.ItemCount)), Unit: "ms"},
		Item{Key: "rotation", Label: "Rotation", Value: ms(policy.RotationDuration()), Unit: "ms"},
		Item{Key: "selection", Label: "Last Selection", Value: ms(policy.SelectionDuration(snap.SelectedIndex, snap.PreviousIndex)), Unit: "ms"},
	)

	anim := Section{ID: SectionAnimation, Title: "Animation"}
	anim.Items = append(anim.Items,
		Item{Key: "expansion", Label: "Visible Items", Value: float64(frame.Expansion)},
		Item{Key: "rotation", Label: "Controller", Value: frame.Rotation, Unit: "°"},
		Item{Key: "selection", Label: "Indicator On", Value: float64(frame.Selection)},
		Item{Key: "animating", Label: "Animating", Value: boolValue(frame.Animating), Note: strconv.FormatBool(frame.Animating)},
	)

	return Report{
		Sections:  []Section{state, ring, timing, anim},
		Expanded:  snap.Expanded,
		Selected:  snap.SelectedIndex,
		Previous:  snap.PreviousIndex,
		ItemCount: snap.ItemCount,
		AngleStep: snap.AngleStep,
	}
}

func (r Report) SectionByID(id string) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i]
		}
	}
	return nil
}

func (s Section) ItemByKey(key string) *Item {
	for i := range s.Items {
		if s.Items[i].Key == key {
			return &s.Items[i]
		}
	}
	return nil
}

func iconNote(icon menu.IconRef) string {
	switch ic := icon.(type) {
	case menu.VectorIcon:
		return ic.Glyph
	case menu.ResourceIcon:
		return "res#" + strconv.Itoa(ic.ID)
	case menu.URLIcon:
		return "url"
	default:
		return "-"
	}
}

func titleAt(s *menu.State, i int) string {
	if i < 0 || i >= s.ItemCount() {
		return ""
	}
	return s.Item(i).Title
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func ms(d time.Duration) float64 {
	return float64(d.Milliseconds())
}
