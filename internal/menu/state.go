// Package menu holds the circular menu state machine and its configuration
// values. State is confined to the UI goroutine and is not safe for
// concurrent use.
package menu

import "circularmenu/internal/geometry"

// Transition names the operation that produced a Snapshot.
type Transition int

const (
	TransitionInit Transition = iota
	TransitionShow
	TransitionHide
	TransitionToggle
	TransitionSelect
)

func (t Transition) String() string {
	switch t {
	case TransitionInit:
		return "init"
	case TransitionShow:
		return "show"
	case TransitionHide:
		return "hide"
	case TransitionToggle:
		return "toggle"
	case TransitionSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of State taken right after a mutation.
type Snapshot struct {
	Seq           uint64
	Cause         Transition
	Expanded      bool
	SelectedIndex int
	PreviousIndex int
	ItemCount     int
	AngleStep     float64
}

// Option configures a State at construction.
type Option func(*State)

// WithColors overrides the default palette.
func WithColors(c Colors) Option {
	return func(s *State) {
		s.colors = c
	}
}

// WithBrushes overrides the default gradients.
func WithBrushes(b Brushes) Option {
	return func(s *State) {
		s.brushes = b.clone()
	}
}

// WithLayout overrides the default dimensions.
func WithLayout(l Layout) Option {
	return func(s *State) {
		s.layout = l
	}
}

// WithExpanded sets the startup expansion. Menus start collapsed otherwise.
func WithExpanded(expanded bool) Option {
	return func(s *State) {
		s.expanded = expanded
	}
}

type subscriber struct {
	id uint64
	fn func(Snapshot)
}

// State is the menu state machine.
type State struct {
	items     []MenuItem
	angleStep float64
	colors    Colors
	brushes   Brushes
	layout    Layout

	expanded bool
	selected int
	previous int

	seq         uint64
	nextSubID   uint64
	subscribers []subscriber
}

// New builds a State. Items beyond MaxItems are dropped.
func New(items []MenuItem, opts ...Option) *State {
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	s := &State{
		items:   append([]MenuItem(nil), items...),
		colors:  DefaultColors(),
		brushes: DefaultBrushes(),
		layout:  DefaultLayout(),
	}
	s.angleStep = geometry.AngleStep(len(s.items))

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *State) Expanded() bool      { return s.expanded }
func (s *State) SelectedIndex() int  { return s.selected }
func (s *State) PreviousIndex() int  { return s.previous }
func (s *State) ItemCount() int      { return len(s.items) }
func (s *State) AngleStep() float64  { return s.angleStep }
func (s *State) Colors() Colors      { return s.colors }
func (s *State) Brushes() Brushes    { return s.brushes.clone() }
func (s *State) Layout() Layout      { return s.layout }
func (s *State) Item(i int) MenuItem { return s.items[i] }

// Items returns a copy of the ring entries.
func (s *State) Items() []MenuItem {
	return append([]MenuItem(nil), s.items...)
}

// Snapshot returns the current state without emitting anything.
func (s *State) Snapshot() Snapshot {
	return s.snapshot(TransitionInit)
}

func (s *State) snapshot(cause Transition) Snapshot {
	return Snapshot{
		Seq:           s.seq,
		Cause:         cause,
		Expanded:      s.expanded,
		SelectedIndex: s.selected,
		PreviousIndex: s.previous,
		ItemCount:     len(s.items),
		AngleStep:     s.angleStep,
	}
}

// Show expands the ring. Already expanded menus are left untouched.
func (s *State) Show() {
	if s.expanded {
		return
	}
	s.expanded = true
	s.emit(TransitionShow)
}

// Hide collapses the ring and resets the previous selection to 0.
// Already collapsed menus are left untouched.
func (s *State) Hide() {
	if !s.expanded {
		return
	}
	s.expanded = false
	s.previous = 0
	s.emit(TransitionHide)
}

// Toggle flips expansion. Collapsing resets the previous selection to 0.
func (s *State) Toggle() {
	s.expanded = !s.expanded
	if !s.expanded {
		s.previous = 0
	}
	s.emit(TransitionToggle)
}

// SelectMenu records index as the selection and the old selection as
// previous. Expansion is not affected.
func (s *State) SelectMenu(index int) error {
	if index < 0 || index >= len(s.items) {
		return &IndexError{Index: index, Count: len(s.items)}
	}
	s.previous = s.selected
	s.selected = index
	s.emit(TransitionSelect)
	return nil
}

// Subscribe registers fn for every snapshot emitted after this call.
// The returned func removes the subscription.
func (s *State) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *State) emit(cause Transition) {
	s.seq++
	snap := s.snapshot(cause)
	for _, sub := range append([]subscriber(nil), s.subscribers...) {
		sub.fn(snap)
	}
}
