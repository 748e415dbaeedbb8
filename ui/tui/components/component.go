package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Component is a Bubble Tea model owned by a parent model rather than run
// as a program.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
}

// Animated components are driven by the host's frame ticks. Close releases
// their subscriptions.
type Animated interface {
	Component
	Advance(now time.Time)
	Animating() bool
	Close()
}

var _ Animated = (*CircularMenu)(nil)
