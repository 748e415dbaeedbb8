package views

import (
	"circularmenu/internal/animation"
	"circularmenu/internal/output"
	"circularmenu/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	WidgetView  string
	HelpView    string
	SpinnerView string
	ChartView   string
	ScrollY     int

	// Pre-localized text
	Title       string
	ContentText string
	EventsText  string

	Report  output.Report
	Frame   animation.Frame
	Timings animation.Timings
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
