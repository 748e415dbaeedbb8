package state

import (
	"time"
)

type Page int

const (
	PageMenu      Page = iota
	PageReport         // layout and timing report
	PageInspector      // animation channels over time
	PageConsole        // transition log
)

// AppState holds what the host shows besides the widget itself.
type AppState struct {
	LastSelected string
	HasSelection bool
	Events       []string
	EventCount   int64
	LastUpdate   time.Time
	Err          error
	CurrentPage  Page
}
