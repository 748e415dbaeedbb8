package views

import (
	"fmt"
	"strings"

	"circularmenu/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

// ConsoleView shows the transition log, newest last.
type ConsoleView struct{}

func (v ConsoleView) Render(s state.AppState, props ViewProps) string {
	header := MenuHeaderStyle.Width(props.Width).Render("Transition Log · " + props.EventsText)

	availableHeight := props.Height - lipgloss.Height(header) - 4
	if availableHeight < 1 {
		availableHeight = 1
	}

	lines := s.Events
	totalLines := len(lines)

	scrollY := props.ScrollY
	if scrollY > totalLines-availableHeight {
		scrollY = totalLines - availableHeight
	}
	if scrollY < 0 {
		scrollY = 0
	}

	end := min(scrollY+availableHeight, totalLines)
	viewContent := strings.Join(lines[scrollY:end], "\n")

	box := lipgloss.NewStyle().
		Width(max(props.Width-4, 1)).
		Height(availableHeight).
		Padding(0, 1).
		Render(viewContent)

	footerText := fmt.Sprintf("Scroll: %d/%d • Press 'b' to go back", scrollY, totalLines)
	if totalLines > availableHeight {
		footerText += " • Use ↑/↓ to scroll"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Padding(1, 2).Render(box),
		lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#555")).Render(footerText),
	)
}
