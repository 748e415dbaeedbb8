package views

import (
	"fmt"

	"circularmenu/internal/output"
	"circularmenu/ui/tui/state"
	"circularmenu/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type ReportView struct{}

func (v ReportView) Render(s state.AppState, props ViewProps) string {
	if s.Err != nil {
		return fmt.Sprintf("Error: %v", s.Err)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Left,
		props.SpinnerView,
		styles.TitleStyle.Render("Circular Menu Report"),
		fmt.Sprintf(" %s", props.EventsText),
	)

	report := props.Report

	card := func(id, title string) string {
		sec := report.SectionByID(id)
		if sec == nil {
			return ""
		}
		return styles.CardStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.NewStyle().Bold(true).Render(title),
				RenderSection(sec),
			),
		)
	}

	stateCol := card(output.SectionState, "State")
	ringCol := card(output.SectionRing, "Ring Layout")
	timingCol := card(output.SectionTiming, "Timings")
	animCol := card(output.SectionAnimation, "Frame")

	row1 := lipgloss.JoinHorizontal(lipgloss.Top, stateCol, ringCol)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, timingCol, animCol)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		row1,
		row2,
		lipgloss.NewStyle().Foreground(styles.Subtle).Render("\nPress 'b' to go back • 'q' to quit"),
	)
}
