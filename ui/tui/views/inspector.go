package views

import (
	"fmt"
	"strings"

	"circularmenu/ui/tui/state"
	"circularmenu/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type InspectorView struct{}

func (v InspectorView) Render(s state.AppState, props ViewProps) string {
	header := MenuHeaderStyle.Width(props.Width).Render("Animation Inspector")

	t := props.Timings
	info := lipgloss.NewStyle().
		Padding(1, 2).
		Render(fmt.Sprintf("Expand: %dms\nRotate: %dms\nSelect: %dms",
			t.Expansion.Milliseconds(), t.Rotation.Milliseconds(), t.Selection.Milliseconds()))

	chart := lipgloss.NewStyle().Padding(0, 1).Render(props.ChartView)

	// Current value of each channel against its range.
	f := props.Frame
	n := props.Report.ItemCount
	channels := []struct {
		name  string
		value float64
		max   float64
		text  string
	}{
		{"Expansion", float64(f.Expansion), float64(n), fmt.Sprintf("%d/%d", f.Expansion, n)},
		{"Rotation", f.Rotation, 180, fmt.Sprintf("%.0f°", f.Rotation)},
		{"Selection", float64(f.Selection), float64(max(n-1, 0)), fmt.Sprintf("%d", f.Selection)},
	}

	var bars []string
	for _, ch := range channels {
		barWidth := 20
		filled := 0
		if ch.max > 0 {
			filled = int(float64(barWidth) * ch.value / ch.max)
		}
		filled = min(max(filled, 0), barWidth)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

		color := lipgloss.Color("46") // Green
		if f.Animating {
			color = lipgloss.Color("220") // Gold while moving
		}
		bars = append(bars, fmt.Sprintf("%-9s [%s] %s", ch.name, lipgloss.NewStyle().Foreground(color).Render(bar), ch.text))
	}

	barBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Highlight).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render("Current Frame"),
			lipgloss.JoinVertical(lipgloss.Left, bars...),
		))

	content := lipgloss.JoinHorizontal(lipgloss.Top, chart, barBox)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		info,
		content,
		lipgloss.NewStyle().Padding(1, 2).Foreground(styles.Subtle).Render("Press 'n' for the next channel • 'b' to go back"),
	)
}
