package views

import (
	"fmt"
	"strings"

	"circularmenu/internal/output"
	"circularmenu/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// RenderSection lists the items of a report section, one per line.
func RenderSection(sec *output.Section) string {
	var b strings.Builder
	for _, item := range sec.Items {
		valStr := fmt.Sprintf("%.0f%s", item.Value, item.Unit)
		if item.Note != "" {
			valStr += " " + item.Note
		}
		if item.Status != "" {
			valStr = ColorForStatus(item.Status).Render(fmt.Sprintf("%s [%s]", valStr, item.Status))
		}
		fmt.Fprintf(&b, "%-15s : %s\n", item.Label, valStr)
	}
	return b.String()
}

func ColorForStatus(status string) lipgloss.Style {
	sStyle := styles.StatusStyle
	switch status {
	case output.StatusSelected:
		return sStyle.Foreground(lipgloss.Color("#FAFCFF")) // selected icon tint
	case output.StatusHidden:
		return sStyle.Foreground(lipgloss.Color("240")) // Grey
	}
	return sStyle.Foreground(lipgloss.Color("46")) // Green
}
