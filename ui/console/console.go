package console

import (
	"fmt"
	"io"
	"strings"

	"circularmenu/internal/output"
)

const (
	colorReset = "\033[0m"
	colorDim   = "\033[2m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
)

// Print renders the menu report to the writer in a compact format.
func Print(w io.Writer, r output.Report) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", "CIRCULAR MENU REPORT", colorReset)

	for _, sec := range r.Sections {
		fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+sec.Title, colorReset)

		for _, it := range sec.Items {
			label := it.Label
			if len([]rune(label)) > 20 {
				label = string([]rune(label)[:17]) + "..."
			}

			valStr := formatValue(it)
			if it.Note != "" && it.Unit != "" {
				valStr += " " + it.Note
			} else if it.Note != "" {
				valStr = it.Note
			}

			marker := ""
			if it.Status != "" {
				marker = fmt.Sprintf(" %s%s%s", colorFor(it.Status), markerFor(it.Status), colorReset)
			}

			dots := strings.Repeat("·", max(1, 22-len([]rune(label))))
			fmt.Fprintf(w, "  %s%s %10s%s\n", label, colorCyan+dots+colorReset, valStr, marker)
		}
	}

	state := "collapsed"
	if r.Expanded {
		state = "expanded"
	}
	fmt.Fprintf(w, "%s─ Summary%s: %d items | step %.1f° | %s\n\n", colorCyan, colorReset, r.ItemCount, r.AngleStep, state)
}

func formatValue(it output.Item) string {
	switch {
	case it.Unit != "":
		return fmt.Sprintf("%.1f%s", it.Value, it.Unit)
	default:
		return fmt.Sprintf("%.0f", it.Value)
	}
}

func markerFor(status string) string {
	switch status {
	case output.StatusSelected:
		return "●"
	case output.StatusVisible:
		return "✓"
	default:
		return "·"
	}
}

func colorFor(status string) string {
	switch status {
	case output.StatusSelected:
		return colorCyan
	case output.StatusVisible:
		return colorGreen
	default:
		return colorDim
	}
}
