package views

import (
	"circularmenu/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

// MenuView is the main page: a content pane with the circular menu
// floating at the bottom right.
type MenuView struct{}

func (v MenuView) Render(s state.AppState, props ViewProps) string {
	header := MenuHeaderStyle.Width(props.Width).Render(props.Title)
	footer := lipgloss.NewStyle().PaddingLeft(2).Render(props.HelpView)

	bodyHeight := props.Height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	widgetW := lipgloss.Width(props.WidgetView)
	contentW := props.Width - widgetW
	if contentW < 1 {
		contentW = 1
	}

	contentStyle := CopyStyle
	if s.HasSelection {
		contentStyle = ContentStyle
	}
	content := lipgloss.NewStyle().
		Width(contentW).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			contentStyle.Render(props.ContentText),
			CopyStyle.Render(props.EventsText),
		))

	widget := lipgloss.Place(widgetW, bodyHeight, lipgloss.Right, lipgloss.Bottom, props.WidgetView)

	body := lipgloss.JoinHorizontal(lipgloss.Top, content, widget)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Keep styles global or move to theme.go if preferred, but keeping here for now.
var (
	BrandColor = lipgloss.Color("#224EFF")
	BaseColor  = lipgloss.Color("#444")

	MenuHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Align(lipgloss.Left).
			Padding(1, 2)

	ContentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFCFF")).
			MarginTop(1).
			PaddingLeft(2)

	CopyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true).
			MarginTop(1).
			PaddingLeft(2)
)
