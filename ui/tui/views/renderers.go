package views

import (
	"circularmenu/ui/tui/state"
)

func RenderMenu(s state.AppState, props ViewProps) string {
	return MenuView{}.Render(s, props)
}

func RenderReport(s state.AppState, props ViewProps) string {
	return ReportView{}.Render(s, props)
}

func RenderConsole(s state.AppState, props ViewProps) string {
	return ConsoleView{}.Render(s, props)
}

func RenderInspector(s state.AppState, props ViewProps) string {
	return InspectorView{}.Render(s, props)
}
