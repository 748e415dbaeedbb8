package tui

import (
	"circularmenu/internal/i18n"
	"circularmenu/ui/tui/components"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap adds page navigation to the widget bindings.
type keyMap struct {
	Menu      components.MenuKeyMap
	Inspector key.Binding
	Report    key.Binding
	Console   key.Binding
	Cycle     key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap(menuKeys components.MenuKeyMap, loc *i18n.Localizer) keyMap {
	return keyMap{
		Menu: menuKeys,
		Inspector: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", loc.Text(i18n.HelpInspector, nil)),
		),
		Report: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "report"),
		),
		Console: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", loc.Text(i18n.HelpConsole, nil)),
		),
		Cycle: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next channel"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc", "backspace"),
			key.WithHelp("b", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", loc.Text(i18n.HelpQuit, nil)),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.Menu.Bindings(), k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Menu.Bindings(),
		{k.Inspector, k.Report, k.Console},
		{k.Help, k.Quit},
	}
}
