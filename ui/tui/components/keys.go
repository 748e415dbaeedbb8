package components

import (
	"github.com/charmbracelet/bubbles/key"

	"circularmenu/internal/i18n"
)

// MenuKeyMap holds the keyboard bindings of the circular menu.
type MenuKeyMap struct {
	Toggle key.Binding
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
	Hide   key.Binding
}

// DefaultMenuKeyMap returns the stock bindings with help text from loc.
func DefaultMenuKeyMap(loc *i18n.Localizer) MenuKeyMap {
	return MenuKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "t"),
			key.WithHelp("space", loc.Text(i18n.HelpToggle, nil)),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("←/→", loc.Text(i18n.HelpFocus, nil)),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", loc.Text(i18n.HelpSelect, nil)),
		),
		Hide: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", loc.Text(i18n.HelpHide, nil)),
		),
	}
}

// Bindings lists the bindings that carry help text.
func (k MenuKeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Select, k.Hide}
}
