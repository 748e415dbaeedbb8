// Package i18n holds the user-facing strings of the menu and its host.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var catalogs embed.FS

// Message is an alias for i18n.Message so callers need not import go-i18n.
type Message = i18n.Message

var (
	ControllerDescription = &Message{ID: "controller_description", Other: "Menu Expand & Collapse"}
	ItemDescription       = &Message{ID: "item_description", Other: "Menu Item"}

	HelpToggle    = &Message{ID: "help_toggle", Other: "toggle menu"}
	HelpFocus     = &Message{ID: "help_focus", Other: "move focus"}
	HelpSelect    = &Message{ID: "help_select", Other: "select"}
	HelpHide      = &Message{ID: "help_hide", Other: "hide"}
	HelpInspector = &Message{ID: "help_inspector", Other: "inspector"}
	HelpConsole   = &Message{ID: "help_console", Other: "events"}
	HelpQuit      = &Message{ID: "help_quit", Other: "quit"}

	SelectedTitle   = &Message{ID: "selected_title", Other: "Selected: {{.Title}}"}
	NothingSelected = &Message{ID: "nothing_selected", Other: "Nothing selected yet"}

	PlaceholderResource = &Message{ID: "placeholder_resource", Other: "resource #{{.ID}} (not rendered)"}
	PlaceholderURL      = &Message{ID: "placeholder_url", Other: "remote icon (not rendered)"}

	EventsCount = &Message{ID: "events_count", One: "{{.Count}} transition recorded", Other: "{{.Count}} transitions recorded"}
)

// Localizer resolves messages for one language with English as fallback.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewBundle loads the embedded catalogs.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read catalogs: %w", err)
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		buf, err := catalogs.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, e.Name()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return bundle, nil
}

// New returns a Localizer for code, e.g. "es" or "en-US".
func New(code string) (*Localizer, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", code, err)
	}
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}, nil
}

// Default is an English localizer that never fails to build.
func Default() *Localizer {
	l, err := New("en")
	if err != nil {
		return &Localizer{tag: language.English}
	}
	return l
}

// Language is the requested tag.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Text localizes msg. On any failure the default text is returned.
func (l *Localizer) Text(msg *Message, data map[string]any) string {
	if msg == nil {
		return ""
	}
	if l == nil || l.localizer == nil {
		return msg.Other
	}
	out, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil {
		return msg.Other
	}
	return out
}

// Plural localizes msg choosing the form for count.
func (l *Localizer) Plural(msg *Message, count int, data map[string]any) string {
	if msg == nil {
		return ""
	}
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Count"]; !ok {
		data["Count"] = count
	}
	if l == nil || l.localizer == nil {
		return msg.Other
	}
	out, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		PluralCount:    count,
		TemplateData:   data,
	})
	if err != nil {
		return msg.Other
	}
	return out
}
