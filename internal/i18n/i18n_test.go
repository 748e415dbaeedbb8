package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestEnglishDefaults(t *testing.T) {
	l := Default()
	if got := l.Text(ControllerDescription, nil); got != "Menu Expand & Collapse" {
		t.Errorf("Expected controller description, got %q", got)
	}
	if got := l.Text(ItemDescription, nil); got != "Menu Item" {
		t.Errorf("Expected item description, got %q", got)
	}
	if got := l.Text(SelectedTitle, map[string]any{"Title": "Home"}); got != "Selected: Home" {
		t.Errorf("Expected templated title, got %q", got)
	}
}

func TestSpanish(t *testing.T) {
	l, err := New("es")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Language() != language.Spanish {
		t.Errorf("Expected es tag, got %v", l.Language())
	}
	if got := l.Text(ControllerDescription, nil); got != "Expandir y contraer menú" {
		t.Errorf("Expected Spanish controller description, got %q", got)
	}
	if got := l.Plural(EventsCount, 1, nil); got != "1 transición registrada" {
		t.Errorf("Expected singular form, got %q", got)
	}
	if got := l.Plural(EventsCount, 3, nil); got != "3 transiciones registradas" {
		t.Errorf("Expected plural form, got %q", got)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	l, err := New("de")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := l.Text(HelpQuit, nil); got != "quit" {
		t.Errorf("Expected English fallback, got %q", got)
	}
}

func TestInvalidLocale(t *testing.T) {
	if _, err := New("not a locale!"); err == nil {
		t.Error("Expected error for malformed locale")
	}
}

func TestNilLocalizer(t *testing.T) {
	var l *Localizer
	if got := l.Text(HelpHide, nil); got != "hide" {
		t.Errorf("Expected default text from nil localizer, got %q", got)
	}
	if got := l.Text(nil, nil); got != "" {
		t.Errorf("Expected empty string for nil message, got %q", got)
	}
}
