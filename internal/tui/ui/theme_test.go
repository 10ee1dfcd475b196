package ui

import (
	"slices"
	"testing"
)

func TestNewThemeProvider(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		want    string
	}{
		{"empty uses default", "", DefaultTheme},
		{"known theme", "nord", "nord"},
		{"unknown falls back to default", "nonexistent-theme-xyz", DefaultTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := NewThemeProvider(tt.initial)
			if got := tp.CurrentName(); got != tt.want {
				t.Errorf("CurrentName() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tp := NewThemeProvider("")

	if !tp.SetTheme("nord") {
		t.Error("expected SetTheme to accept a bundled theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}

	if tp.SetTheme("nonexistent-theme-xyz") {
		t.Error("expected SetTheme to reject an unknown theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme to stay 'nord', got %q", tp.CurrentName())
	}
}

func TestThemeProvider_Apply(t *testing.T) {
	tp := NewThemeProvider("")

	msg := tp.Apply("nord")
	if msg.ThemeName != "nord" {
		t.Errorf("expected ThemeName 'nord', got %q", msg.ThemeName)
	}
	if msg.Styles.Dialog.GetWidth() != 56 {
		t.Error("expected the message to carry complete styles")
	}

	msg = tp.Apply("nonexistent-theme-xyz")
	if msg.ThemeName != "nord" {
		t.Errorf("expected an unknown theme to keep 'nord', got %q", msg.ThemeName)
	}
}

func TestThemeProvider_AvailableThemes(t *testing.T) {
	tp := NewThemeProvider("")

	themes := tp.AvailableThemes()
	if len(themes) == 0 {
		t.Fatal("expected at least one available theme")
	}
	if !slices.IsSorted(themes) {
		t.Error("expected themes to be sorted")
	}
	if !slices.Contains(themes, DefaultTheme) {
		t.Errorf("expected %q in available themes", DefaultTheme)
	}

	themes[0] = "mutated"
	if tp.AvailableThemes()[0] == "mutated" {
		t.Error("expected AvailableThemes to return a copy")
	}
}

func TestThemeProvider_Has(t *testing.T) {
	tp := NewThemeProvider("")

	if !tp.Has("nord") {
		t.Error("expected 'nord' to be a known theme")
	}
	if tp.Has("nonexistent-theme-xyz") {
		t.Error("expected unknown theme to be reported missing")
	}
}

func TestThemeProvider_Styles(t *testing.T) {
	styles := NewThemeProvider("dracula").Styles()

	if styles.App.GetPaddingTop() == 0 && styles.App.GetPaddingBottom() == 0 {
		t.Error("expected App style to have padding")
	}
}
