package ui

import (
	"slices"

	tint "github.com/lrstanley/bubbletint"

	"github.com/xolan/blogger/internal/config"
)

// DefaultTheme is used when no theme is configured or the configured one is unknown
const DefaultTheme = config.DefaultTheme

// ThemeProvider holds the bubbletint registry behind the dashboard styles
type ThemeProvider struct {
	registry *tint.Registry
	ids      []string
}

// NewThemeProvider selects initialTheme, falling back to DefaultTheme.
// An empty name or an unknown id keeps the default.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	tints := tint.DefaultTints()
	fallback := tints[0]
	ids := make([]string, 0, len(tints))
	for _, t := range tints {
		ids = append(ids, t.ID())
		if t.ID() == DefaultTheme {
			fallback = t
		}
	}
	slices.Sort(ids)

	tp := &ThemeProvider{registry: tint.NewRegistry(fallback, tints...), ids: ids}
	if initialTheme != "" {
		tp.registry.SetTintID(initialTheme)
	}
	return tp
}

// SetTheme switches to the theme with the given id. It returns false and
// keeps the current theme when the id is unknown.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// Apply switches to name and returns the message that restyles the views.
// An unknown name leaves the current theme in place.
func (tp *ThemeProvider) Apply(name string) ThemeChangedMsg {
	tp.SetTheme(name)
	return ThemeChangedMsg{ThemeName: tp.CurrentName(), Styles: tp.Styles()}
}

// CurrentName returns the id of the current theme
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// AvailableThemes returns the sorted ids of every bundled theme
func (tp *ThemeProvider) AvailableThemes() []string {
	return slices.Clone(tp.ids)
}

// Has reports whether a theme id is known
func (tp *ThemeProvider) Has(name string) bool {
	_, found := slices.BinarySearch(tp.ids, name)
	return found
}

// Styles returns the dashboard styles for the current theme
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
