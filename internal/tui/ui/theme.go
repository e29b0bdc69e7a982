package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is used when no theme is configured or the configured one is unknown
const DefaultTheme = "dracula"

// ThemeProvider manages TUI themes using bubbletint
type ThemeProvider struct {
	registry *tint.Registry
	themes   []string
}

// NewThemeProvider creates a ThemeProvider starting at initialTheme.
// Unknown or empty names fall back to DefaultTheme.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	registry := tint.NewRegistry(fallback, all...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}

	themes := registry.TintIDs()
	sort.Strings(themes)

	return &ThemeProvider{registry: registry, themes: themes}
}

// SetTheme switches to the named theme. It reports false, leaving the
// current theme in place, when the name is unknown.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// CurrentName returns the id of the current theme
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// AvailableThemes returns all theme ids, sorted
func (tp *ThemeProvider) AvailableThemes() []string {
	out := make([]string, len(tp.themes))
	copy(out, tp.themes)
	return out
}

// IndexOf returns the position of name in AvailableThemes, or 0 when absent.
func (tp *ThemeProvider) IndexOf(name string) int {
	i := sort.SearchStrings(tp.themes, name)
	if i < len(tp.themes) && tp.themes[i] == name {
		return i
	}
	return 0
}

// Styles returns styles for the current theme
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
