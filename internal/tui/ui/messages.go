package ui

import "github.com/xolan/diary/internal/entry"

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// EntryAddedMsg is sent to the program whenever the entry store accepts a new entry.
type EntryAddedMsg struct {
	Entry entry.Entry
}
