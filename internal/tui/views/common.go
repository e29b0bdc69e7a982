package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/diary/internal/cli"
	"github.com/xolan/diary/internal/service"
	"github.com/xolan/diary/internal/tui/ui"
)

// EntryRenderOptions configures how gallery rows are rendered
type EntryRenderOptions struct {
	Width  int // available width, 0 means unlimited
	Cursor int // selected row, -1 for none
	Offset int // first row to render
	Rows   int // rows to render, 0 means all
}

// RenderEntryList renders gallery rows as "[n] YYYY-MM-DD  Title" with aligned columns
func RenderEntryList(entries []service.IndexedEntry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	width := 0
	for _, ie := range entries {
		width = max(width, cli.IndexWidth(ie.Index))
	}

	end := len(entries)
	if opts.Rows > 0 {
		end = min(end, opts.Offset+opts.Rows)
	}

	var b strings.Builder
	for i := opts.Offset; i < end; i++ {
		ie := entries[i]
		index := styles.EntryIndex.Render(fmt.Sprintf("[%*d]", width, ie.Index))
		date := styles.EntryDate.Render(ie.Entry.Date)

		title := ie.Entry.Title
		if opts.Width > 0 {
			room := opts.Width - lipgloss.Width(index) - lipgloss.Width(date) - 6
			title = truncate(title, max(room, 10))
		}

		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s  %s", index, date, styles.EntryTitle.Render(title))))
		b.WriteString("\n")
	}
	return b.String()
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// pluralize formats a count with the matching noun: "1 entry", "2 entries"
func pluralize(count int, one, many string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, one)
	}
	return fmt.Sprintf("%d %s", count, many)
}
