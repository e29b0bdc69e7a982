// Package cli provides the CLI presentation layer for the diary application.
// It handles command-line output formatting and user interaction.
package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/diary/internal/entry"
	"github.com/xolan/diary/internal/service"
	"github.com/xolan/diary/internal/store"
)

// User-facing messages shared by the CLI and the TUI
const (
	MsgMissingFields  = "Please fill in all fields."
	MsgDuplicateDate  = "An entry for this day already exists. Please come back tomorrow."
	MsgInvalidDate    = "Please enter the date as YYYY-MM-DD."
	MsgPersistence    = "Your entry could not be saved."
	EmptyGalleryTitle = "No entries yet"
	EmptyGalleryHint  = "Add an entry to create your first diary entry."
)

// UserMessage returns the short message shown to the user for an add failure.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, entry.ErrMissingField):
		return MsgMissingFields
	case errors.Is(err, entry.ErrDuplicateDate):
		return MsgDuplicateDate
	case errors.Is(err, entry.ErrInvalidDate):
		return MsgInvalidDate
	case errors.Is(err, store.ErrPersistence):
		return MsgPersistence
	default:
		return err.Error()
	}
}

// IndexWidth returns the width of the largest index, for aligned "[n]" columns
func IndexWidth(n int) int {
	return len(fmt.Sprintf("%d", n))
}

// FormatEntryLine formats a gallery row: "[n] YYYY-MM-DD  Title"
func FormatEntryLine(ie service.IndexedEntry, width int) string {
	return fmt.Sprintf("[%*d] %s  %s", width, ie.Index, ie.Entry.Date, ie.Entry.Title)
}

// FormatEntryDetail formats every field of an entry; content is printed verbatim.
func FormatEntryDetail(e entry.Entry) string {
	var b strings.Builder
	b.WriteString(e.Title + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Date:    %s\n", FormatDay(e.Date))
	fmt.Fprintf(&b, "Image:   %s\n", e.ImageURL)
	fmt.Fprintf(&b, "Written: %s\n", FormatCreated(e.CreatedAt))
	b.WriteString(strings.Repeat("-", 50) + "\n")
	b.WriteString(e.Content)
	if !strings.HasSuffix(e.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// FormatDay formats a canonical day as "Tue, Jan 2 2024 (2024-01-02)".
// Non-canonical dates are returned unchanged.
func FormatDay(date string) string {
	t, err := time.Parse(entry.DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s (%s)", t.Format("Mon, Jan 2 2006"), date)
}

// FormatCreated formats a createdAt value in local time
func FormatCreated(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

// FormatMonth turns "2024-01" into "Jan 2024"
func FormatMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("Jan 2006")
}

// FormatStreak formats a day count: "1 day", "3 days"
func FormatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// FormatBar renders a horizontal bar of value scaled so that limit fills width
func FormatBar(value, limit, width int) string {
	if limit <= 0 || value <= 0 {
		return ""
	}
	n := value * width / limit
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// BuildRangeDescription describes a search: `"gym" from 2024-01-01 to 2024-01-31`
func BuildRangeDescription(keyword, from, to string) string {
	var parts []string
	if keyword != "" {
		parts = append(parts, fmt.Sprintf("%q", keyword))
	}
	if from != "" {
		parts = append(parts, "from "+from)
	}
	if to != "" {
		parts = append(parts, "to "+to)
	}
	if len(parts) == 0 {
		return "all entries"
	}
	return strings.Join(parts, " ")
}
