package filter

import (
	"strings"

	"github.com/xolan/diary/internal/entry"
)

// Filter holds search criteria for diary entries.
// All fields are optional; empty values match every entry.
type Filter struct {
	Keyword string // case-insensitive substring of title or content
	From    string // first day included, YYYY-MM-DD
	To      string // last day included, YYYY-MM-DD
}

// NewFilter creates a Filter with the given criteria.
func NewFilter(keyword, from, to string) *Filter {
	return &Filter{
		Keyword: strings.TrimSpace(keyword),
		From:    from,
		To:      to,
	}
}

// IsEmpty returns true if the filter matches all entries
func (f *Filter) IsEmpty() bool {
	return f == nil || (f.Keyword == "" && f.From == "" && f.To == "")
}

// FilterEntries returns the entries matching f, keeping their order.
func FilterEntries(entries []entry.Entry, f *Filter) []entry.Entry {
	if f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MatchesKeyword reports whether the keyword appears in the title or content.
func (f *Filter) MatchesKeyword(e entry.Entry) bool {
	if f.Keyword == "" {
		return true
	}
	kw := strings.ToLower(f.Keyword)
	return strings.Contains(strings.ToLower(e.Title), kw) ||
		strings.Contains(strings.ToLower(e.Content), kw)
}

// MatchesRange reports whether the entry's day lies within From..To.
// Canonical dates compare correctly as strings.
func (f *Filter) MatchesRange(e entry.Entry) bool {
	if f.From != "" && e.Date < f.From {
		return false
	}
	if f.To != "" && e.Date > f.To {
		return false
	}
	return true
}

func (f *Filter) Matches(e entry.Entry) bool {
	return f.MatchesKeyword(e) && f.MatchesRange(e)
}
