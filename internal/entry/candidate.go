package entry

import (
	"strings"
	"time"
)

// Field names as reported in validation errors
const (
	FieldTitle    = "title"
	FieldDate     = "date"
	FieldImageURL = "imageUrl"
	FieldContent  = "content"
)

// Candidate is the user-supplied input for a new entry.
type Candidate struct {
	Title    string
	Date     string
	ImageURL string
	Content  string
}

// Normalize trims every field and checks them in a fixed order:
// emptiness of all four fields first, then the date shape.
// The returned Candidate is only meaningful when err is nil.
func (c Candidate) Normalize() (Candidate, error) {
	n := Candidate{
		Title:    strings.TrimSpace(c.Title),
		Date:     strings.TrimSpace(c.Date),
		ImageURL: strings.TrimSpace(c.ImageURL),
		Content:  strings.TrimSpace(c.Content),
	}

	var missing []string
	if n.Title == "" {
		missing = append(missing, FieldTitle)
	}
	if n.Date == "" {
		missing = append(missing, FieldDate)
	}
	if n.ImageURL == "" {
		missing = append(missing, FieldImageURL)
	}
	if n.Content == "" {
		missing = append(missing, FieldContent)
	}
	if len(missing) > 0 {
		return Candidate{}, &ValidationError{Err: ErrMissingField, Fields: missing}
	}

	if !IsCanonicalDate(n.Date) {
		return Candidate{}, &ValidationError{Err: ErrInvalidDate, Date: n.Date}
	}

	return n, nil
}

// Build turns an already-normalized candidate into an Entry.
func (c Candidate) Build(id string, now time.Time) Entry {
	return Entry{
		ID:        id,
		Title:     c.Title,
		Date:      c.Date,
		ImageURL:  c.ImageURL,
		Content:   c.Content,
		CreatedAt: now.UnixMilli(),
	}
}

// IsCanonicalDate reports whether s is a real calendar day written as YYYY-MM-DD.
func IsCanonicalDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DateLayout) == s
}
