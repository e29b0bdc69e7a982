// Package entry defines the diary record and the rules for building one from user input.
package entry

import "time"

// DateLayout is the canonical calendar-day format. It is fixed-width and
// zero-padded, so lexicographic order matches calendar order.
const DateLayout = "2006-01-02"

// Entry is a single diary record. Entries are immutable once created.
type Entry struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Date      string `json:"date" yaml:"date"`
	ImageURL  string `json:"imageUrl" yaml:"imageUrl"`
	Content   string `json:"content" yaml:"content"`
	CreatedAt int64  `json:"createdAt" yaml:"createdAt"` // milliseconds since the Unix epoch
}

// Created returns CreatedAt as a time.Time.
func (e Entry) Created() time.Time {
	return time.UnixMilli(e.CreatedAt)
}

// Day parses Date in the given location. Only meaningful for canonical dates.
func (e Entry) Day(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, e.Date, loc)
}

// Newer reports whether a sorts before b in gallery order:
// later date first, then later creation time.
func Newer(a, b Entry) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	return a.CreatedAt > b.CreatedAt
}
