package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xolan/diary/internal/entry"
)

const europeanLayout = "02/01/2006"

var (
	isoPartialRe    = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	yearOnlyRe      = regexp.MustCompile(`^\d{4}$`)
	isoPartialDayRe = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)
	euroPartialRe   = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)
	tooManyPartsRe  = regexp.MustCompile(`^\d+[-/]\d+[-/]\d+[-/]`)
)

// ParseDate parses "today", "yesterday", YYYY-MM-DD or DD/MM/YYYY.
// The result is midnight of that day in loc. now is used for the relative forms.
// For ambiguous dates (like 05/06/2024), ISO format (YYYY-MM-DD) is preferred.
func ParseDate(input string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use today, yesterday, YYYY-MM-DD or DD/MM/YYYY)")
	}

	switch strings.ToLower(input) {
	case "today":
		return StartOfDay(now.In(loc)), nil
	case "yesterday":
		return StartOfDay(now.In(loc).AddDate(0, 0, -1)), nil
	}

	if t, err := time.ParseInLocation(entry.DateLayout, input, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(europeanLayout, input, loc); err == nil {
		return t, nil
	}

	return time.Time{}, buildDateParseError(input)
}

// CanonicalDay converts friendly date input into YYYY-MM-DD.
// Input it does not recognise is returned trimmed and unchanged so the
// entry store can report it.
func CanonicalDay(input string, now time.Time, loc *time.Location) string {
	t, err := ParseDate(input, now, loc)
	if err != nil {
		return strings.TrimSpace(input)
	}
	return t.Format(entry.DateLayout)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case isoPartialDayRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-%s)", input, input)
	case euroPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY, e.g., %s/2024)", input, input)
	case tooManyPartsRe.MatchString(input):
		return fmt.Errorf("invalid date '%s': too many date parts (use format YYYY-MM-DD or DD/MM/YYYY)", input)
	default:
		return fmt.Errorf("invalid date format '%s' (use today, yesterday, YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", input)
	}
}
