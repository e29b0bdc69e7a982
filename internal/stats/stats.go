package stats

import (
	"sort"
	"time"

	"github.com/xolan/diary/internal/entry"
)

// Statistics summarises a diary
type Statistics struct {
	EntryCount    int
	FirstDay      string // earliest date, empty when there are no entries
	LastDay       string // latest date
	CurrentStreak int    // consecutive days up to today, or up to yesterday if today has no entry yet
	LongestStreak int
	Months        []MonthCount // oldest first
}

// MonthCount is the number of entries written in one calendar month
type MonthCount struct {
	Month string // YYYY-MM
	Count int
}

// Calculate computes statistics for entries. today is a YYYY-MM-DD day.
// Entries with a non-canonical date are counted but ignored for streaks and months.
func Calculate(entries []entry.Entry, today string) Statistics {
	s := Statistics{EntryCount: len(entries), Months: []MonthCount{}}
	if len(entries) == 0 {
		return s
	}

	days := make(map[string]bool)
	months := make(map[string]int)
	for _, e := range entries {
		if s.FirstDay == "" || e.Date < s.FirstDay {
			s.FirstDay = e.Date
		}
		if e.Date > s.LastDay {
			s.LastDay = e.Date
		}
		if !entry.IsCanonicalDate(e.Date) {
			continue
		}
		days[e.Date] = true
		months[e.Date[:7]]++
	}

	for m, n := range months {
		s.Months = append(s.Months, MonthCount{Month: m, Count: n})
	}
	sort.Slice(s.Months, func(i, j int) bool {
		return s.Months[i].Month < s.Months[j].Month
	})

	s.LongestStreak = longestStreak(days)
	s.CurrentStreak = currentStreak(days, today)
	return s
}

func longestStreak(days map[string]bool) int {
	longest := 0
	for d := range days {
		// only start counting at the first day of a run
		if days[shift(d, -1)] {
			continue
		}
		n := 0
		for cur := d; days[cur]; cur = shift(cur, 1) {
			n++
		}
		if n > longest {
			longest = n
		}
	}
	return longest
}

func currentStreak(days map[string]bool, today string) int {
	if !entry.IsCanonicalDate(today) {
		return 0
	}
	cur := today
	if !days[cur] {
		cur = shift(cur, -1)
	}
	n := 0
	for ; days[cur]; cur = shift(cur, -1) {
		n++
	}
	return n
}

// shift moves a canonical day by n days.
func shift(day string, n int) string {
	t, err := time.Parse(entry.DateLayout, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, n).Format(entry.DateLayout)
}
