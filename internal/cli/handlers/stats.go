package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/diary/internal/cli"
)

// ShowStats prints diary statistics
func ShowStats(deps *cli.Deps) {
	s, ok := loadServices(deps)
	if !ok {
		return
	}

	res := s.Stats.Compute()
	st := res.Statistics

	_, _ = fmt.Fprintln(deps.Stdout, "Diary statistics:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if st.EntryCount == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, cli.EmptyGalleryTitle)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Entries:        %d\n", st.EntryCount)
	_, _ = fmt.Fprintf(deps.Stdout, "First entry:    %s\n", st.FirstDay)
	_, _ = fmt.Fprintf(deps.Stdout, "Latest entry:   %s\n", st.LastDay)
	_, _ = fmt.Fprintf(deps.Stdout, "Current streak: %s\n", cli.FormatStreak(st.CurrentStreak))
	_, _ = fmt.Fprintf(deps.Stdout, "Longest streak: %s\n", cli.FormatStreak(st.LongestStreak))

	if len(st.Months) == 0 {
		return
	}
	maxCount := 0
	for _, m := range st.Months {
		if m.Count > maxCount {
			maxCount = m.Count
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintln(deps.Stdout, "Entries per month:")
	for _, m := range st.Months {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-8s %3d %s\n", cli.FormatMonth(m.Month), m.Count, cli.FormatBar(m.Count, maxCount, 31))
	}
}
