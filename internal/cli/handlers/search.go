package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/diary/internal/cli"
)

// SearchEntries prints entries whose title or content contains keyword,
// optionally limited to a day range.
func SearchEntries(deps *cli.Deps, keyword, from, to string) {
	s, ok := loadServices(deps)
	if !ok {
		return
	}

	result, err := s.Search.Search(keyword, from, to)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid date range")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	desc := cli.BuildRangeDescription(result.Query, result.From, result.To)
	if result.Total == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries found for %s\n", desc)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Found %d %s for %s:\n", result.Total, plural(result.Total, "entry", "entries"), desc)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	printIndexed(deps, result.Entries)
}
