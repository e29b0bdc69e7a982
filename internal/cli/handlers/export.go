package handlers

import (
	"fmt"

	"github.com/xolan/diary/internal/cli"
)

// ExportEntries writes entries to stdout in the given format.
// The summary goes to stderr so stdout can be redirected to a file.
func ExportEntries(deps *cli.Deps, format, from, to string) {
	s, ok := loadServices(deps)
	if !ok {
		return
	}

	f, err := s.Search.BuildFilter("", from, to)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid date range")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	n, err := s.Export.Export(deps.Stdout, format, f)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stderr, "Exported %d %s as %s\n", n, plural(n, "entry", "entries"), format)
}
