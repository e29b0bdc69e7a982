package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/diary/internal/cli"
	"github.com/xolan/diary/internal/entry"
	"github.com/xolan/diary/internal/service"
	"github.com/xolan/diary/internal/store"
)

// ListEntries prints the gallery, newest day first
func ListEntries(deps *cli.Deps) {
	s, ok := loadServices(deps)
	if !ok {
		return
	}

	entries := s.Entry.List()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, cli.EmptyGalleryTitle)
		_, _ = fmt.Fprintln(deps.Stdout, cli.EmptyGalleryHint)
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: diary add --title 'Gym' --image https://example.com/gym.jpg --content 'Went to the gym'")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Diary (%d %s):\n", len(entries), plural(len(entries), "entry", "entries"))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	printIndexed(deps, entries)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
}

// AddEntry validates and stores a new entry
func AddEntry(deps *cli.Deps, c entry.Candidate) {
	s, ok := loadServices(deps)
	if !ok {
		return
	}

	e, err := s.Entry.Add(c)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", cli.UserMessage(err))
		var ve *entry.ValidationError
		_ = errors.As(err, &ve)
		switch {
		case errors.Is(err, entry.ErrMissingField):
			_, _ = fmt.Fprintf(deps.Stderr, "Details: missing %s\n", strings.Join(ve.Fields, ", "))
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: --title, --image and --content are required; --date defaults to today")
		case errors.Is(err, entry.ErrInvalidDate):
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use today, yesterday, YYYY-MM-DD or DD/MM/YYYY")
		case errors.Is(err, entry.ErrDuplicateDate):
			_, _ = fmt.Fprintf(deps.Stderr, "Hint: See it with 'diary show %s'\n", ve.Date)
		case errors.Is(err, store.ErrPersistence):
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that the data directory is writable and has free space")
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added: %s  %s\n", e.Date, e.Title)
}

// ShowEntry prints the full entry for a day
func ShowEntry(deps *cli.Deps, dateInput string) {
	s, ok := loadServices(deps)
	if !ok {
		return
	}

	e, err := s.Entry.Show(dateInput)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List entries with 'diary' to see available days")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", dateInput)
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprint(deps.Stdout, cli.FormatEntryDetail(e))
}

func printIndexed(deps *cli.Deps, entries []service.IndexedEntry) {
	width := 1
	for _, ie := range entries {
		if w := cli.IndexWidth(ie.Index); w > width {
			width = w
		}
	}
	for _, ie := range entries {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryLine(ie, width))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
