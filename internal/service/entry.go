package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/xolan/diary/internal/entry"
	"github.com/xolan/diary/internal/store"
	"github.com/xolan/diary/internal/timeutil"
)

// ErrEntryNotFound is returned when no entry exists for a day
var ErrEntryNotFound = errors.New("no entry for that day")

// EntryService adds and reads diary entries.
// Friendly dates (today, yesterday, DD/MM/YYYY) are resolved here; every
// business rule lives in the entry store.
type EntryService struct {
	store *store.EntryStore
	now   func() time.Time
	loc   *time.Location
}

// NewEntryService creates a new EntryService
func NewEntryService(s *store.EntryStore, now func() time.Time, loc *time.Location) *EntryService {
	if loc == nil {
		loc = time.Local
	}
	return &EntryService{store: s, now: now, loc: loc}
}

// Add stores a new entry. c.Date may be any form accepted by timeutil.ParseDate.
func (s *EntryService) Add(c entry.Candidate) (entry.Entry, error) {
	c.Date = timeutil.CanonicalDay(c.Date, s.now(), s.loc)
	return s.store.Add(c)
}

// List returns all entries, newest day first
func (s *EntryService) List() []IndexedEntry {
	return index(s.store.List())
}

// Show returns the entry for the given day.
func (s *EntryService) Show(dateInput string) (entry.Entry, error) {
	day, err := s.ParseDay(dateInput)
	if err != nil {
		return entry.Entry{}, err
	}
	e, ok := s.store.FindByDate(day)
	if !ok {
		return entry.Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, day)
	}
	return e, nil
}

// ParseDay resolves friendly date input to YYYY-MM-DD.
func (s *EntryService) ParseDay(input string) (string, error) {
	t, err := timeutil.ParseDate(input, s.now(), s.loc)
	if err != nil {
		return "", err
	}
	return t.Format(entry.DateLayout), nil
}

// Today returns the current day in the configured timezone
func (s *EntryService) Today() string {
	return s.now().In(s.loc).Format(entry.DateLayout)
}

// Subscribe forwards to the store's change notification
func (s *EntryService) Subscribe(fn func(entry.Entry)) func() {
	return s.store.Subscribe(fn)
}

func index(entries []entry.Entry) []IndexedEntry {
	out := make([]IndexedEntry, len(entries))
	for i, e := range entries {
		out[i] = IndexedEntry{Entry: e, Index: i + 1}
	}
	return out
}
