package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xolan/diary/internal/entry"
	"github.com/xolan/diary/internal/storage"
)

// ErrPersistence wraps every failure to read from or write to the adapter
var ErrPersistence = errors.New("persistence failure")

// EntryStore owns the diary collection and keeps it in sync with an adapter.
// Every successful Add writes the whole collection back with a single Save.
type EntryStore struct {
	adapter storage.Adapter
	key     string
	now     func() time.Time
	newID   func() string
	log     zerolog.Logger

	mu      sync.Mutex
	entries []entry.Entry

	subMu   sync.Mutex
	subs    map[int]func(entry.Entry)
	nextSub int
}

// Option configures an EntryStore
type Option func(*EntryStore)

// WithKey sets the adapter key. Defaults to storage.EntriesKey.
func WithKey(key string) Option {
	return func(s *EntryStore) { s.key = key }
}

// WithClock sets the time source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *EntryStore) { s.now = now }
}

// WithIDGenerator sets the id source. Defaults to random UUIDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *EntryStore) { s.newID = newID }
}

// WithLogger sets the logger for discarded data and save failures. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *EntryStore) { s.log = log }
}

// New returns an empty store backed by adapter. Call Initialize before use.
func New(adapter storage.Adapter, opts ...Option) *EntryStore {
	s := &EntryStore{
		adapter: adapter,
		key:     storage.EntriesKey,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
		log:     zerolog.Nop(),
		subs:    make(map[int]func(entry.Entry)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize replaces the collection with what the adapter holds.
// Absent or undecodable data leaves the collection empty; only a failed
// read is returned as an error.
func (s *EntryStore) Initialize() error {
	data, ok, err := s.adapter.Load(s.key)
	if err != nil {
		return fmt.Errorf("%w: load %s: %w", ErrPersistence, s.key, err)
	}

	var entries []entry.Entry
	switch {
	case !ok:
		s.log.Debug().Str("key", s.key).Msg("no stored entries")
	default:
		entries, err = Decode(data)
		if err != nil {
			s.log.Debug().Err(err).Str("key", s.key).Int("bytes", len(data)).Msg("discarding unreadable entries")
			entries = nil
		}
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	s.log.Debug().Str("key", s.key).Int("count", len(entries)).Msg("entries loaded")
	return nil
}

// Add validates c, stores the resulting entry and persists the collection.
// Validation errors are *entry.ValidationError values and leave the store unchanged.
// If the write fails the entry is dropped again and ErrPersistence is returned.
func (s *EntryStore) Add(c entry.Candidate) (entry.Entry, error) {
	c, err := c.Normalize()
	if err != nil {
		return entry.Entry{}, err
	}

	s.mu.Lock()
	if s.indexOf(c.Date) >= 0 {
		s.mu.Unlock()
		return entry.Entry{}, &entry.ValidationError{Err: entry.ErrDuplicateDate, Date: c.Date}
	}

	e := c.Build(s.newID(), s.now())
	s.entries = append(s.entries, e)

	data, err := Encode(s.entries)
	if err == nil {
		err = s.adapter.Save(s.key, data)
	}
	if err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		s.mu.Unlock()
		s.log.Error().Err(err).Str("key", s.key).Msg("failed to save entries")
		return entry.Entry{}, fmt.Errorf("%w: save %s: %w", ErrPersistence, s.key, err)
	}
	s.mu.Unlock()

	s.log.Info().Str("id", e.ID).Str("date", e.Date).Msg("entry added")
	s.notify(e)
	return e, nil
}

// List returns a copy of the collection, newest day first.
func (s *EntryStore) List() []entry.Entry {
	s.mu.Lock()
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return entry.Newer(out[i], out[j])
	})
	return out
}

// FindByDate returns the entry for a YYYY-MM-DD day.
func (s *EntryStore) FindByDate(date string) (entry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(date); i >= 0 {
		return s.entries[i], true
	}
	return entry.Entry{}, false
}

// Len returns the number of entries held.
func (s *EntryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Subscribe registers fn to be called after every successful Add.
// The returned function removes the subscription.
func (s *EntryStore) Subscribe(fn func(entry.Entry)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *EntryStore) notify(e entry.Entry) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(entry.Entry), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

// indexOf must be called with mu held.
func (s *EntryStore) indexOf(date string) int {
	for i, e := range s.entries {
		if e.Date == date {
			return i
		}
	}
	return -1
}
