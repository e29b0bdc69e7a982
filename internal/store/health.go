package store

import (
	"fmt"
	"sort"

	"github.com/xolan/diary/internal/storage"
)

// Health describes what is persisted under a key, without loading it into a store.
type Health struct {
	Key       string
	Present   bool
	Bytes     int
	Decodable bool
	// DecodeError is set when Present is true and Decodable is false
	DecodeError error
	Records     int
	// DuplicateDates lists days that appear more than once in the stored data
	DuplicateDates []string
}

// Healthy reports whether Initialize would adopt the stored data unchanged.
func (h Health) Healthy() bool {
	return !h.Present || h.Decodable
}

// Inspect reads key from adapter and reports on its contents.
// Only a failed read is returned as an error.
func Inspect(adapter storage.Adapter, key string) (Health, error) {
	h := Health{Key: key}

	data, ok, err := adapter.Load(key)
	if err != nil {
		return h, fmt.Errorf("%w: load %s: %w", ErrPersistence, key, err)
	}
	if !ok {
		return h, nil
	}
	h.Present = true
	h.Bytes = len(data)

	entries, err := Decode(data)
	if err != nil {
		h.DecodeError = err
		return h, nil
	}
	h.Decodable = true
	h.Records = len(entries)

	seen := make(map[string]int, len(entries))
	for _, e := range entries {
		seen[e.Date]++
	}
	for date, n := range seen {
		if n > 1 {
			h.DuplicateDates = append(h.DuplicateDates, date)
		}
	}
	sort.Strings(h.DuplicateDates)
	return h, nil
}
