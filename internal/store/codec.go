package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xolan/diary/internal/entry"
)

// ErrMalformed is returned by Decode for data that is not an array of complete entries
var ErrMalformed = errors.New("malformed entry data")

// record holds the six persisted fields as pointers so absent and null values are detectable.
type record struct {
	ID        *string
	Title     *string
	Date      *string
	ImageURL  *string
	Content   *string
	CreatedAt *int64
}

// decodeRecord reads the persisted fields by their exact key.
// encoding/json matches struct tags case-insensitively, so keys are looked up by hand.
func decodeRecord(obj map[string]json.RawMessage) (record, error) {
	var r record
	fields := []struct {
		key string
		dst any
	}{
		{"id", &r.ID},
		{"title", &r.Title},
		{"date", &r.Date},
		{"imageUrl", &r.ImageURL},
		{"content", &r.Content},
		{"createdAt", &r.CreatedAt},
	}
	for _, f := range fields {
		raw, ok := obj[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return record{}, fmt.Errorf("field %s: %w", f.key, err)
		}
	}
	return r, nil
}

func (r record) missing() string {
	switch {
	case r.ID == nil:
		return "id"
	case r.Title == nil:
		return "title"
	case r.Date == nil:
		return "date"
	case r.ImageURL == nil:
		return "imageUrl"
	case r.Content == nil:
		return "content"
	case r.CreatedAt == nil:
		return "createdAt"
	}
	return ""
}

// Encode serializes entries as a JSON array. A nil slice encodes as [].
func Encode(entries []entry.Entry) ([]byte, error) {
	if entries == nil {
		entries = []entry.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode entries: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of entries. Every element must be an object
// carrying all six fields, spelled exactly, with the right JSON types;
// createdAt must be an integer. A top-level null decodes to an empty collection.
func Decode(data []byte) ([]entry.Entry, error) {
	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	entries := make([]entry.Entry, 0, len(objects))
	for i, obj := range objects {
		r, err := decodeRecord(obj)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrMalformed, i, err)
		}
		if field := r.missing(); field != "" {
			return nil, fmt.Errorf("%w: element %d has no %s", ErrMalformed, i, field)
		}
		entries = append(entries, entry.Entry{
			ID:        *r.ID,
			Title:     *r.Title,
			Date:      *r.Date,
			ImageURL:  *r.ImageURL,
			Content:   *r.Content,
			CreatedAt: *r.CreatedAt,
		})
	}
	return entries, nil
}
