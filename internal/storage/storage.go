package storage

import (
	"errors"
	"fmt"
	"strings"
)

// EntriesKey is the key the diary collection is persisted under
const EntriesKey = "diaryEntries"

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

var (
	// ErrUnknownBackend is returned by Open for an unrecognised backend name
	ErrUnknownBackend = errors.New("unknown storage backend")
	// ErrInvalidKey is returned for empty keys or keys that are not a plain name
	ErrInvalidKey = errors.New("invalid storage key")
)

// Adapter is a minimal key/blob store.
// Load reports ok=false when nothing has been saved under key.
type Adapter interface {
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
	Close() error
}

// Open returns the adapter for backend rooted at dir.
func Open(backend, dir string) (Adapter, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendFile, "":
		return NewFileAdapter(dir)
	case BackendBolt:
		return OpenBolt(dir)
	case BackendMemory:
		return NewMemoryAdapter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func checkKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
