package storage

import "sync"

// MemoryAdapter keeps blobs in a map. Nothing survives the process.
// The zero value is ready to use.
type MemoryAdapter struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryAdapter returns an empty MemoryAdapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{blobs: make(map[string][]byte)}
}

// Load returns a copy of the blob stored under key.
func (m *MemoryAdapter) Load(key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte{}, data...), true, nil
}

// Save stores a copy of data under key.
func (m *MemoryAdapter) Save(key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.blobs == nil {
		m.blobs = make(map[string][]byte)
	}
	m.blobs[key] = append([]byte{}, data...)
	return nil
}

// Close is a no-op.
func (m *MemoryAdapter) Close() error {
	return nil
}
