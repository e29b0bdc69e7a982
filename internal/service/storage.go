package service

import (
	"errors"
	"fmt"

	"github.com/xolan/diary/internal/storage"
	"github.com/xolan/diary/internal/store"
)

// ErrBackupsUnsupported is returned by backup operations on non-file backends
var ErrBackupsUnsupported = errors.New("backups are only available for the file storage backend")

// StorageService reports on and restores the persisted diary
type StorageService struct {
	adapter storage.Adapter
	backend string
	store   *store.EntryStore
}

// NewStorageService creates a new StorageService
func NewStorageService(adapter storage.Adapter, backend string, s *store.EntryStore) *StorageService {
	return &StorageService{adapter: adapter, backend: backend, store: s}
}

// Backend returns the configured backend name
func (s *StorageService) Backend() string {
	return s.backend
}

// Validate inspects the stored data without changing it.
func (s *StorageService) Validate() (*StorageReport, error) {
	h, err := store.Inspect(s.adapter, storage.EntriesKey)
	if err != nil {
		return nil, err
	}

	report := &StorageReport{Backend: s.backend, Health: h}
	if fa, ok := s.adapter.(*storage.FileAdapter); ok {
		report.Path = fa.Path(storage.EntriesKey)
		if report.Backups, err = fa.ListBackups(storage.EntriesKey); err != nil {
			return nil, fmt.Errorf("failed to list backups: %w", err)
		}
	}
	return report, nil
}

// ListBackups returns the available backups, newest first
func (s *StorageService) ListBackups() ([]storage.BackupInfo, error) {
	fa, ok := s.adapter.(*storage.FileAdapter)
	if !ok {
		return nil, ErrBackupsUnsupported
	}
	return fa.ListBackups(storage.EntriesKey)
}

// Restore replaces the diary with backup n and reloads the store.
// Returns the number of entries after the restore.
func (s *StorageService) Restore(n int) (int, error) {
	fa, ok := s.adapter.(*storage.FileAdapter)
	if !ok {
		return 0, ErrBackupsUnsupported
	}
	if err := fa.RestoreBackup(storage.EntriesKey, n); err != nil {
		return 0, err
	}
	if err := s.store.Initialize(); err != nil {
		return 0, err
	}
	return s.store.Len(), nil
}
