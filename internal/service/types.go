// Package service provides the application layer for diary.
// It wires configuration, logging, storage and the entry store together
// and exposes one API for both the CLI and the TUI.
package service

import (
	"github.com/xolan/diary/internal/entry"
	"github.com/xolan/diary/internal/stats"
	"github.com/xolan/diary/internal/storage"
	"github.com/xolan/diary/internal/store"
)

// IndexedEntry is an entry with its 1-based position in gallery order
type IndexedEntry struct {
	Entry entry.Entry
	Index int
}

// SearchResult contains search results in gallery order
type SearchResult struct {
	Entries []IndexedEntry
	Query   string
	From    string // YYYY-MM-DD or empty
	To      string // YYYY-MM-DD or empty
	Total   int
}

// StatsResult contains diary statistics as of Today
type StatsResult struct {
	Statistics stats.Statistics
	Today      string
}

// StorageReport describes the persisted diary and, for the file backend, its backups
type StorageReport struct {
	Backend string
	Health  store.Health
	Path    string // file backend only
	Backups []storage.BackupInfo
}
