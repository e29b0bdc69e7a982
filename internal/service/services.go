package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/xolan/diary/internal/config"
	"github.com/xolan/diary/internal/logging"
	"github.com/xolan/diary/internal/storage"
	"github.com/xolan/diary/internal/store"
)

// Services holds all service instances used by the application
type Services struct {
	Entry   *EntryService
	Search  *SearchService
	Stats   *StatsService
	Export  *ExportService
	Config  *ConfigService
	Storage *StorageService

	Logger  zerolog.Logger
	adapter storage.Adapter
	logFile *os.File
}

// Options customise NewServicesWithAdapter. Zero values fall back to defaults.
type Options struct {
	Logger zerolog.Logger
	Clock  func() time.Time
	IDs    func() string
}

// NewServices loads the config file and environment, opens the log file and
// the configured storage backend, and loads the diary.
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(filepath.Join(filepath.Dir(configPath), config.EnvFile)); err != nil {
		return nil, err
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, err
	}

	logger, logFile, err := logging.NewFile(filepath.Join(dataDir, logging.LogFile), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	adapter, err := storage.Open(cfg.StorageBackend, dataDir)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	s, err := NewServicesWithAdapter(adapter, configPath, cfg, Options{Logger: logger})
	if err != nil {
		_ = adapter.Close()
		_ = logFile.Close()
		return nil, err
	}
	s.logFile = logFile
	return s, nil
}

// NewServicesWithAdapter builds services over an already opened adapter and
// initializes the entry store from it. Useful for testing.
func NewServicesWithAdapter(adapter storage.Adapter, configPath string, cfg config.Config, opts Options) (*Services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	storeOpts := []store.Option{store.WithLogger(opts.Logger), store.WithClock(clock)}
	if opts.IDs != nil {
		storeOpts = append(storeOpts, store.WithIDGenerator(opts.IDs))
	}
	entries := store.New(adapter, storeOpts...)
	if err := entries.Initialize(); err != nil {
		return nil, err
	}

	opts.Logger.Debug().
		Str("backend", cfg.StorageBackend).
		Int("entries", entries.Len()).
		Msg("services ready")

	entryService := NewEntryService(entries, clock, loc)
	return &Services{
		Entry:   entryService,
		Search:  NewSearchService(entryService),
		Stats:   NewStatsService(entryService),
		Export:  NewExportService(entryService),
		Config:  NewConfigService(configPath, cfg),
		Storage: NewStorageService(adapter, cfg.StorageBackend, entries),
		Logger:  opts.Logger,
		adapter: adapter,
	}, nil
}

// Close releases the storage backend and the log file.
func (s *Services) Close() error {
	var errs []error
	if s.adapter != nil {
		if err := s.adapter.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
		}
	}
	if s.logFile != nil {
		if err := s.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log file: %w", err))
		}
	}
	return errors.Join(errs...)
}
