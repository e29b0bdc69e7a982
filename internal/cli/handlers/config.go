package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/diary/internal/cli"
)

// ShowConfig displays the effective configuration
func ShowConfig(deps *cli.Deps) {
	s, ok := loadServices(deps)
	if !ok {
		return
	}
	cfg := s.Config.Get()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", s.Config.GetPath())
	if s.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "storage_backend: %s\n", cfg.StorageBackend)
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "(config directory)"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "data_dir:        %s\n", dataDir)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:           %s\n", cfg.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:       %s\n", cfg.LogLevel)
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:        %s\n", cfg.Timezone)
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	s, ok := loadServices(deps)
	if !ok {
		return
	}

	if err := s.Config.Init(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", s.Config.GetPath())
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
