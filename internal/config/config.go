package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/xolan/diary/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// EnvFile is an optional dotenv file read from the app directory
	EnvFile = ".env"
)

// Storage backends understood by storage.Open
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Environment variables that override file settings
const (
	EnvStorageBackend = "DIARY_STORAGE_BACKEND"
	EnvDataDir        = "DIARY_DATA_DIR"
	EnvLogLevel       = "DIARY_LOG_LEVEL"
	EnvTheme          = "DIARY_THEME"
)

var validLogLevels = []string{"debug", "info", "warn", "error", "disabled"}

// Config represents the application configuration
type Config struct {
	// StorageBackend selects the persistence adapter: file, bolt or memory
	StorageBackend string `toml:"storage_backend"`
	// DataDir is where entries, backups and logs live. Empty means the app config directory.
	DataDir string `toml:"data_dir"`
	// Theme is the bubbletint theme id used by the TUI
	Theme string `toml:"theme"`
	// LogLevel is the minimum zerolog level written to the log file
	LogLevel string `toml:"log_level"`
	// Timezone is used to resolve relative dates like "today" (IANA name or "Local")
	Timezone string `toml:"timezone"`
}

// DefaultConfig returns a Config with the defaults used when no file exists.
func DefaultConfig() Config {
	return Config{
		StorageBackend: BackendFile,
		DataDir:        "",
		Theme:          "dracula",
		LogLevel:       "warn",
		Timezone:       "Local",
	}
}

// GetConfigPath returns the path to the config file.
// Creates the app directory if it doesn't exist.
func GetConfigPath() (string, error) {
	dir, err := osutil.AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// Load reads and validates the config file at path.
// Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path, or returns DefaultConfig when the file does not exist.
// Any other error (permissions, invalid TOML, invalid values) is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Normalize trims and lowercases enumerated values in place.
func (c *Config) Normalize() {
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.DataDir = strings.TrimSpace(c.DataDir)
	c.Theme = strings.TrimSpace(c.Theme)
	c.Timezone = strings.TrimSpace(c.Timezone)

	if c.StorageBackend == "" {
		c.StorageBackend = BackendFile
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
}

// Validate checks that all values are usable. Call Normalize first.
func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile, BackendBolt, BackendMemory:
	default:
		return fmt.Errorf("invalid storage_backend %q: must be %q, %q or %q",
			c.StorageBackend, BackendFile, BackendBolt, BackendMemory)
	}

	validLevel := false
	for _, l := range validLogLevels {
		if c.LogLevel == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log_level %q: must be one of %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ResolveDataDir returns DataDir, or the app config directory when unset.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		if err := osutil.EnsureDir(c.DataDir); err != nil {
			return "", err
		}
		return c.DataDir, nil
	}
	return osutil.AppDir()
}

// ApplyEnv loads envFile (if it exists) into the process environment and then
// overrides config fields from DIARY_* variables. Already-set variables win over the file.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv(EnvStorageBackend); ok {
		c.StorageBackend = v
	}
	if v, ok := os.LookupEnv(EnvDataDir); ok {
		c.DataDir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvTheme); ok {
		c.Theme = v
	}

	c.Normalize()
	return c.Validate()
}

// GenerateSampleConfig returns a commented config file with every option.
func GenerateSampleConfig() string {
	return `# diary configuration file

# Storage backend: "file" (JSON file with rotating backups), "bolt" (bbolt database)
# or "memory" (nothing is written to disk)
storage_backend = "file"

# Directory for entries, backups and the log file.
# Leave empty to use the diary config directory.
data_dir = ""

# TUI theme (any bubbletint id, e.g. "dracula", "nord", "gruvbox_dark")
theme = "dracula"

# Log level: "debug", "info", "warn", "error" or "disabled"
log_level = "warn"

# Timezone used for "today" and "yesterday": IANA name or "Local"
# Examples: "Local", "America/New_York", "Europe/London", "Asia/Tokyo"
timezone = "Local"
`
}
