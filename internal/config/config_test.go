package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/diary/internal/app"
	"github.com/xolan/diary/internal/osutil"
)

// Helper to create a temporary config file
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	return tmpFile
}

type mockPathProvider struct {
	userConfigDir func() (string, error)
	mkdirAll      func(path string, perm os.FileMode) error
}

func (m *mockPathProvider) UserConfigDir() (string, error) { return m.userConfigDir() }

func (m *mockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	if m.mkdirAll == nil {
		return os.MkdirAll(path, perm)
	}
	return m.mkdirAll(path, perm)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.StorageBackend != BackendFile {
		t.Errorf("DefaultConfig().StorageBackend = %q, expected %q", cfg.StorageBackend, BackendFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("DefaultConfig().LogLevel = %q, expected %q", cfg.LogLevel, "warn")
	}
	if cfg.Timezone != "Local" {
		t.Errorf("DefaultConfig().Timezone = %q, expected %q", cfg.Timezone, "Local")
	}
	if cfg.Theme != "dracula" {
		t.Errorf("DefaultConfig().Theme = %q, expected %q", cfg.Theme, "dracula")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should validate, got %v", err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		expectedBackend string
		expectedLevel   string
		expectedDir     string
	}{
		{
			name: "all fields set",
			content: `storage_backend = "bolt"
data_dir = "/var/lib/diary"
theme = "nord"
log_level = "debug"
timezone = "Europe/London"`,
			expectedBackend: "bolt",
			expectedLevel:   "debug",
			expectedDir:     "/var/lib/diary",
		},
		{
			name:            "mixed case backend normalized",
			content:         `storage_backend = " Memory "`,
			expectedBackend: "memory",
			expectedLevel:   "warn",
		},
		{
			name:            "partial config keeps defaults",
			content:         `log_level = "ERROR"`,
			expectedBackend: "file",
			expectedLevel:   "error",
		},
		{
			name:            "empty file",
			content:         "",
			expectedBackend: "file",
			expectedLevel:   "warn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(createTempConfigFile(t, tt.content))
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			if cfg.StorageBackend != tt.expectedBackend {
				t.Errorf("StorageBackend = %q, expected %q", cfg.StorageBackend, tt.expectedBackend)
			}
			if cfg.LogLevel != tt.expectedLevel {
				t.Errorf("LogLevel = %q, expected %q", cfg.LogLevel, tt.expectedLevel)
			}
			if cfg.DataDir != tt.expectedDir {
				t.Errorf("DataDir = %q, expected %q", cfg.DataDir, tt.expectedDir)
			}
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		errorSubstring string
	}{
		{"invalid TOML", `storage_backend = `, "failed to parse config file"},
		{"unknown backend", `storage_backend = "postgres"`, "invalid storage_backend"},
		{"unknown log level", `log_level = "verbose"`, "invalid log_level"},
		{"invalid timezone", `timezone = "Mars/Olympus"`, "invalid timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(createTempConfigFile(t, tt.content))
			if err == nil {
				t.Fatal("Load() should return an error")
			}
			if !strings.Contains(err.Error(), tt.errorSubstring) {
				t.Errorf("Error should contain %q, got: %v", tt.errorSubstring, err)
			}
		})
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "does_not_exist.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadOrDefault() = %+v, expected defaults", cfg)
	}
}

func TestLoadOrDefault_ExistingInvalidFile(t *testing.T) {
	if _, err := LoadOrDefault(createTempConfigFile(t, `storage_backend = "s3"`)); err == nil {
		t.Error("LoadOrDefault() should return error for invalid config")
	}
}

func TestLoadOrDefault_PermissionError(t *testing.T) {
	tmpFile := createTempConfigFile(t, `log_level = "info"`)
	if err := os.Chmod(tmpFile, 0000); err != nil {
		t.Skipf("Cannot change file permissions: %v", err)
	}
	defer func() { _ = os.Chmod(tmpFile, 0644) }()

	// root can still read the file
	if f, err := os.Open(tmpFile); err == nil {
		_ = f.Close()
		t.Skip("file is still readable (running as root)")
	}

	if _, err := LoadOrDefault(tmpFile); err == nil {
		t.Error("LoadOrDefault() should return error for unreadable file")
	}
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "DIARY_STORAGE_BACKEND=bolt\nDIARY_LOG_LEVEL=debug\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// process environment wins over the dotenv file
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvDataDir, dir)
	// godotenv.Load sets variables that were unset; make sure the test cleans them up
	t.Setenv(EnvStorageBackend, "")
	if err := os.Unsetenv(EnvStorageBackend); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(envFile); err != nil {
		t.Fatalf("ApplyEnv() returned error: %v", err)
	}

	if cfg.StorageBackend != BackendBolt {
		t.Errorf("StorageBackend = %q, expected %q from .env", cfg.StorageBackend, BackendBolt)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, expected process env value %q", cfg.LogLevel, "info")
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, expected %q", cfg.DataDir, dir)
	}
}

func TestApplyEnv_MissingFileIsIgnored(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("ApplyEnv() should ignore a missing .env, got %v", err)
	}
}

func TestApplyEnv_InvalidOverride(t *testing.T) {
	t.Setenv(EnvStorageBackend, "redis")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(""); err == nil {
		t.Error("ApplyEnv() should reject an invalid backend override")
	}
}

func TestResolveDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := DefaultConfig()
	cfg.DataDir = dir

	got, err := cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("ResolveDataDir() returned error: %v", err)
	}
	if got != dir {
		t.Errorf("ResolveDataDir() = %q, expected %q", got, dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("ResolveDataDir() did not create %s: %v", dir, err)
	}
}

func TestGetConfigPath(t *testing.T) {
	defer osutil.ResetProvider()

	base := t.TempDir()
	osutil.SetProvider(&mockPathProvider{
		userConfigDir: func() (string, error) { return base, nil },
	})

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() returned error: %v", err)
	}
	if filepath.Base(path) != ConfigFile {
		t.Errorf("GetConfigPath() should end with %q, got %q", ConfigFile, path)
	}
	if filepath.Base(filepath.Dir(path)) != app.Name {
		t.Errorf("GetConfigPath() parent directory should be %q, got %q", app.Name, path)
	}
}

func TestGetConfigPath_UserConfigDirError(t *testing.T) {
	defer osutil.ResetProvider()

	osutil.SetProvider(&mockPathProvider{
		userConfigDir: func() (string, error) { return "", errors.New("no home directory") },
	})

	if _, err := GetConfigPath(); err == nil {
		t.Error("GetConfigPath() should return error when UserConfigDir fails")
	}
}

func TestGenerateSampleConfig(t *testing.T) {
	content := GenerateSampleConfig()

	for _, expected := range []string{
		"# diary configuration file",
		"storage_backend",
		"data_dir",
		"theme",
		"log_level",
		"timezone",
	} {
		if !strings.Contains(content, expected) {
			t.Errorf("GenerateSampleConfig() missing expected content: %q", expected)
		}
	}

	// The sample must itself be a valid config
	if _, err := Load(createTempConfigFile(t, content)); err != nil {
		t.Errorf("sample config does not load: %v", err)
	}
}
