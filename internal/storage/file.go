package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xolan/diary/internal/osutil"
)

// FileExt is appended to the key to form the file name
const FileExt = ".json"

// FileAdapter stores each key as <dir>/<key>.json.
// Every Save rotates the previous contents into numbered backups.
type FileAdapter struct {
	dir string
}

// NewFileAdapter returns a FileAdapter rooted at dir, creating dir if needed.
func NewFileAdapter(dir string) (*FileAdapter, error) {
	if dir == "" {
		return nil, errors.New("storage directory cannot be empty")
	}
	if err := osutil.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &FileAdapter{dir: dir}, nil
}

// Dir returns the directory the adapter writes to.
func (a *FileAdapter) Dir() string {
	return a.dir
}

// Path returns the file backing key.
func (a *FileAdapter) Path(key string) string {
	return filepath.Join(a.dir, key+FileExt)
}

// Load reads the file for key. A missing file reports ok=false.
func (a *FileAdapter) Load(key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(a.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Save backs up the current file and replaces it atomically.
func (a *FileAdapter) Save(key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	path := a.Path(key)

	if err := CreateBackup(path); err != nil {
		return fmt.Errorf("failed to back up %s: %w", key, err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; files are not held open between calls.
func (a *FileAdapter) Close() error {
	return nil
}

// ListBackups returns the backups available for key, newest first.
func (a *FileAdapter) ListBackups(key string) ([]BackupInfo, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	return ListBackups(a.Path(key))
}

// RestoreBackup replaces key's contents with backup n.
func (a *FileAdapter) RestoreBackup(key string, n int) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return RestoreBackup(a.Path(key), n)
}

func writeFileAtomic(path string, data []byte) error {
	tmpFile := path + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, path)
}
