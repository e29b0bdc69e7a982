package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// BackupSuffix is inserted between the file name and the rotation number
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// ErrBackupNotFound is returned when restoring a backup that does not exist
var ErrBackupNotFound = errors.New("backup does not exist")

// BackupInfo describes one backup file
type BackupInfo struct {
	Number int    // 1 is the most recent
	Path   string // full path to the backup file
}

// BackupPath returns the path of backup n for path, e.g. diaryEntries.json.bak.1.
func BackupPath(path string, n int) string {
	return fmt.Sprintf("%s%s.%d", path, BackupSuffix, n)
}

// rotateBackups drops .bak.3 and shifts .bak.2 -> .bak.3, .bak.1 -> .bak.2.
// Missing files are skipped.
func rotateBackups(path string) error {
	if err := os.Remove(BackupPath(path, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(path, i), BackupPath(path, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// CreateBackup rotates existing backups and copies path to .bak.1.
// Nothing happens if path does not exist yet.
func CreateBackup(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(path); err != nil {
		return err
	}
	return copyFile(path, BackupPath(path, 1))
}

// ListBackups returns existing backups of path, newest first.
func ListBackups(path string) ([]BackupInfo, error) {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		p := BackupPath(path, i)
		if _, err := os.Stat(p); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: p})
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return backups, nil
}

// RestoreBackup copies backup n over path.
// The current contents are backed up first, so a restore can itself be undone.
func RestoreBackup(path string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	backupPath := BackupPath(path, n)
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %d", ErrBackupNotFound, n)
		}
		return err
	}

	// read before rotating, rotation may move the chosen backup
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return err
	}
	if err := CreateBackup(path); err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
