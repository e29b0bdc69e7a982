package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xolan/diary/internal/cli"
	"github.com/xolan/diary/internal/service"
	"github.com/xolan/diary/internal/storage"
)

// ValidateStorage reports on the persisted diary without modifying it
func ValidateStorage(deps *cli.Deps) {
	s, ok := loadServices(deps)
	if !ok {
		return
	}

	report, err := s.Storage.Validate()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read storage")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
	h := report.Health

	_, _ = fmt.Fprintln(deps.Stdout, "Storage health:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Backend: %s\n", report.Backend)
	if report.Path != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "File:    %s\n", report.Path)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Key:     %s\n", h.Key)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	switch {
	case !h.Present:
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Empty (nothing saved yet)")
	case h.Decodable:
		_, _ = fmt.Fprintf(deps.Stdout, "Status: OK (%d %s, %d bytes)\n", h.Records, plural(h.Records, "entry", "entries"), h.Bytes)
		if len(h.DuplicateDates) > 0 {
			_, _ = fmt.Fprintf(deps.Stdout, "Warning: more than one entry for %s\n", strings.Join(h.DuplicateDates, ", "))
		}
	default:
		_, _ = fmt.Fprintf(deps.Stdout, "Status: Unreadable (%d bytes)\n", h.Bytes)
		_, _ = fmt.Fprintf(deps.Stdout, "Details: %v\n", h.DecodeError)
		_, _ = fmt.Fprintln(deps.Stdout, "The diary will start empty and the next entry will replace this data.")
		if len(report.Backups) > 0 {
			_, _ = fmt.Fprintln(deps.Stdout, "Hint: Recover a previous version with 'diary restore'")
		}
	}

	if len(report.Backups) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Backups: %d available\n", len(report.Backups))
	}
}

// RestoreBackup restores the file backend from backup n (default 1)
func RestoreBackup(deps *cli.Deps, args []string, skipConfirm bool) {
	s, ok := loadServices(deps)
	if !ok {
		return
	}

	backups, err := s.Storage.ListBackups()
	if err != nil {
		if errors.Is(err, service.ErrBackupsUnsupported) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Backups are not available for the %q storage backend\n", s.Storage.Backend())
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Set storage_backend = \"file\" to keep rotating backups")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to list backups: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, b := range backups {
		if b.Number == 1 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s (most recent)\n", b.Number, b.Path)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %s\n", b.Number, b.Path)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	backupNum := 1
	if len(args) > 0 {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number '%s'\n", args[0])
			deps.Exit(1)
			return
		}
		if num < 1 || num > storage.MaxBackupCount {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Backup number must be between 1 and %d (got %d)\n", storage.MaxBackupCount, num)
			deps.Exit(1)
			return
		}
		backupNum = num
	}

	if !skipConfirm && !promptConfirmation(deps.Stdout, deps.Stdin, fmt.Sprintf("Replace the diary with backup %d?", backupNum)) {
		_, _ = fmt.Fprintln(deps.Stdout, "Restore cancelled")
		return
	}

	n, err := s.Storage.Restore(backupNum)
	if err != nil {
		if errors.Is(err, storage.ErrBackupNotFound) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Backup %d does not exist\n", backupNum)
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to restore backup: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Successfully restored from backup %d (%d %s)\n", backupNum, n, plural(n, "entry", "entries"))
}
