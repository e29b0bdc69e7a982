package cmd

import "github.com/xolan/diary/internal/cli"

// deps is the global dependencies instance used by commands.
// In production, this is cli.DefaultDeps(). Tests can replace it.
var deps = cli.DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *cli.Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = cli.DefaultDeps()
}

// Close releases the storage opened by the last command, if any.
func Close() error {
	return deps.Close()
}
