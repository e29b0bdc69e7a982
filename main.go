package main

import (
	"fmt"
	"os"

	"github.com/xolan/diary/cmd"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run executes the CLI and returns the process exit code
func run() int {
	cmd.SetVersionInfo(version, commit, date)
	err := cmd.Execute()
	if cerr := cmd.Close(); cerr != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: Failed to close storage: %v\n", cerr)
		return 1
	}
	if err != nil {
		return 1
	}
	return 0
}
