package handlers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/xolan/diary/internal/cli"
	"github.com/xolan/diary/internal/service"
)

// loadServices opens the services or reports the failure and exits.
func loadServices(deps *cli.Deps) (*service.Services, bool) {
	s, err := deps.LoadServices()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to open the diary")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check your config with 'diary config' and that the data directory is writable")
		deps.Exit(1)
		return nil, false
	}
	return s, true
}

func promptConfirmation(stdout io.Writer, stdin io.Reader, question string) bool {
	_, _ = fmt.Fprintf(stdout, "%s [y/N]: ", question)

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
