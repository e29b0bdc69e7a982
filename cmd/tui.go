package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/diary/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for diary.

Views available:
  - Gallery: Browse entries, open one, or add today's entry
  - Stats: Streaks and entries per month
  - Config: View settings and pick a theme

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to specific view
  - j/k or arrows: Navigate within lists
  - n: New entry (ctrl+s saves, esc cancels)
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI opens the services and runs the TUI until the user quits
func runTUI() {
	services, err := deps.LoadServices()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error initializing services: %v\n", err)
		deps.Exit(1)
		return
	}

	if err := tuiRunner(services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}

// tuiRunner is replaced in tests to avoid taking over the terminal
var tuiRunner = tui.Run

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
