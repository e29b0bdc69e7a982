package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/diary/internal/cli/handlers"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show diary statistics",
	Long: `Show summary statistics for your diary:
  - Number of entries and the first and latest day
  - Current streak of consecutive days (kept alive until today is over)
  - Longest streak
  - Entries per month for the last year`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowStats(deps)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
