package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/diary/internal/cli/handlers"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the full entry for a day",
	Long: `Show the title, image URL and full text of the entry for a day.
Defaults to today.

Examples:
  diary show
  diary show yesterday
  diary show 2024-01-15
  diary show 15/01/2024`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		date := "today"
		if len(args) == 1 {
			date = args[0]
		}
		handlers.ShowEntry(deps, date)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
