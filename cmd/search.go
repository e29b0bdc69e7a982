package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/diary/internal/cli/handlers"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search entries by keyword",
	Long: `Search for entries whose title or content contains a keyword.

The search is case-insensitive.

Date Filtering:
  Use --from and --to to limit the search to a range of days (inclusive)

Examples:
  diary search gym                                  Entries mentioning 'gym'
  diary search "first snow"                         Multi-word keyword
  diary search gym --from 2024-01-01                From a specific day
  diary search gym --from 01/01/2024 --to 31/01/2024    Within a range`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		handlers.SearchEntries(deps, strings.Join(args, " "), from, to)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("from", "", "Start date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
	searchCmd.Flags().String("to", "", "End date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
}
