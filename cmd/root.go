package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/diary/internal/cli/handlers"
)

var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "A one-entry-a-day photo diary",
	Long: `diary keeps one entry per day: a title, an image URL and free text.

Usage:
  diary, diary list                             List all entries, newest first
  diary add --title 'Gym' --image <url> --content 'text'
                                                Add today's entry
  diary add --date yesterday ...                Add an entry for another day
  diary show [date]                             Show the full entry for a day
  diary search <keyword>                        Search titles and content
  diary stats                                   Show streaks and monthly counts
  diary export json|yaml|markdown               Export entries to stdout
  diary tui                                     Launch the interactive UI
  diary validate                                Check storage health
  diary restore [n]                             Restore from backup (default: most recent)

Date format: today, yesterday, YYYY-MM-DD or DD/MM/YYYY`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		handlers.ListEntries(deps)
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all entries, newest first",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListEntries(deps)
	},
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check storage health",
	Long: `Validate the stored diary and report on its health, including whether
the stored data could be decoded and how many backups are available.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ValidateStorage(deps)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"diary version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
