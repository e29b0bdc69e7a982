package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xolan/diary/internal/cli/handlers"
	"github.com/xolan/diary/internal/entry"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add the entry for a day",
	Long: `Add a diary entry. Every field is required and only one entry is
allowed per day.

Examples:
  diary add --title 'Gym' --image https://example.com/gym.jpg --content 'Leg day'
  diary add -t 'Hike' -i https://example.com/hike.jpg -c 'Reached the top' --date yesterday
  cat notes.txt | diary add -t 'Notes' -i https://example.com/n.jpg -c -

Pass '-' as the content to read it from stdin.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runAdd(cmd)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("title", "t", "", "Title of the entry")
	addCmd.Flags().StringP("date", "d", "today", "Day of the entry (today, yesterday, YYYY-MM-DD or DD/MM/YYYY)")
	addCmd.Flags().StringP("image", "i", "", "Image URL")
	addCmd.Flags().StringP("content", "c", "", "Entry text, or '-' to read from stdin")
}

func runAdd(cmd *cobra.Command) {
	title, _ := cmd.Flags().GetString("title")
	date, _ := cmd.Flags().GetString("date")
	image, _ := cmd.Flags().GetString("image")
	content, _ := cmd.Flags().GetString("content")

	if content == "-" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read content from stdin")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}
		content = string(data)
	}

	handlers.AddEntry(deps, entry.Candidate{
		Title:    title,
		Date:     date,
		ImageURL: image,
		Content:  content,
	})
}
