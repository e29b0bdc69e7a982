package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/diary/internal/cli/handlers"
	"github.com/xolan/diary/internal/service"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries to various formats",
	Long: `Export diary entries for backup, migration or publishing.

Available formats:
  json        Export entries as a JSON array
  yaml        Export entries as a YAML list
  markdown    Export one Markdown section per entry, with YAML frontmatter

Entries are written to stdout, newest first. A summary is printed to stderr.

Date Filtering:
  Use --from and --to to export a range of days (inclusive)

Examples:
  diary export json > backup.json
  diary export yaml --from 2024-01-01
  diary export markdown --from 01/01/2024 --to 31/01/2024 > january.md`,
}

func newExportFormatCmd(format, short string) *cobra.Command {
	c := &cobra.Command{
		Use:   format,
		Short: short,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			handlers.ExportEntries(deps, format, from, to)
		},
	}
	c.Flags().String("from", "", "Start date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
	c.Flags().String("to", "", "End date for filtering (YYYY-MM-DD or DD/MM/YYYY)")
	return c
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.AddCommand(
		newExportFormatCmd(service.FormatJSON, "Export entries as JSON"),
		newExportFormatCmd(service.FormatYAML, "Export entries as YAML"),
		newExportFormatCmd(service.FormatMarkdown, "Export entries as Markdown"),
	)
}
