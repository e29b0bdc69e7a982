package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/diary/internal/cli/handlers"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore from a backup file",
	Long: `Restore the diary from a backup. Only the file storage backend keeps backups.

By default, restores from the most recent backup (.bak.1).
Optionally specify a backup number to restore from (1-3).
The current diary is backed up first, so a restore can itself be undone.

Examples:
  diary restore       Restore from most recent backup
  diary restore 2     Restore from backup #2
  diary restore -y    Restore without asking for confirmation`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		skipConfirm, _ := cmd.Flags().GetBool("yes")
		handlers.RestoreBackup(deps, args, skipConfirm)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
}
