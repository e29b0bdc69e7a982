package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/diary/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the effective configuration for diary.

Shows the configuration file location, whether it exists, and all current settings.
diary works without a config file. All settings have defaults:
  - storage_backend: file
  - data_dir: (the config directory)
  - theme: dracula
  - log_level: warn
  - timezone: Local

Environment variables override the file: DIARY_STORAGE_BACKEND, DIARY_DATA_DIR,
DIARY_LOG_LEVEL and DIARY_THEME. They may also be set in a .env file next to
the config file.

Configuration file location:
  ~/.config/diary/config.toml          Linux
  %APPDATA%\diary\config.toml          Windows

Use 'diary config init' to create a sample config file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(deps)
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(deps)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
