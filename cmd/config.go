package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
	"github.com/xolan/blogger/internal/entry"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for blogger.

blogger works without any configuration file. Defaults:
  - data_dir: the config directory
  - theme: dracula
  - sprint: epoch 30.04.2025, duration_weeks 2
  - status_types: q (prefix QI-), jira

Configuration file location:
  ~/.config/blogger/config.toml          Linux
  ~/Library/Application Support/blogger  macOS
  %APPDATA%\blogger\config.toml          Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.ShowConfig(d)
		}
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.ShowConfig(d)
		}
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.InitConfig(d)
		}
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.ShowConfigPath(d)
		}
	},
}

var configThemeCmd = &cobra.Command{
	Use:   "theme <name>",
	Short: "Set the dashboard theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.SetTheme(d, args[0])
		}
	},
}

var statusTypeCmd = &cobra.Command{
	Use:   "status-type",
	Short: "Manage status types",
	Long: `Add or remove the status types tracked on each entry.
Existing entries keep their recorded values.`,
}

var statusTypeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a status type",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prefix, _ := cmd.Flags().GetString("prefix")
		isDefault, _ := cmd.Flags().GetBool("default")
		if d := handlerDeps(); d != nil {
			handlers.AddStatusType(d, entry.StatusType{Name: args[0], Prefix: prefix, Default: isDefault})
		}
	},
}

var statusTypeRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a status type",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.RemoveStatusType(d, args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configThemeCmd)
	configCmd.AddCommand(statusTypeCmd)
	statusTypeCmd.AddCommand(statusTypeAddCmd)
	statusTypeCmd.AddCommand(statusTypeRemoveCmd)

	statusTypeAddCmd.Flags().String("prefix", "", "Ticket prefix used by 'blogger tickets'")
	statusTypeAddCmd.Flags().Bool("default", false, "New entries start out complete")
}
