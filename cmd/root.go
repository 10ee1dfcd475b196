package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
)

var rootCmd = &cobra.Command{
	Use:   "blogger",
	Short: "A work log tracker with sprints and statistics",
	Long: `blogger records dated work log entries (ticket, time spent, completion
status per status type, subtasks), groups them into fixed-length sprints and
reports statistics over the most recent workdays.

Usage:
  blogger                                       Start the interactive shell
  blogger log add <ticket> --duration 1h30m     Log a new entry
  blogger log list                              List entries grouped by day
  blogger log toggle <id> q                     Toggle a status type
  blogger log start <ticket> / log stop         Track an ongoing entry
  blogger stats                                 Statistics for the last 10 workdays
  blogger sprint [--history]                    Current sprint or all sprints
  blogger tickets q                             Distinct tickets of a status type
  blogger script ... / link ...                 Migration scripts and links
  blogger tui                                   Launch the dashboard

Durations: "1h", "30m", "1h30m", "45m 1h" or a bare number of hours.
Dates: DD.MM.YYYY`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		runShell()
	},
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check storage file health",
	Long:  `Validate the logs, scripts and links files and report on their health, including any malformed records.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		validateStorage()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"blogger version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// SetArgs sets the arguments the root command parses instead of os.Args
func SetArgs(args []string) {
	rootCmd.SetArgs(args)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// validateStorage checks the storage files and reports their health
func validateStorage() {
	d := handlerDeps()
	if d == nil {
		return
	}
	handlers.ValidateStorage(d)
}
