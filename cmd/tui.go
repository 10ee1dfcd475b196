package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the terminal dashboard for blogger.

Views available:
  - Logs: Browse logs grouped by day, toggle status types, add logs and subtasks
  - Timer: Start and stop the ongoing log
  - Stats: Statistics for the last 10 workdays with both charts
  - Sprints: Every sprint with its statistics and days
  - Config: View configuration and pick a theme

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - F1-F5: Jump to specific view
  - space / 1-9: Toggle the first / nth status type of the selected log
  - j/k or arrows: Navigate within lists
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// --tui on the root command opens the dashboard instead of the shell
	rootCmd.PersistentFlags().Bool("tui", false, "Launch the interactive dashboard")
}

// runTUI initializes the services and runs the dashboard
func runTUI() {
	services, err := deps.Services()
	if err != nil {
		failServices(err)
		return
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to run dashboard\nDetails: %v\n", err)
		deps.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the dashboard if so.
// Returns true if the dashboard was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
