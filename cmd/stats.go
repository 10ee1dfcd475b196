package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for the most recent workdays",
	Long: `Show statistics over the logs of up to the 10 most recent workdays
(Monday to Friday) within the last 14 days, today included.

Displayed:
  - Total and average time, number of entries
  - Completion per status type and the entries still incomplete
  - Time per ticket
  - Bar charts of time and entries per day, newest first`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runStats()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// runStats handles the stats command logic
func runStats() {
	d := handlerDeps()
	if d == nil {
		return
	}
	handlers.ShowStats(d)
}
