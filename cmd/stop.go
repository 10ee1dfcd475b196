package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
)

// stopCmd represents the log stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the ongoing entry",
	Long: `Replace the "ongoing" duration of the running entry with the time elapsed
since it was started. Less than a minute is recorded as one minute.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stopTimer()
	},
}

func init() {
	logCmd.AddCommand(stopCmd)
}

// stopTimer finishes the ongoing entry
func stopTimer() {
	d := handlerDeps()
	if d == nil {
		return
	}
	handlers.StopTimer(d)
}
