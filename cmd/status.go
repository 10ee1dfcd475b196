package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the ongoing entry",
	Long:  `Show the entry that is currently ongoing and how long it has been running.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStatus()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// showStatus prints the ongoing entry, if any
func showStatus() {
	d := handlerDeps()
	if d == nil {
		return
	}
	handlers.ShowTimerStatus(d)
}
