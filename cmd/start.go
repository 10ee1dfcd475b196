package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
)

// startCmd represents the log start command
var startCmd = &cobra.Command{
	Use:   "start <ticket>",
	Short: "Start an ongoing entry",
	Long: `Log an entry for a ticket with the duration "ongoing".
Ongoing entries count as zero time until they are stopped with 'blogger log stop'.
Only one entry can be ongoing at a time.

Examples:
  blogger log start "QI-123 fix login"
  blogger log start code review`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startTimer(args)
	},
}

func init() {
	logCmd.AddCommand(startCmd)
}

// startTimer starts an ongoing entry for the ticket
func startTimer(args []string) {
	ticket := strings.TrimSpace(strings.Join(args, " "))
	if ticket == "" {
		failUsage("Ticket cannot be empty", "blogger log start <ticket>")
		return
	}

	d := handlerDeps()
	if d == nil {
		return
	}
	handlers.StartTimer(d, ticket)
}
