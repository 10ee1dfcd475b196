package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
)

// sprintCmd represents the sprint command
var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Show the current sprint or the sprint history",
	Long: `Show the sprint containing today with its statistics and entries.

Sprints are fixed-length periods counted from the epoch in the config
([sprint] epoch and duration_weeks). With --history every sprint from the
first to the last log is listed; sprints without logs that have not ended
yet are left out.

Examples:
  blogger sprint
  blogger sprint --history`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		history, _ := cmd.Flags().GetBool("history")
		runSprint(history)
	},
}

func init() {
	rootCmd.AddCommand(sprintCmd)
	sprintCmd.Flags().Bool("history", false, "Show every sprint")
}

func runSprint(history bool) {
	d := handlerDeps()
	if d == nil {
		return
	}
	if history {
		handlers.ShowSprintHistory(d)
		return
	}
	handlers.ShowCurrentSprint(d)
}
