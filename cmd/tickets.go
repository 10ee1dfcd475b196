package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
)

// ticketsCmd represents the tickets command
var ticketsCmd = &cobra.Command{
	Use:   "tickets <status-type>",
	Short: "List distinct tickets of a status type",
	Long: `List the distinct tickets that start with the prefix of a status type,
in order of first appearance. A ticket marked with "[Q]" wins over an
unmarked entry for the same ticket key.

Examples:
  blogger tickets q
  blogger tickets q --incomplete`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		incomplete, _ := cmd.Flags().GetBool("incomplete")
		if d := handlerDeps(); d != nil {
			handlers.ListTickets(d, args[0], incomplete)
		}
	},
}

func init() {
	rootCmd.AddCommand(ticketsCmd)
	ticketsCmd.Flags().BoolP("incomplete", "i", false, "Skip entries already complete for the status type")
}
