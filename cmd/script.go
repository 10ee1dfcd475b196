package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
)

// scriptCmd groups the migration script commands
var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Track migration scripts",
	Long: `Track database migration scripts through review and deployment.

Each script has three flags: reviewed, applied_test and applied_prod
(short forms: review, test, prod).`,
}

var scriptAddCmd = &cobra.Command{
	Use:   "add <ticket> <script>",
	Short: "Record a migration script",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.AddScript(d, args[0], strings.Join(args[1:], " "))
		}
	},
}

var scriptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List migration scripts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		open, _ := cmd.Flags().GetBool("open")
		if d := handlerDeps(); d != nil {
			handlers.ListScripts(d, open)
		}
	},
}

var scriptToggleCmd = &cobra.Command{
	Use:       "toggle <id> <flag>",
	Short:     "Toggle a script flag",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"reviewed", "applied_test", "applied_prod"},
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.ToggleScript(d, args[0], args[1])
		}
	},
}

var scriptDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a migration script",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.DeleteScript(d, args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.AddCommand(scriptAddCmd)
	scriptCmd.AddCommand(scriptListCmd)
	scriptCmd.AddCommand(scriptToggleCmd)
	scriptCmd.AddCommand(scriptDeleteCmd)

	scriptListCmd.Flags().Bool("open", false, "Only scripts not yet applied everywhere")
}
