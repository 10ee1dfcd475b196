package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
)

var yesFlag bool

// deleteCmd represents the log delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a log entry by id",
	Long: `Delete a log entry by its id or a unique id prefix.
A confirmation prompt will be shown unless --yes is specified.
The logs file is backed up before the entry is removed.

Example:
  blogger log delete 3f2a9c1b
  blogger log delete 3f2a9c1b --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteEntry(args[0])
	},
}

func init() {
	logCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
}

// deleteEntry handles the deletion of a log entry
func deleteEntry(id string) {
	d := handlerDeps()
	if d == nil {
		return
	}
	handlers.DeleteEntry(d, id, yesFlag)
}
