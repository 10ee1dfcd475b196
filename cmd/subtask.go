package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
)

// subtaskCmd groups the subtask commands
var subtaskCmd = &cobra.Command{
	Use:   "subtask",
	Short: "Manage the subtasks of an entry",
	Long: `Add, edit or remove subtasks of a log entry.
Subtasks are numbered from 1 in 'blogger log list'.`,
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add <id> <text>",
	Short: "Append a subtask",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.AddSubtask(d, args[0], strings.Join(args[1:], " "))
		}
	},
}

var subtaskEditCmd = &cobra.Command{
	Use:   "edit <id> <number> <text>",
	Short: "Replace a subtask",
	Args:  cobra.MinimumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.EditSubtask(d, args[0], args[1], strings.Join(args[2:], " "))
		}
	},
}

var subtaskRemoveCmd = &cobra.Command{
	Use:   "remove <id> <number>",
	Short: "Remove a subtask",
	Long: `Remove the subtask with the given number from an entry.
The logs file is backed up first.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.RemoveSubtask(d, args[0], args[1])
		}
	},
}

func init() {
	logCmd.AddCommand(subtaskCmd)
	subtaskCmd.AddCommand(subtaskAddCmd)
	subtaskCmd.AddCommand(subtaskEditCmd)
	subtaskCmd.AddCommand(subtaskRemoveCmd)
}
