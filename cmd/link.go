package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
)

// linkCmd groups the link bookmark commands
var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Keep a list of links",
}

var linkAddCmd = &cobra.Command{
	Use:   "add <url> [comment]",
	Short: "Bookmark a link",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.AddLink(d, args[0], strings.Join(args[1:], " "))
		}
	},
}

var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List links",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.ListLinks(d)
		}
	},
}

var linkDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.DeleteLink(d, args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
	linkCmd.AddCommand(linkAddCmd)
	linkCmd.AddCommand(linkListCmd)
	linkCmd.AddCommand(linkDeleteCmd)
}
