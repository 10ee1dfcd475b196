package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli/handlers"
	"github.com/xolan/blogger/internal/service"
	"github.com/xolan/blogger/internal/timeutil"
)

// logCmd groups the log entry commands
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage work log entries",
	Long: `Create, list, edit and delete work log entries.

Entries are addressed by id. Listings show the first 8 characters of each id;
any unique prefix is accepted.`,
}

// addCmd represents the log add command
var addCmd = &cobra.Command{
	Use:   "add <ticket>",
	Short: "Log a new entry",
	Long: `Log a new entry for a ticket, stamped with the current time.

Status types marked as default in the config start out complete.

Examples:
  blogger log add "QI-123 fix login" --duration 1h30m
  blogger log add standup --duration 15m --desc "daily"
  blogger log add "QI-7 [Q] migration" -s "write script" -s "review"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addEntry(cmd, args)
	},
}

// showCmd represents the log show command
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.ShowEntry(d, args[0])
		}
	},
}

// dayCmd represents the log day command
var dayCmd = &cobra.Command{
	Use:   "day [DD.MM.YYYY]",
	Short: "Show the entries of one day",
	Long: `Show the entries of one day with their subtasks, in the order they were
logged. Without a date, today is shown.

Examples:
  blogger log day
  blogger log day 14.01.2025`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showDay(args)
	},
}

// editCmd represents the log edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing entry",
	Long: `Edit the ticket, description, duration or date of an entry.

Usage:
  blogger log edit <id> --ticket "QI-124"
  blogger log edit <id> --duration 2h
  blogger log edit <id> --date 14.01.2025

A new date keeps the entry's time of day. At least one flag is required.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editEntry(cmd, args)
	},
}

// toggleCmd represents the log toggle command
var toggleCmd = &cobra.Command{
	Use:   "toggle <id> <status-type>",
	Short: "Toggle a status type on an entry",
	Long: `Flip the completion flag of a status type on an entry.

Examples:
  blogger log toggle 3f2a9c1b q
  blogger log toggle 3f2a9c1b jira`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if d := handlerDeps(); d != nil {
			handlers.ToggleStatus(d, args[0], args[1])
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(addCmd)
	logCmd.AddCommand(showCmd)
	logCmd.AddCommand(dayCmd)
	logCmd.AddCommand(editCmd)
	logCmd.AddCommand(toggleCmd)

	addCmd.Flags().StringP("desc", "d", "", "Description of the work")
	addCmd.Flags().String("duration", "", "Time spent (e.g., 2h, 30m, 1h30m, ongoing)")
	addCmd.Flags().StringArrayP("subtask", "s", nil, "Subtask (repeatable)")

	editCmd.Flags().String("ticket", "", "New ticket")
	editCmd.Flags().String("desc", "", "New description")
	editCmd.Flags().String("duration", "", "New duration (e.g., 2h, 30m)")
	editCmd.Flags().String("date", "", "New date (DD.MM.YYYY)")
}

// addEntry creates a new log entry from the arguments and flags
func addEntry(cmd *cobra.Command, args []string) {
	ticket := strings.Join(args, " ")
	description, _ := cmd.Flags().GetString("desc")
	duration, _ := cmd.Flags().GetString("duration")
	subtasks, _ := cmd.Flags().GetStringArray("subtask")

	d := handlerDeps()
	if d == nil {
		return
	}
	handlers.CreateEntry(d, ticket, description, duration, subtasks)
}

// editEntry collects the changed flags and applies them to an entry
func editEntry(cmd *cobra.Command, args []string) {
	var changes service.EntryChanges
	for _, name := range []string{"ticket", "desc", "duration"} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		value, _ := cmd.Flags().GetString(name)
		switch name {
		case "ticket":
			changes.Ticket = &value
		case "desc":
			changes.Description = &value
		case "duration":
			changes.Duration = &value
		}
	}
	if cmd.Flags().Changed("date") {
		value, _ := cmd.Flags().GetString("date")
		day, ok := parseDateFlag("date", value)
		if !ok {
			return
		}
		changes.Date = &day
	}

	if changes.IsEmpty() {
		failUsage("At least one flag (--ticket, --desc, --duration or --date) is required",
			"blogger log edit <id> --ticket 'QI-124'",
			"blogger log edit <id> --duration 2h",
			"blogger log edit <id> --date 14.01.2025")
		return
	}

	d := handlerDeps()
	if d == nil {
		return
	}
	handlers.EditEntry(d, args[0], changes)
}

// showDay prints the entries of the given date, or of today
func showDay(args []string) {
	var day time.Time
	if len(args) == 1 {
		var err error
		if day, err = timeutil.ParseDate(args[0]); err != nil {
			failUsage(fmt.Sprintf("Invalid day '%s': %v", args[0], err), "blogger log day [DD.MM.YYYY]")
			return
		}
	}

	d := handlerDeps()
	if d == nil {
		return
	}
	if day.IsZero() {
		day = timeutil.Date(d.Services.Now())
	}
	handlers.ShowDay(d, day)
}
