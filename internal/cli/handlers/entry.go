package handlers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/filter"
	"github.com/xolan/blogger/internal/service"
)

// CreateEntry creates a new log entry
func CreateEntry(deps *cli.Deps, ticket, description, duration string, subtasks []string) {
	e, err := deps.Services.Log.Create(ticket, description, duration, subtasks)
	if err != nil {
		fail(deps, "save entry", err)
		return
	}

	deps.Printf("Logged: %s (%s) [%s]\n", e.Ticket, cli.FormatEntryDuration(*e), cli.ShortID(e.ID))
}

// ListEntries lists the entries matching the filter, grouped by day
func ListEntries(deps *cli.Deps, f *filter.Filter) {
	result, err := deps.Services.Log.List(f)
	if err != nil {
		fail(deps, "read entries", err)
		return
	}

	printWarnings(deps, result)

	if len(result.Entries) == 0 {
		if f != nil && !f.IsEmpty() {
			deps.Println("No entries match the filter")
		} else {
			deps.Println("No logs available")
		}
		return
	}

	deps.PrintLines(cli.RenderDayGroups(result.Groups, deps.Services.Log.StatusTypes()))
	deps.Println(cli.Rule("-"))
	deps.Printf("Total: %s (%d %s)\n", cli.FormatMinutes(result.Total), len(result.Entries), cli.Pluralize("entry", len(result.Entries)))
}

// ShowDay prints the entries of one date in the order they were logged
func ShowDay(deps *cli.Deps, day time.Time) {
	logs, err := deps.Services.Log.OnDate(day)
	if err != nil {
		fail(deps, "read entries", err)
		return
	}

	if len(logs) == 0 {
		deps.Printf("No logs on %s\n", cli.FormatDay(day))
		return
	}

	types := deps.Services.Log.StatusTypes()
	deps.Printf("%s:\n", cli.FormatDay(day))
	for _, e := range logs {
		deps.PrintLines(cli.RenderEntry(e, types))
	}
	deps.Println(cli.Rule("-"))
	deps.Printf("Total: %s (%d %s)\n", cli.FormatMinutes(entry.DayTotalMinutes(logs)), len(logs), cli.Pluralize("entry", len(logs)))
}

// ShowEntry prints a single entry
func ShowEntry(deps *cli.Deps, id string) {
	e, err := deps.Services.Log.Get(id)
	if err != nil {
		fail(deps, "read entry", err)
		return
	}

	deps.Printf("%s  %s\n", cli.FormatDay(e.Date()), e.Timestamp.Format("15:04:05"))
	deps.PrintLines(cli.RenderEntry(*e, deps.Services.Log.StatusTypes()))
}

// EditEntry applies the changes to an entry
func EditEntry(deps *cli.Deps, id string, changes service.EntryChanges) {
	e, err := deps.Services.Log.Edit(id, changes)
	if err != nil {
		fail(deps, "update entry", err)
		return
	}

	deps.Printf("Updated: %s (%s) on %s\n", e.Ticket, cli.FormatEntryDuration(*e), cli.FormatDay(e.Date()))
}

// DeleteEntry deletes an entry with optional confirmation
func DeleteEntry(deps *cli.Deps, id string, skipConfirm bool) {
	e, err := deps.Services.Log.Get(id)
	if err != nil {
		fail(deps, "read entry", err)
		return
	}

	deps.Println("Entry to delete:")
	deps.Printf("  %s  %s (%s)\n", e.Timestamp.String(), e.Ticket, cli.FormatEntryDuration(*e))

	if !skipConfirm && !promptConfirmation(deps.Stdout, deps.Stdin, "Delete this entry?") {
		deps.Println("Deletion cancelled")
		return
	}

	deleted, err := deps.Services.Log.Delete(e.ID)
	if err != nil {
		fail(deps, "delete entry", err)
		return
	}

	deps.Printf("Deleted: %s (%s)\n", deleted.Ticket, cli.FormatEntryDuration(*deleted))
}

// ToggleStatus flips a status type on an entry
func ToggleStatus(deps *cli.Deps, id, statusType string) {
	e, state, err := deps.Services.Log.ToggleStatus(id, statusType)
	if err != nil {
		fail(deps, "update status", err)
		return
	}

	mark := cli.OpenMark
	if state {
		mark = cli.DoneMark
	}
	deps.Printf("%s: %s %s\n", e.Ticket, strings.ToLower(statusType), mark)
}

// AddSubtask appends a subtask to an entry
func AddSubtask(deps *cli.Deps, id, text string) {
	e, err := deps.Services.Log.AddSubtask(id, text)
	if err != nil {
		if err == service.ErrEmptySubtask {
			deps.Fail("Subtask cannot be empty", nil)
			return
		}
		fail(deps, "add subtask", err)
		return
	}

	deps.Printf("Added subtask %d to %s\n", len(e.Subtasks), e.Ticket)
}

// RemoveSubtask removes the subtask at a 1-based position
func RemoveSubtask(deps *cli.Deps, id, positionStr string) {
	position, err := strconv.Atoi(positionStr)
	if err != nil {
		deps.Fail(fmt.Sprintf("Invalid subtask number '%s'", positionStr), nil, "Subtask numbers are shown in 'blogger log list'")
		return
	}

	e, removed, err := deps.Services.Log.RemoveSubtask(id, position)
	if err != nil {
		fail(deps, "remove subtask", err)
		return
	}

	deps.Printf("Removed subtask '%s' from %s\n", removed, e.Ticket)
}

// EditSubtask replaces the subtask at a 1-based position
func EditSubtask(deps *cli.Deps, id, positionStr, text string) {
	position, err := strconv.Atoi(positionStr)
	if err != nil {
		deps.Fail(fmt.Sprintf("Invalid subtask number '%s'", positionStr), nil, "Subtask numbers are shown in 'blogger log list'")
		return
	}

	e, err := deps.Services.Log.EditSubtask(id, position, text)
	if err != nil {
		if err == service.ErrEmptySubtask {
			deps.Fail("Subtask cannot be empty", nil)
			return
		}
		fail(deps, "edit subtask", err)
		return
	}

	deps.Printf("Updated subtask %d of %s\n", position, e.Ticket)
}

// ListTickets prints the distinct tickets carrying a status type's prefix
func ListTickets(deps *cli.Deps, statusType string, incompleteOnly bool) {
	tickets, err := deps.Services.Log.Tickets(statusType, incompleteOnly)
	if err != nil {
		fail(deps, "list tickets", err)
		return
	}

	if len(tickets) == 0 {
		deps.Printf("No %s tickets found\n", strings.ToLower(statusType))
		return
	}
	for _, t := range tickets {
		deps.Println(t)
	}
}

func printWarnings(deps *cli.Deps, result *service.ListResult) {
	if len(result.Warnings) == 0 {
		return
	}
	deps.Warn("Found %d malformed %s in logs file:", len(result.Warnings), cli.Pluralize("record", len(result.Warnings)))
	for _, warning := range result.Warnings {
		_, _ = fmt.Fprintln(deps.Stderr, cli.FormatCorruptionWarning(warning))
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}

// ongoingHint names the entry the timer is tracking
func ongoingHint(e entry.LogEntry) string {
	return fmt.Sprintf("%s (started %s)", e.Ticket, e.Timestamp.Format("15:04"))
}

// promptConfirmation asks the user a yes/no question
func promptConfirmation(stdout io.Writer, stdin io.Reader, question string) bool {
	_, _ = fmt.Fprintf(stdout, "%s [y/N]: ", question)

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
