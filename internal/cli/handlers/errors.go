package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/service"
)

// fail maps service errors to a message and a hint, then exits
func fail(deps *cli.Deps, action string, err error) {
	switch {
	case errors.Is(err, service.ErrEntryNotFound):
		deps.Fail("Log entry not found", err, "List entries with 'blogger log list' to see their ids")
	case errors.Is(err, service.ErrRecordNotFound):
		deps.Fail("Record not found", err, "List records to see their ids")
	case errors.Is(err, service.ErrEmptyTicket):
		deps.Fail("Ticket cannot be empty", nil, "Example: blogger log add \"QI-123 fix login\" --duration 1h30m")
	case errors.Is(err, service.ErrUnknownStatusType):
		names := strings.Join(deps.Services.Config.Get().StatusTypeNames(), ", ")
		deps.Fail("Unknown status type", err, fmt.Sprintf("Configured status types: %s", names))
	case errors.Is(err, service.ErrSubtaskIndex):
		deps.Fail("Invalid subtask number", err, "Subtasks are numbered from 1 in 'blogger log list'")
	case errors.Is(err, service.ErrNoChangesSpecified):
		deps.Fail("At least one change is required", nil, "Use --ticket, --desc, --duration or --date")
	default:
		deps.Fail(fmt.Sprintf("Failed to %s", action), err)
	}
}
