package handlers

import (
	"errors"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/service"
	"github.com/xolan/blogger/internal/timer"
)

// StartTimer creates an ongoing entry
func StartTimer(deps *cli.Deps, ticket string) {
	e, existing, err := deps.Services.Timer.Start(ticket)
	if err != nil {
		if errors.Is(err, service.ErrTimerAlreadyRunning) && existing != nil {
			deps.Fail("An entry is already ongoing", nil,
				"Current: "+ongoingHint(existing.Entry),
				"Stop it first with 'blogger log stop'")
			return
		}
		fail(deps, "start entry", err)
		return
	}

	deps.Printf("Started: %s at %s\n", e.Ticket, e.Timestamp.Format("15:04"))
}

// StopTimer finishes the ongoing entry
func StopTimer(deps *cli.Deps) {
	e, minutes, err := deps.Services.Timer.Stop()
	if err != nil {
		if errors.Is(err, service.ErrNoOngoingEntry) {
			deps.Fail("No entry is ongoing", nil, "Start one with 'blogger log start <ticket>'")
			return
		}
		fail(deps, "stop entry", err)
		return
	}

	deps.Printf("Stopped: %s (%s)\n", e.Ticket, cli.FormatMinutes(minutes))
}

// ShowTimerStatus shows the ongoing entry, if any
func ShowTimerStatus(deps *cli.Deps) {
	status, err := deps.Services.Timer.Status()
	if err != nil {
		fail(deps, "read entries", err)
		return
	}

	if !status.Running || status.State == nil {
		deps.Println("No entry is ongoing")
		deps.Println("Start one with: blogger log start <ticket>")
		return
	}

	state := status.State
	deps.Println("Ongoing:")
	deps.Printf("  %s\n", state.Entry.Ticket)
	deps.Printf("  Started: %s\n", state.StartedAt.Format("02.01.2006 15:04"))
	deps.Printf("  Elapsed: %s\n", timer.FormatElapsed(state.StartedAt, state.StartedAt.Add(status.ElapsedTime)))
}
