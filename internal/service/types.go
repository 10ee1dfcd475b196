// Package service provides the business logic layer for the blogger application.
// It owns loading and saving of the storage files and the clock, and hands
// in-memory snapshots to the entry, sprint, stats and timer packages,
// providing a clean API for the CLI, the interactive shell and the TUI.
package service

import (
	"time"

	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/sprint"
	"github.com/xolan/blogger/internal/stats"
	"github.com/xolan/blogger/internal/storage"
	"github.com/xolan/blogger/internal/timer"
)

// Clock returns the current time. Services never call time.Now directly.
type Clock func() time.Time

// ListResult contains the results of listing log entries
type ListResult struct {
	Entries  []entry.LogEntry
	Groups   []entry.DayGroup
	Warnings []storage.ParseWarning
	Total    int // Total duration in minutes
}

// EntryChanges lists the fields to change on an entry. Nil fields are kept.
type EntryChanges struct {
	Ticket      *string
	Description *string
	Duration    *string
	Date        *time.Time
}

// IsEmpty reports whether no change is requested
func (c EntryChanges) IsEmpty() bool {
	return c.Ticket == nil && c.Description == nil && c.Duration == nil && c.Date == nil
}

// TimerStatus represents the current ongoing entry, if any
type TimerStatus struct {
	Running     bool
	State       *timer.TimerState
	ElapsedTime time.Duration
}

// StatsResult contains the statistics report and read warnings
type StatsResult struct {
	Report   stats.Report
	Warnings []storage.ParseWarning
}

// SprintResult describes one sprint
type SprintResult struct {
	Config     sprint.Config
	Bucket     sprint.Bucket
	Statistics stats.Statistics
	IsCurrent  bool
}

// HistoryResult contains every sprint from the first to the last log
type HistoryResult struct {
	Config  sprint.Config
	Current int
	Buckets []sprint.Bucket
}
