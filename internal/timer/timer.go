package timer

import (
	"errors"
	"fmt"
	"time"

	"github.com/xolan/blogger/internal/entry"
)

// ErrAlreadyRunning is returned when starting while another entry is ongoing
var ErrAlreadyRunning = errors.New("an entry is already ongoing")

// TimerState describes the currently ongoing entry
type TimerState struct {
	Index     int
	Entry     entry.LogEntry
	StartedAt time.Time
}

// Elapsed returns the whole minutes since the timer started
func (s TimerState) Elapsed(now time.Time) int {
	return ElapsedMinutes(s.StartedAt, now)
}

// FindOngoing returns the most recently started ongoing entry, or nil.
// Only the latest one counts so that stray ongoing entries from older days
// never block a new start.
func FindOngoing(logs []entry.LogEntry) *TimerState {
	var state *TimerState
	for i, e := range logs {
		if !entry.IsOngoing(e.Duration) {
			continue
		}
		if state == nil || !e.Timestamp.Before(state.StartedAt) {
			state = &TimerState{Index: i, Entry: e, StartedAt: e.Timestamp.Time}
		}
	}
	return state
}

// IsTimerRunning reports whether any entry is ongoing
func IsTimerRunning(logs []entry.LogEntry) bool {
	return FindOngoing(logs) != nil
}

// Start creates an ongoing entry stamped at now
func Start(logs []entry.LogEntry, now time.Time, ticket string, types []entry.StatusType) (entry.LogEntry, error) {
	if IsTimerRunning(logs) {
		return entry.LogEntry{}, ErrAlreadyRunning
	}
	e := entry.New(now, ticket, types)
	e.Duration = entry.OngoingDuration
	return e, nil
}

// Stop replaces the ongoing sentinel with the elapsed time and returns the minutes.
// Elapsed time under a minute is rounded up to 1 minute.
func Stop(e *entry.LogEntry, now time.Time) int {
	minutes := ElapsedMinutes(e.Timestamp.Time, now)
	if minutes < 1 {
		minutes = 1
	}
	e.Duration = entry.FormatDuration(minutes)
	return minutes
}

// ElapsedMinutes returns whole minutes between start and now, never negative
func ElapsedMinutes(start, now time.Time) int {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// FormatElapsed formats a running duration as "1h 05m" or "12m 30s"
func FormatElapsed(start, now time.Time) string {
	d := now.Sub(start)
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm %02ds", m, s)
}
