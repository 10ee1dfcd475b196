package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/blogger/internal/config"
	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/filter"
	"github.com/xolan/blogger/internal/storage"
)

// Common errors for the log service
var (
	ErrEmptyTicket        = errors.New("ticket cannot be empty")
	ErrEntryNotFound      = errors.New("log entry not found")
	ErrNoChangesSpecified = errors.New("at least one change must be specified")
	ErrEmptySubtask       = errors.New("subtask cannot be empty")
	ErrUnknownStatusType  = config.ErrUnknownStatusType
	ErrSubtaskIndex       = entry.ErrSubtaskIndex
)

// logFile loads and saves logs.json on behalf of the services
type logFile struct {
	path string
}

// load reads every entry. Entries without an id get one and are written back.
func (f logFile) load() (storage.ReadResult[entry.LogEntry], error) {
	result, err := storage.ReadLogs(f.path)
	if err != nil {
		return result, fmt.Errorf("failed to read logs: %w", err)
	}

	assigned := false
	for i := range result.Records {
		if result.Records[i].EnsureID() {
			assigned = true
		}
	}
	if assigned && len(result.Warnings) == 0 {
		if err := storage.WriteLogs(f.path, result.Records); err != nil {
			return result, fmt.Errorf("failed to save logs: %w", err)
		}
	}
	return result, nil
}

// save writes the entries back sorted by date. Destructive saves rotate a backup first;
// callers also pass true when the file had malformed records, since those are dropped.
func (f logFile) save(logs []entry.LogEntry, destructive bool) error {
	if destructive {
		if err := storage.CreateBackup(f.path); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}
	if err := storage.WriteLogs(f.path, logs); err != nil {
		return fmt.Errorf("failed to save logs: %w", err)
	}
	return nil
}

// LogService provides operations for managing work log entries
type LogService struct {
	file   logFile
	config config.Config
	now    Clock
}

// NewLogService creates a new LogService
func NewLogService(logsPath string, cfg config.Config, now Clock) *LogService {
	return &LogService{
		file:   logFile{path: logsPath},
		config: cfg,
		now:    now,
	}
}

// Create stores a new entry stamped with the current time
func (s *LogService) Create(ticket, description, duration string, subtasks []string) (*entry.LogEntry, error) {
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		return nil, ErrEmptyTicket
	}

	result, err := s.file.load()
	if err != nil {
		return nil, err
	}

	e := entry.New(s.now(), ticket, s.config.StatusTypes)
	e.Description = strings.TrimSpace(description)
	e.Duration = strings.TrimSpace(duration)
	for _, sub := range subtasks {
		if sub = strings.TrimSpace(sub); sub != "" {
			e.AddSubtask(sub)
		}
	}

	if err := s.file.save(append(result.Records, e), len(result.Warnings) > 0); err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns the entries matching f in ascending date order, grouped by day
func (s *LogService) List(f *filter.Filter) (*ListResult, error) {
	result, err := s.file.load()
	if err != nil {
		return nil, err
	}

	matched := entry.SortedAscending(filter.FilterEntries(result.Records, f))
	return &ListResult{
		Entries:  matched,
		Groups:   entry.GroupByDate(matched),
		Warnings: result.Warnings,
		Total:    entry.DayTotalMinutes(matched),
	}, nil
}

// All returns every entry in ascending date order
func (s *LogService) All() ([]entry.LogEntry, []storage.ParseWarning, error) {
	result, err := s.file.load()
	if err != nil {
		return nil, nil, err
	}
	return entry.SortedAscending(result.Records), result.Warnings, nil
}

// OnDate returns the entries of one calendar date in stored order
func (s *LogService) OnDate(day time.Time) ([]entry.LogEntry, error) {
	logs, _, err := s.All()
	if err != nil {
		return nil, err
	}
	return entry.FilterByExactDate(logs, day), nil
}

// Get returns the entry with the given id or unique id prefix
func (s *LogService) Get(id string) (*entry.LogEntry, error) {
	result, err := s.file.load()
	if err != nil {
		return nil, err
	}
	idx := entry.FindByID(result.Records, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrEntryNotFound, id)
	}
	e := result.Records[idx]
	return &e, nil
}

// Edit applies changes to the entry with the given id.
// A new date keeps the entry's time of day.
func (s *LogService) Edit(id string, changes EntryChanges) (*entry.LogEntry, error) {
	if changes.IsEmpty() {
		return nil, ErrNoChangesSpecified
	}
	if changes.Ticket != nil && strings.TrimSpace(*changes.Ticket) == "" {
		return nil, ErrEmptyTicket
	}

	return s.update(id, changes.Date != nil, func(e *entry.LogEntry) error {
		if changes.Ticket != nil {
			e.Ticket = strings.TrimSpace(*changes.Ticket)
		}
		if changes.Description != nil {
			e.Description = strings.TrimSpace(*changes.Description)
		}
		if changes.Duration != nil {
			e.Duration = strings.TrimSpace(*changes.Duration)
		}
		if changes.Date != nil {
			ts := e.Timestamp.Time
			y, m, d := changes.Date.Date()
			e.Timestamp = entry.NewTimestamp(time.Date(y, m, d, ts.Hour(), ts.Minute(), ts.Second(), 0, ts.Location()))
		}
		return nil
	})
}

// Delete removes the entry with the given id and returns it
func (s *LogService) Delete(id string) (*entry.LogEntry, error) {
	result, err := s.file.load()
	if err != nil {
		return nil, err
	}

	idx := entry.FindByID(result.Records, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrEntryNotFound, id)
	}
	deleted := result.Records[idx]
	remaining := append(result.Records[:idx:idx], result.Records[idx+1:]...)

	if err := s.file.save(remaining, true); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// ToggleStatus flips a status type on the entry and returns the new state
func (s *LogService) ToggleStatus(id, statusType string) (*entry.LogEntry, bool, error) {
	st, err := s.config.StatusType(statusType)
	if err != nil {
		return nil, false, err
	}

	var state bool
	e, err := s.update(id, false, func(e *entry.LogEntry) error {
		state = e.ToggleStatus(st.Name)
		return nil
	})
	return e, state, err
}

// SetStatus sets a status type on the entry
func (s *LogService) SetStatus(id, statusType string, complete bool) (*entry.LogEntry, error) {
	st, err := s.config.StatusType(statusType)
	if err != nil {
		return nil, err
	}
	return s.update(id, false, func(e *entry.LogEntry) error {
		e.SetStatus(st.Name, complete)
		return nil
	})
}

// AddSubtask appends a subtask to the entry
func (s *LogService) AddSubtask(id, text string) (*entry.LogEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptySubtask
	}
	return s.update(id, false, func(e *entry.LogEntry) error {
		e.AddSubtask(text)
		return nil
	})
}

// RemoveSubtask removes the subtask at the 1-based position and returns its text
func (s *LogService) RemoveSubtask(id string, position int) (*entry.LogEntry, string, error) {
	var removed string
	e, err := s.update(id, true, func(e *entry.LogEntry) error {
		var err error
		removed, err = e.RemoveSubtask(position - 1)
		return err
	})
	return e, removed, err
}

// EditSubtask replaces the subtask at the 1-based position
func (s *LogService) EditSubtask(id string, position int, text string) (*entry.LogEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptySubtask
	}
	return s.update(id, false, func(e *entry.LogEntry) error {
		return e.EditSubtask(position-1, text)
	})
}

// Tickets returns the distinct tickets carrying the status type's prefix.
// With incompleteOnly, entries already complete for the type are skipped.
func (s *LogService) Tickets(statusType string, incompleteOnly bool) ([]string, error) {
	st, err := s.config.StatusType(statusType)
	if err != nil {
		return nil, err
	}

	logs, _, err := s.All()
	if err != nil {
		return nil, err
	}
	if incompleteOnly {
		logs = filter.FilterEntries(logs, filter.NewFilter("", "", st.Name))
	}
	return entry.DistinctPrefixedTickets(logs, st.Prefix), nil
}

// StatusTypes returns the configured status types
func (s *LogService) StatusTypes() []entry.StatusType {
	return s.config.StatusTypes
}

// update loads the logs, applies fn to the addressed entry and saves
func (s *LogService) update(id string, destructive bool, fn func(*entry.LogEntry) error) (*entry.LogEntry, error) {
	result, err := s.file.load()
	if err != nil {
		return nil, err
	}

	idx := entry.FindByID(result.Records, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrEntryNotFound, id)
	}

	e := result.Records[idx]
	e.Status = cloneStatus(e.Status)
	e.Subtasks = append(make([]string, 0, len(e.Subtasks)), e.Subtasks...)
	if err := fn(&e); err != nil {
		return nil, err
	}
	result.Records[idx] = e

	if err := s.file.save(result.Records, destructive || len(result.Warnings) > 0); err != nil {
		return nil, err
	}
	return &e, nil
}

func cloneStatus(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
