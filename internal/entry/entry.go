package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xolan/blogger/internal/timeutil"
)

// legacyComplete is the glyph older files stored in q_status/jira_status
const legacyComplete = "✅"

// ErrSubtaskIndex is returned when a subtask index is out of range
var ErrSubtaskIndex = errors.New("subtask index out of range")

// Timestamp is a log timestamp serialized as "DD.MM.YYYY HH:MM:SS"
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to whole seconds
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

// Date returns the calendar date used for grouping and sorting
func (ts Timestamp) Date() time.Time {
	return timeutil.Date(ts.Time)
}

// String formats the timestamp in the storage layout
func (ts Timestamp) String() string {
	return ts.Format(timeutil.TimestampLayout)
}

// MarshalJSON implements json.Marshaler
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON implements json.Unmarshaler.
// The returned error wraps timeutil.ErrInvalidDateFormat.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: timestamp must be a string", timeutil.ErrInvalidDateFormat)
	}
	t, err := timeutil.ParseTimestamp(s)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

// StatusType is a named completion flag tracked on every log entry
type StatusType struct {
	Name    string `toml:"name" json:"name"`
	Prefix  string `toml:"prefix" json:"prefix"`
	Default bool   `toml:"default" json:"default"`
}

// DefaultStatusTypes returns the two status types every installation starts with
func DefaultStatusTypes() []StatusType {
	return []StatusType{
		{Name: "q", Prefix: "QI-"},
		{Name: "jira"},
	}
}

// LogEntry represents a single work log record
type LogEntry struct {
	ID          string          `json:"id"`
	Timestamp   Timestamp       `json:"timestamp"`
	Ticket      string          `json:"ticket"`
	Description string          `json:"description,omitempty"`
	Duration    string          `json:"duration"`
	Status      map[string]bool `json:"status"`
	Subtasks    []string        `json:"subtasks"`
}

// New creates a log entry stamped at now with a fresh id.
// Status defaults are taken from the given status types.
func New(now time.Time, ticket string, types []StatusType) LogEntry {
	e := LogEntry{
		ID:        uuid.New().String(),
		Timestamp: NewTimestamp(now),
		Ticket:    ticket,
		Status:    map[string]bool{},
		Subtasks:  []string{},
	}
	e.ApplyDefaults(types)
	return e
}

// Date returns the calendar date of the entry
func (e LogEntry) Date() time.Time {
	return e.Timestamp.Date()
}

// Minutes returns the parsed duration of the entry
func (e LogEntry) Minutes() int {
	return ParseDuration(e.Duration)
}

// IsComplete reports the state of a status type. Missing keys are incomplete.
func (e LogEntry) IsComplete(statusType string) bool {
	return e.Status[statusType]
}

// SetStatus sets the state of a status type
func (e *LogEntry) SetStatus(statusType string, complete bool) {
	if e.Status == nil {
		e.Status = map[string]bool{}
	}
	e.Status[statusType] = complete
}

// ToggleStatus flips a status type and returns the new state
func (e *LogEntry) ToggleStatus(statusType string) bool {
	next := !e.IsComplete(statusType)
	e.SetStatus(statusType, next)
	return next
}

// ApplyDefaults sets configured defaults for status types the entry has no value for
func (e *LogEntry) ApplyDefaults(types []StatusType) {
	for _, st := range types {
		if _, ok := e.Status[st.Name]; !ok {
			e.SetStatus(st.Name, st.Default)
		}
	}
}

// AddSubtask appends a subtask
func (e *LogEntry) AddSubtask(text string) {
	e.Subtasks = append(e.Subtasks, text)
}

// RemoveSubtask removes the subtask at the 0-based index and returns it
func (e *LogEntry) RemoveSubtask(index int) (string, error) {
	if index < 0 || index >= len(e.Subtasks) {
		return "", fmt.Errorf("%w: %d (have %d)", ErrSubtaskIndex, index+1, len(e.Subtasks))
	}
	removed := e.Subtasks[index]
	e.Subtasks = append(e.Subtasks[:index], e.Subtasks[index+1:]...)
	return removed, nil
}

// EditSubtask replaces the text of the subtask at the 0-based index
func (e *LogEntry) EditSubtask(index int, text string) error {
	if index < 0 || index >= len(e.Subtasks) {
		return fmt.Errorf("%w: %d (have %d)", ErrSubtaskIndex, index+1, len(e.Subtasks))
	}
	e.Subtasks[index] = text
	return nil
}

// EnsureID assigns an id to entries loaded from files that predate ids.
// Returns true if an id was assigned.
func (e *LogEntry) EnsureID() bool {
	if e.ID != "" {
		return false
	}
	e.ID = uuid.New().String()
	return true
}

// UnmarshalJSON decodes an entry and folds the legacy q_status/jira_status
// glyph fields into the status map.
func (e *LogEntry) UnmarshalJSON(data []byte) error {
	type plain LogEntry
	var raw struct {
		plain
		QStatus    *string `json:"q_status"`
		JiraStatus *string `json:"jira_status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = LogEntry(raw.plain)
	if e.Status == nil {
		e.Status = map[string]bool{}
	}
	if e.Subtasks == nil {
		e.Subtasks = []string{}
	}
	foldLegacy(e.Status, "q", raw.QStatus)
	foldLegacy(e.Status, "jira", raw.JiraStatus)
	return nil
}

func foldLegacy(status map[string]bool, name string, glyph *string) {
	if glyph == nil {
		return
	}
	if _, ok := status[name]; ok {
		return
	}
	status[name] = *glyph == legacyComplete
}
