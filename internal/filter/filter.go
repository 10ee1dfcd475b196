package filter

import (
	"strings"
	"time"

	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/timeutil"
)

// Filter represents search and filtering criteria for log entries.
// All filter fields are optional - empty values match all entries.
type Filter struct {
	Keyword    string     // Case-insensitive substring search in ticket, description and subtasks
	Prefix     string     // Ticket prefix match (case-insensitive)
	Incomplete string     // Only entries where this status type is not complete
	Date       *time.Time // Exact calendar date
	From       *time.Time // Inclusive lower date bound
	To         *time.Time // Inclusive upper date bound
}

// NewFilter creates a new Filter with the given criteria.
// All parameters are optional - pass empty values to match all entries.
func NewFilter(keyword, prefix, incomplete string) *Filter {
	return &Filter{
		Keyword:    keyword,
		Prefix:     prefix,
		Incomplete: incomplete,
	}
}

// OnDate restricts the filter to a single calendar date
func (f *Filter) OnDate(day time.Time) *Filter {
	d := timeutil.Date(day)
	f.Date = &d
	return f
}

// Between restricts the filter to an inclusive date range
func (f *Filter) Between(start, end time.Time) *Filter {
	s, e := timeutil.Date(start), timeutil.Date(end)
	f.From = &s
	f.To = &e
	return f
}

// IsEmpty returns true if all filter fields are empty (matches all entries)
func (f *Filter) IsEmpty() bool {
	return f.Keyword == "" && f.Prefix == "" && f.Incomplete == "" &&
		f.Date == nil && f.From == nil && f.To == nil
}

// FilterEntries returns a new slice containing only entries that match the filter criteria.
// If the filter is empty, returns all entries.
func FilterEntries(entries []entry.LogEntry, f *Filter) []entry.LogEntry {
	if f == nil || f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.LogEntry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MatchesKeyword returns true if the keyword is found in the ticket, description
// or any subtask (case-insensitive). An empty keyword matches all entries.
func (f *Filter) MatchesKeyword(e entry.LogEntry) bool {
	if f.Keyword == "" {
		return true
	}
	keyword := strings.ToLower(f.Keyword)
	if strings.Contains(strings.ToLower(e.Ticket), keyword) ||
		strings.Contains(strings.ToLower(e.Description), keyword) {
		return true
	}
	for _, sub := range e.Subtasks {
		if strings.Contains(strings.ToLower(sub), keyword) {
			return true
		}
	}
	return false
}

// MatchesPrefix returns true if the ticket starts with the filter prefix (case-insensitive).
// An empty prefix matches all entries.
func (f *Filter) MatchesPrefix(e entry.LogEntry) bool {
	if f.Prefix == "" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(e.Ticket), strings.ToLower(f.Prefix))
}

// MatchesIncomplete returns true if the entry is not complete for the filter status type.
// An empty status type matches all entries.
func (f *Filter) MatchesIncomplete(e entry.LogEntry) bool {
	if f.Incomplete == "" {
		return true
	}
	return !e.IsComplete(f.Incomplete)
}

// MatchesDate returns true if the entry date satisfies the exact date and range bounds
func (f *Filter) MatchesDate(e entry.LogEntry) bool {
	d := e.Date()
	if f.Date != nil && !d.Equal(*f.Date) {
		return false
	}
	if f.From != nil && d.Before(*f.From) {
		return false
	}
	if f.To != nil && d.After(*f.To) {
		return false
	}
	return true
}

// Matches returns true if the entry satisfies every criterion (AND logic)
func (f *Filter) Matches(e entry.LogEntry) bool {
	return f.MatchesKeyword(e) && f.MatchesPrefix(e) && f.MatchesIncomplete(e) && f.MatchesDate(e)
}
