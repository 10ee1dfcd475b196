package entry

import (
	"sort"
	"strings"
	"time"

	"github.com/xolan/blogger/internal/timeutil"
)

// qMarker flags the annotated variant of a ticket mention
const qMarker = "[Q]"

// DayGroup holds all entries that share one calendar date
type DayGroup struct {
	Date    time.Time
	Entries []LogEntry
}

// TotalMinutes returns the day total of the group
func (g DayGroup) TotalMinutes() int {
	return DayTotalMinutes(g.Entries)
}

// SortedAscending returns a copy of logs stably sorted by date.
// Entries on the same date keep their relative order.
func SortedAscending(logs []LogEntry) []LogEntry {
	sorted := make([]LogEntry, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date().Before(sorted[j].Date())
	})
	return sorted
}

// GroupByDate groups entries by calendar date in ascending date order,
// regardless of input order.
func GroupByDate(logs []LogEntry) []DayGroup {
	var groups []DayGroup
	for _, e := range SortedAscending(logs) {
		n := len(groups)
		if n > 0 && groups[n-1].Date.Equal(e.Date()) {
			groups[n-1].Entries = append(groups[n-1].Entries, e)
			continue
		}
		groups = append(groups, DayGroup{Date: e.Date(), Entries: []LogEntry{e}})
	}
	return groups
}

// DayTotalMinutes sums the parsed durations of the given entries
func DayTotalMinutes(entries []LogEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Minutes()
	}
	return total
}

// FilterByExactDate returns entries on the calendar date of day, in their original order
func FilterByExactDate(logs []LogEntry, day time.Time) []LogEntry {
	target := timeutil.Date(day)
	var matched []LogEntry
	for _, e := range logs {
		if e.Date().Equal(target) {
			matched = append(matched, e)
		}
	}
	return matched
}

// DistinctPrefixedTickets returns one ticket text per distinct ticket key among
// entries whose ticket starts with prefix. The key is the text before the first
// space or bracket. When a key is mentioned more than once, the first variant
// carrying a "[Q]" marker wins; otherwise the first one seen is kept.
// Results are in first-seen key order.
func DistinctPrefixedTickets(logs []LogEntry, prefix string) []string {
	var order []string
	chosen := make(map[string]string)

	for _, e := range logs {
		if !strings.HasPrefix(e.Ticket, prefix) {
			continue
		}
		key := TicketKey(e.Ticket)
		current, seen := chosen[key]
		switch {
		case !seen:
			order = append(order, key)
			chosen[key] = e.Ticket
		case !strings.Contains(current, qMarker) && strings.Contains(e.Ticket, qMarker):
			chosen[key] = e.Ticket
		}
	}

	tickets := make([]string, 0, len(order))
	for _, key := range order {
		tickets = append(tickets, chosen[key])
	}
	return tickets
}

// FindByID returns the index of the entry with the given id, or -1.
// A unique id prefix is accepted so ids can be abbreviated on the command line.
func FindByID(logs []LogEntry, id string) int {
	if id == "" {
		return -1
	}
	for i, e := range logs {
		if e.ID == id {
			return i
		}
	}

	found := -1
	for i, e := range logs {
		if strings.HasPrefix(e.ID, id) {
			if found != -1 {
				return -1 // ambiguous
			}
			found = i
		}
	}
	return found
}

// TicketKey extracts the ticket identifier before the first space or bracket
func TicketKey(ticket string) string {
	if i := strings.IndexAny(ticket, " ["); i >= 0 {
		return ticket[:i]
	}
	return ticket
}

