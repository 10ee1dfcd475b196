package stats

import (
	"math"
	"sort"
	"time"

	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/timeutil"
)

const (
	// WindowDays is the calendar lookback of the report, today included
	WindowDays = 14
	// MaxWorkdays caps how many logged workdays the report covers
	MaxWorkdays = 10
	// ChartWidth is the length of the longest bar
	ChartWidth = 50
)

// EmptyReason tells why a report has no data
type EmptyReason int

const (
	NotEmpty EmptyReason = iota
	EmptyNoLogs
	EmptyNoLogsInWindow
)

// Message returns the informational text for an empty report
func (r EmptyReason) Message() string {
	switch r {
	case EmptyNoLogs:
		return "No logs available"
	case EmptyNoLogsInWindow:
		return "No logs in the last 10 workdays"
	}
	return ""
}

// Statistics contains aggregated statistics for a set of entries
type Statistics struct {
	TotalMinutes         int
	AverageMinutesPerDay float64
	EntryCount           int
	DaysWithEntries      int
}

// Completion is the completion ratio of one status type
type Completion struct {
	StatusType string
	Completed  int
	Total      int
	Percentage float64
}

// Incomplete lists the entries still open for one status type, oldest first
type Incomplete struct {
	StatusType string
	Entries    []entry.LogEntry
}

// TicketBreakdown contains statistics for a single ticket key
type TicketBreakdown struct {
	Ticket       string
	TotalMinutes int
	EntryCount   int
}

// Bar is one row of a horizontal bar chart
type Bar struct {
	Date    time.Time
	Value   int
	Length  int
	IsToday bool
}

// Chart is a horizontal bar chart over the report dates, newest first
type Chart struct {
	Max  int
	Bars []Bar
}

// Report is the statistics over the most recent logged workdays
type Report struct {
	Empty      EmptyReason
	Today      time.Time
	Dates      []time.Time
	Entries    []entry.LogEntry
	Statistics Statistics
	Completion []Completion
	Incomplete []Incomplete
	Tickets    []TicketBreakdown
	Minutes    Chart
	Count      Chart
}

// IsEmpty reports whether there is nothing to show
func (r Report) IsEmpty() bool {
	return r.Empty != NotEmpty
}

// BuildReport selects the logs of up to MaxWorkdays distinct weekdays within
// the last WindowDays calendar days (today - 13 through today) and computes
// completion, incomplete lists and per-day charts over them.
func BuildReport(logs []entry.LogEntry, types []entry.StatusType, today time.Time) Report {
	today = timeutil.Date(today)
	report := Report{Today: today}

	if len(logs) == 0 {
		report.Empty = EmptyNoLogs
		return report
	}

	windowStart := timeutil.AddDays(today, -(WindowDays - 1))
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, e := range logs {
		d := e.Date()
		if !timeutil.IsInRange(d, windowStart, today) || !timeutil.IsWorkday(d) || seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d)
	}

	if len(dates) == 0 {
		report.Empty = EmptyNoLogsInWindow
		return report
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})
	if len(dates) > MaxWorkdays {
		dates = dates[:MaxWorkdays]
	}
	report.Dates = dates

	selected := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		selected[d] = true
	}
	var entries []entry.LogEntry
	for _, e := range entry.SortedAscending(logs) {
		if selected[e.Date()] {
			entries = append(entries, e)
		}
	}
	report.Entries = entries

	report.Statistics = CalculateStatistics(entries, dates[len(dates)-1], dates[0])
	report.Statistics.AverageMinutesPerDay = float64(report.Statistics.TotalMinutes) / float64(len(dates))
	report.Completion = CalculateCompletion(entries, types)
	report.Incomplete = CollectIncomplete(entries, types)
	report.Tickets = CalculateTicketBreakdown(entries)

	minutes := make(map[time.Time]int, len(dates))
	counts := make(map[time.Time]int, len(dates))
	for _, e := range entries {
		minutes[e.Date()] += e.Minutes()
		counts[e.Date()]++
	}
	report.Minutes = BuildChart(dates, minutes, today)
	report.Count = BuildChart(dates, counts, today)

	return report
}

// CalculateStatistics computes statistics for entries within the given date range
func CalculateStatistics(entries []entry.LogEntry, start, end time.Time) Statistics {
	stats := Statistics{}

	if len(entries) == 0 {
		return stats
	}

	// Track which days have entries
	daysWithEntries := make(map[string]bool)

	for _, e := range entries {
		if !timeutil.IsInRange(e.Date(), start, end) {
			continue
		}
		stats.TotalMinutes += e.Minutes()
		stats.EntryCount++
		daysWithEntries[timeutil.DateKey(e.Date())] = true
	}

	stats.DaysWithEntries = len(daysWithEntries)

	// Average over every calendar day of the range
	totalDays := timeutil.DaysBetween(start, end) + 1
	if totalDays > 0 {
		stats.AverageMinutesPerDay = float64(stats.TotalMinutes) / float64(totalDays)
	}

	return stats
}

// CalculateCompletion returns (completed, total, percentage) per status type.
// The percentage is 0 when there are no entries.
func CalculateCompletion(entries []entry.LogEntry, types []entry.StatusType) []Completion {
	result := make([]Completion, 0, len(types))
	for _, st := range types {
		c := Completion{StatusType: st.Name, Total: len(entries)}
		for _, e := range entries {
			if e.IsComplete(st.Name) {
				c.Completed++
			}
		}
		if c.Total > 0 {
			c.Percentage = float64(c.Completed) / float64(c.Total) * 100
		}
		result = append(result, c)
	}
	return result
}

// CollectIncomplete returns, per status type, the entries not yet complete
// in ascending date order.
func CollectIncomplete(entries []entry.LogEntry, types []entry.StatusType) []Incomplete {
	sorted := entry.SortedAscending(entries)
	result := make([]Incomplete, 0, len(types))
	for _, st := range types {
		inc := Incomplete{StatusType: st.Name}
		for _, e := range sorted {
			if !e.IsComplete(st.Name) {
				inc.Entries = append(inc.Entries, e)
			}
		}
		result = append(result, inc)
	}
	return result
}

// CalculateTicketBreakdown groups entries by ticket key and returns breakdown sorted by total minutes
func CalculateTicketBreakdown(entries []entry.LogEntry) []TicketBreakdown {
	if len(entries) == 0 {
		return []TicketBreakdown{}
	}

	ticketMap := make(map[string]*TicketBreakdown)
	var order []string

	for _, e := range entries {
		key := entry.TicketKey(e.Ticket)
		if key == "" {
			key = "(no ticket)"
		}
		if _, exists := ticketMap[key]; !exists {
			ticketMap[key] = &TicketBreakdown{Ticket: key}
			order = append(order, key)
		}
		ticketMap[key].TotalMinutes += e.Minutes()
		ticketMap[key].EntryCount++
	}

	breakdowns := make([]TicketBreakdown, 0, len(order))
	for _, key := range order {
		breakdowns = append(breakdowns, *ticketMap[key])
	}

	// Sort by total minutes descending, first seen first on ties
	sort.SliceStable(breakdowns, func(i, j int) bool {
		return breakdowns[i].TotalMinutes > breakdowns[j].TotalMinutes
	})

	return breakdowns
}

// BuildChart creates one bar per date, in the given order.
// Bar length is value / max * ChartWidth rounded down; a zero max yields empty bars.
func BuildChart(dates []time.Time, values map[time.Time]int, today time.Time) Chart {
	chart := Chart{Bars: make([]Bar, 0, len(dates))}
	for _, d := range dates {
		if v := values[d]; v > chart.Max {
			chart.Max = v
		}
	}

	for _, d := range dates {
		v := values[d]
		bar := Bar{Date: d, Value: v, IsToday: timeutil.SameDay(d, today)}
		if chart.Max > 0 {
			bar.Length = barLength(v, chart.Max)
		}
		chart.Bars = append(chart.Bars, bar)
	}
	return chart
}

// barLength scales v against max, falling back to floating point when
// v * ChartWidth would overflow. The result stays within [0, ChartWidth].
func barLength(v, max int) int {
	var n int
	if v <= math.MaxInt/ChartWidth {
		n = v * ChartWidth / max
	} else {
		n = int(float64(v) / float64(max) * ChartWidth)
	}
	switch {
	case n < 0:
		return 0
	case n > ChartWidth:
		return ChartWidth
	}
	return n
}
