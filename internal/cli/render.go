package cli

import (
	"fmt"
	"strings"

	"github.com/xolan/blogger/internal/entry"
	"github.com/xolan/blogger/internal/sprint"
	"github.com/xolan/blogger/internal/stats"
	"github.com/xolan/blogger/internal/timeutil"
)

const ruleWidth = 60

// Rule returns a horizontal separator line
func Rule(char string) string {
	return strings.Repeat(char, ruleWidth)
}

// RenderDayGroups renders entries grouped by day, oldest day first
func RenderDayGroups(groups []entry.DayGroup, types []entry.StatusType) []string {
	var lines []string
	for i, g := range groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("%s  (%s)", FormatDay(g.Date), FormatMinutes(g.TotalMinutes())))
		lines = append(lines, Rule("-"))
		for _, e := range g.Entries {
			lines = append(lines, RenderEntry(e, types)...)
		}
	}
	return lines
}

// RenderEntry renders an entry with its description and numbered subtasks
func RenderEntry(e entry.LogEntry, types []entry.StatusType) []string {
	lines := []string{FormatEntryLine(e, types)}
	if e.Description != "" {
		lines = append(lines, "    "+e.Description)
	}
	for i, st := range e.Subtasks {
		lines = append(lines, fmt.Sprintf("    %d. %s", i+1, st))
	}
	return lines
}

// RenderStatistics renders the summary numbers of a statistics block
func RenderStatistics(s stats.Statistics) []string {
	return []string{
		fmt.Sprintf("Total time:      %s", FormatMinutes(s.TotalMinutes)),
		fmt.Sprintf("Average/day:     %s", FormatHours(s.AverageMinutesPerDay)),
		fmt.Sprintf("Entries:         %d %s", s.EntryCount, Pluralize("entry", s.EntryCount)),
		fmt.Sprintf("Days logged:     %d %s", s.DaysWithEntries, Pluralize("day", s.DaysWithEntries)),
	}
}

// RenderStatsReport renders the full statistics report.
// An empty report renders as its informational message.
func RenderStatsReport(report stats.Report) []string {
	if report.IsEmpty() {
		return []string{report.Empty.Message()}
	}

	first, last := report.Dates[len(report.Dates)-1], report.Dates[0]
	lines := []string{
		fmt.Sprintf("Statistics for the last %d %s (%s)",
			len(report.Dates), Pluralize("workday", len(report.Dates)), FormatDateRange(first, last)),
		Rule("="),
	}
	lines = append(lines, RenderStatistics(report.Statistics)...)

	if len(report.Completion) > 0 {
		lines = append(lines, "", "Completion:")
		for _, c := range report.Completion {
			lines = append(lines, fmt.Sprintf("  %-10s %3d/%-3d %5.1f%%", c.StatusType, c.Completed, c.Total, c.Percentage))
		}
	}

	for _, inc := range report.Incomplete {
		lines = append(lines, "", fmt.Sprintf("Incomplete (%s):", inc.StatusType))
		if len(inc.Entries) == 0 {
			lines = append(lines, "  none")
			continue
		}
		for _, e := range inc.Entries {
			lines = append(lines, fmt.Sprintf("  %s  %s", timeutil.FormatDate(e.Date()), e.Ticket))
		}
	}

	if len(report.Tickets) > 0 {
		lines = append(lines, "", "By ticket:", Rule("-"))
		for _, t := range report.Tickets {
			lines = append(lines, fmt.Sprintf("  %-28s  %10s  (%d %s)",
				t.Ticket, FormatMinutes(t.TotalMinutes), t.EntryCount, Pluralize("entry", t.EntryCount)))
		}
	}

	lines = append(lines, "", "Time per day:")
	lines = append(lines, indent(RenderBarChart(report.Minutes, FormatMinutes))...)
	lines = append(lines, "", "Entries per day:")
	lines = append(lines, indent(RenderBarChart(report.Count, CountLabel))...)
	return lines
}

// RenderSprintHeader renders the title line of a sprint
func RenderSprintHeader(b sprint.Bucket, current bool) string {
	header := fmt.Sprintf("Sprint %d  %s  %s", b.Index, FormatDateRange(b.Start, b.End), FormatMinutes(b.TotalMinutes))
	if current {
		header += "  (current)"
	}
	return header
}

// RenderSprint renders one sprint with its statistics and day groups
func RenderSprint(b sprint.Bucket, s stats.Statistics, types []entry.StatusType) []string {
	lines := []string{RenderSprintHeader(b, true), Rule("=")}
	lines = append(lines, RenderStatistics(s)...)
	lines = append(lines, "")
	if b.IsEmpty() {
		return append(lines, "No logs in this sprint")
	}
	return append(lines, RenderDayGroups(b.Days, types)...)
}

// RenderSprintHistory renders every sprint bucket with its per-day totals.
// Buckets without logs are shown as empty.
func RenderSprintHistory(buckets []sprint.Bucket, current int) []string {
	if len(buckets) == 0 {
		return []string{"No logs available"}
	}

	var lines []string
	for i, b := range buckets {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, RenderSprintHeader(b, b.Index == current), Rule("-"))
		if b.IsEmpty() {
			lines = append(lines, "  (no logs)")
			continue
		}
		for _, day := range b.Days {
			tickets := make([]string, 0, len(day.Entries))
			for _, e := range day.Entries {
				tickets = append(tickets, entry.TicketKey(e.Ticket))
			}
			lines = append(lines, fmt.Sprintf("  %s  %8s  %s",
				FormatDay(day.Date), FormatMinutes(day.TotalMinutes()), strings.Join(tickets, ", ")))
		}
	}
	return lines
}

func indent(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "  " + l
	}
	return out
}
