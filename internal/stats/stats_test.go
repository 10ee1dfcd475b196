package stats

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xolan/blogger/internal/entry"
)

// Helper function to create test times with specific dates
func makeTime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

// Helper function to create an entry
func makeEntry(ts time.Time, ticket, duration string, status map[string]bool) entry.LogEntry {
	if status == nil {
		status = map[string]bool{}
	}
	return entry.LogEntry{
		Timestamp: entry.NewTimestamp(ts),
		Ticket:    ticket,
		Duration:  duration,
		Status:    status,
	}
}

func civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dateStrings(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("02.01"))
	}
	return out
}

var testTypes = []entry.StatusType{{Name: "q", Prefix: "QI-"}, {Name: "jira"}}

// 15.01.2025 is a Wednesday
var today = makeTime(2025, time.January, 15, 16, 0)

func TestBuildReport_NoLogs(t *testing.T) {
	report := BuildReport(nil, testTypes, today)

	if report.Empty != EmptyNoLogs {
		t.Errorf("Empty = %v, expected EmptyNoLogs", report.Empty)
	}
	if !report.IsEmpty() {
		t.Error("IsEmpty() = false, expected true")
	}
	if report.Empty.Message() == "" {
		t.Error("expected an informational message")
	}
}

func TestBuildReport_WindowBoundary(t *testing.T) {
	logs := []entry.LogEntry{
		makeEntry(makeTime(2025, time.January, 1, 9, 0), "too old", "1h", nil),  // today - 14
		makeEntry(makeTime(2025, time.January, 2, 9, 0), "oldest", "1h", nil),   // today - 13
		makeEntry(makeTime(2025, time.January, 16, 9, 0), "future", "1h", nil),  // tomorrow
	}

	report := BuildReport(logs, testTypes, today)

	if diff := cmp.Diff([]string{"02.01"}, dateStrings(report.Dates)); diff != "" {
		t.Errorf("Dates mismatch (-want +got):\n%s", diff)
	}
	if len(report.Entries) != 1 || report.Entries[0].Ticket != "oldest" {
		t.Errorf("unexpected entries: %v", report.Entries)
	}
}

func TestBuildReport_OnlyOutsideWindow(t *testing.T) {
	logs := []entry.LogEntry{
		makeEntry(makeTime(2024, time.December, 2, 9, 0), "old", "1h", nil),
	}

	report := BuildReport(logs, testTypes, today)

	if report.Empty != EmptyNoLogsInWindow {
		t.Errorf("Empty = %v, expected EmptyNoLogsInWindow", report.Empty)
	}
}

func TestBuildReport_WeekendOnly(t *testing.T) {
	logs := []entry.LogEntry{
		makeEntry(makeTime(2025, time.January, 11, 9, 0), "saturday", "2h", nil),
		makeEntry(makeTime(2025, time.January, 12, 9, 0), "sunday", "2h", nil),
	}

	report := BuildReport(logs, testTypes, today)

	if report.Empty != EmptyNoLogsInWindow {
		t.Errorf("Empty = %v, expected EmptyNoLogsInWindow", report.Empty)
	}
}

func TestBuildReport_ExcludesWeekends(t *testing.T) {
	logs := []entry.LogEntry{
		makeEntry(makeTime(2025, time.January, 10, 9, 0), "friday", "1h", nil),
		makeEntry(makeTime(2025, time.January, 11, 9, 0), "saturday", "5h", nil),
		makeEntry(makeTime(2025, time.January, 13, 9, 0), "monday", "2h", nil),
	}

	report := BuildReport(logs, testTypes, today)

	if diff := cmp.Diff([]string{"13.01", "10.01"}, dateStrings(report.Dates)); diff != "" {
		t.Errorf("Dates mismatch (-want +got):\n%s", diff)
	}
	if report.Statistics.TotalMinutes != 180 {
		t.Errorf("TotalMinutes = %d, expected 180", report.Statistics.TotalMinutes)
	}
}

func TestBuildReport_AtMostTenWorkdays(t *testing.T) {
	var logs []entry.LogEntry
	for day := 2; day <= 15; day++ {
		logs = append(logs, makeEntry(makeTime(2025, time.January, day, 9, 0), "daily", "1h", nil))
	}

	report := BuildReport(logs, testTypes, today)

	// 02.01 to 15.01 holds exactly ten weekdays
	expected := []string{"15.01", "14.01", "13.01", "10.01", "09.01", "08.01", "07.01", "06.01", "03.01", "02.01"}
	if diff := cmp.Diff(expected, dateStrings(report.Dates)); diff != "" {
		t.Errorf("Dates mismatch (-want +got):\n%s", diff)
	}
	if len(report.Entries) != 10 {
		t.Errorf("len(Entries) = %d, expected 10", len(report.Entries))
	}
	if report.Statistics.AverageMinutesPerDay != 60 {
		t.Errorf("AverageMinutesPerDay = %f, expected 60", report.Statistics.AverageMinutesPerDay)
	}
}

func TestBuildReport_CompletionAndIncomplete(t *testing.T) {
	logs := []entry.LogEntry{
		makeEntry(makeTime(2025, time.January, 14, 9, 0), "QI-2 later", "1h", map[string]bool{"q": false, "jira": true}),
		makeEntry(makeTime(2025, time.January, 13, 9, 0), "QI-1 earlier", "1h", map[string]bool{"q": false}),
		makeEntry(makeTime(2025, time.January, 15, 9, 0), "QI-3 done", "1h", map[string]bool{"q": true, "jira": true}),
		makeEntry(makeTime(2025, time.January, 15, 10, 0), "QI-4 open", "1h", nil),
	}

	report := BuildReport(logs, testTypes, today)

	expected := []Completion{
		{StatusType: "q", Completed: 1, Total: 4, Percentage: 25},
		{StatusType: "jira", Completed: 2, Total: 4, Percentage: 50},
	}
	if diff := cmp.Diff(expected, report.Completion); diff != "" {
		t.Errorf("Completion mismatch (-want +got):\n%s", diff)
	}

	var qOpen []string
	for _, e := range report.Incomplete[0].Entries {
		qOpen = append(qOpen, e.Ticket)
	}
	if diff := cmp.Diff([]string{"QI-1 earlier", "QI-2 later", "QI-4 open"}, qOpen); diff != "" {
		t.Errorf("incomplete q mismatch (-want +got):\n%s", diff)
	}
	if report.Incomplete[1].StatusType != "jira" || len(report.Incomplete[1].Entries) != 2 {
		t.Errorf("unexpected incomplete jira: %+v", report.Incomplete[1])
	}
}

func TestBuildReport_Charts(t *testing.T) {
	logs := []entry.LogEntry{
		makeEntry(makeTime(2025, time.January, 15, 9, 0), "a", "4h", nil),
		makeEntry(makeTime(2025, time.January, 15, 13, 0), "b", "4h", nil),
		makeEntry(makeTime(2025, time.January, 14, 9, 0), "c", "1h 30m", nil),
		makeEntry(makeTime(2025, time.January, 13, 9, 0), "d", "ongoing", nil),
	}

	report := BuildReport(logs, testTypes, today)

	minutes := report.Minutes
	if minutes.Max != 480 {
		t.Errorf("Minutes.Max = %d, expected 480", minutes.Max)
	}
	var lengths []int
	for _, b := range minutes.Bars {
		lengths = append(lengths, b.Length)
	}
	// 90 * 50 / 480 = 9.375
	if diff := cmp.Diff([]int{50, 9, 0}, lengths); diff != "" {
		t.Errorf("minute bar lengths mismatch (-want +got):\n%s", diff)
	}
	if !minutes.Bars[0].IsToday || minutes.Bars[1].IsToday {
		t.Error("only the first bar should be flagged as today")
	}

	var counts []int
	for _, b := range report.Count.Bars {
		counts = append(counts, b.Value)
	}
	if diff := cmp.Diff([]int{2, 1, 1}, counts); diff != "" {
		t.Errorf("count values mismatch (-want +got):\n%s", diff)
	}
	if report.Count.Bars[1].Length != 25 {
		t.Errorf("count bar length = %d, expected 25", report.Count.Bars[1].Length)
	}
}

func TestBuildReport_ZeroMaxMinutes(t *testing.T) {
	logs := []entry.LogEntry{
		makeEntry(makeTime(2025, time.January, 15, 9, 0), "a", "ongoing", nil),
		makeEntry(makeTime(2025, time.January, 14, 9, 0), "b", "ongoing", nil),
	}

	report := BuildReport(logs, testTypes, today)

	if report.Minutes.Max != 0 {
		t.Errorf("Minutes.Max = %d, expected 0", report.Minutes.Max)
	}
	for _, b := range report.Minutes.Bars {
		if b.Length != 0 {
			t.Errorf("bar for %s has length %d, expected 0", b.Date.Format("02.01"), b.Length)
		}
	}
}

func TestBuildChart_LargeValues(t *testing.T) {
	dates := []time.Time{
		civil(2025, time.January, 15),
		civil(2025, time.January, 14),
		civil(2025, time.January, 13),
	}
	values := map[time.Time]int{
		dates[0]: math.MaxInt64 / 4,
		dates[1]: math.MaxInt64 / 8,
		dates[2]: 60,
	}

	chart := BuildChart(dates, values, today)

	var lengths []int
	for _, b := range chart.Bars {
		lengths = append(lengths, b.Length)
	}
	if diff := cmp.Diff([]int{50, 25, 0}, lengths); diff != "" {
		t.Errorf("bar lengths mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReport_OversizedDurationIgnored(t *testing.T) {
	logs := []entry.LogEntry{
		makeEntry(makeTime(2025, time.January, 15, 9, 0), "a", "200000000000000000m", nil),
		makeEntry(makeTime(2025, time.January, 14, 9, 0), "b", "1h", nil),
	}

	report := BuildReport(logs, testTypes, today)

	if report.Minutes.Max != 60 {
		t.Errorf("Minutes.Max = %d, expected 60", report.Minutes.Max)
	}
	for _, b := range report.Minutes.Bars {
		if b.Length < 0 || b.Length > ChartWidth {
			t.Errorf("bar for %s has length %d, outside [0, %d]", b.Date.Format("02.01"), b.Length, ChartWidth)
		}
	}
}

func TestBuildChart_Empty(t *testing.T) {
	chart := BuildChart(nil, nil, civil(2025, time.January, 15))
	if chart.Max != 0 || len(chart.Bars) != 0 {
		t.Errorf("unexpected chart: %+v", chart)
	}
}

func TestCalculateCompletion_NoEntries(t *testing.T) {
	got := CalculateCompletion(nil, testTypes)
	for _, c := range got {
		if c.Total != 0 || c.Percentage != 0 {
			t.Errorf("expected zero completion, got %+v", c)
		}
	}
	if len(got) != 2 {
		t.Errorf("len = %d, expected 2", len(got))
	}
}

func TestCalculateStatistics(t *testing.T) {
	entries := []entry.LogEntry{
		makeEntry(makeTime(2025, time.January, 13, 9, 0), "a", "2h", nil),
		makeEntry(makeTime(2025, time.January, 13, 14, 0), "b", "1h", nil),
		makeEntry(makeTime(2025, time.January, 16, 9, 0), "c", "1h", nil),
		makeEntry(makeTime(2025, time.January, 20, 9, 0), "outside", "5h", nil),
	}

	stats := CalculateStatistics(entries, civil(2025, time.January, 13), civil(2025, time.January, 19))

	if stats.TotalMinutes != 240 {
		t.Errorf("TotalMinutes = %d, expected 240", stats.TotalMinutes)
	}
	if stats.EntryCount != 3 {
		t.Errorf("EntryCount = %d, expected 3", stats.EntryCount)
	}
	if stats.DaysWithEntries != 2 {
		t.Errorf("DaysWithEntries = %d, expected 2", stats.DaysWithEntries)
	}
	expectedAvg := 240.0 / 7.0
	if stats.AverageMinutesPerDay != expectedAvg {
		t.Errorf("AverageMinutesPerDay = %f, expected %f", stats.AverageMinutesPerDay, expectedAvg)
	}
}

func TestCalculateStatistics_EmptyEntries(t *testing.T) {
	stats := CalculateStatistics(nil, civil(2025, time.January, 13), civil(2025, time.January, 19))
	if stats != (Statistics{}) {
		t.Errorf("expected zero statistics, got %+v", stats)
	}
}

func TestCalculateTicketBreakdown(t *testing.T) {
	entries := []entry.LogEntry{
		makeEntry(makeTime(2025, time.January, 13, 9, 0), "QI-1 review", "1h", nil),
		makeEntry(makeTime(2025, time.January, 13, 10, 0), "QI-2 deploy", "3h", nil),
		makeEntry(makeTime(2025, time.January, 14, 9, 0), "QI-1 [Q] fix", "30m", nil),
		makeEntry(makeTime(2025, time.January, 14, 9, 0), "", "15m", nil),
	}

	expected := []TicketBreakdown{
		{Ticket: "QI-2", TotalMinutes: 180, EntryCount: 1},
		{Ticket: "QI-1", TotalMinutes: 90, EntryCount: 2},
		{Ticket: "(no ticket)", TotalMinutes: 15, EntryCount: 1},
	}
	if diff := cmp.Diff(expected, CalculateTicketBreakdown(entries)); diff != "" {
		t.Errorf("CalculateTicketBreakdown mismatch (-want +got):\n%s", diff)
	}
}
