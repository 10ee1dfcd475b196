package service

import (
	"testing"

	"github.com/xolan/blogger/internal/stats"
)

func TestStatsService_Report(t *testing.T) {
	services, now := newTestServices(t)

	result, err := services.Stats.Report()
	if err != nil {
		t.Fatalf("Report() error: %v", err)
	}
	if result.Report.Empty != stats.EmptyNoLogs {
		t.Errorf("Empty = %v, expected EmptyNoLogs", result.Report.Empty)
	}

	_, _ = services.Log.Create("QI-1", "", "2h", nil)
	*now = fixedNow.AddDate(0, 0, -1)
	e, _ := services.Log.Create("QI-2", "", "1h", nil)
	_, _ = services.Log.SetStatus(e.ID, "q", true)
	*now = fixedNow

	result, err = services.Stats.Report()
	if err != nil {
		t.Fatalf("Report() error: %v", err)
	}
	report := result.Report
	if report.IsEmpty() {
		t.Fatal("expected a populated report")
	}
	if len(report.Dates) != 2 {
		t.Errorf("len(Dates) = %d, expected 2", len(report.Dates))
	}
	if report.Completion[0].Completed != 1 || report.Completion[0].Percentage != 50 {
		t.Errorf("q completion = %+v", report.Completion[0])
	}
	if !report.Minutes.Bars[0].IsToday || report.Minutes.Bars[0].Length != stats.ChartWidth {
		t.Errorf("today's bar = %+v", report.Minutes.Bars[0])
	}
}
