package timeutil

import (
	"testing"
	"time"
)

// Helper function to create test times with specific dates
func makeTime(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.Local)
}

func TestDate_StripsTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
	}{
		{"midnight", makeTime(2025, time.January, 15, 0, 0, 0)},
		{"noon", makeTime(2025, time.January, 15, 12, 0, 0)},
		{"end of day", makeTime(2025, time.January, 15, 23, 59, 59)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date(tt.input)
			want := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
			if !got.Equal(want) {
				t.Errorf("Date(%v) = %v, expected %v", tt.input, got, want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		a, b     time.Time
		expected int
	}{
		{"same day", makeTime(2025, time.May, 1, 8, 0, 0), makeTime(2025, time.May, 1, 22, 0, 0), 0},
		{"next day late to early", makeTime(2025, time.May, 1, 23, 0, 0), makeTime(2025, time.May, 2, 1, 0, 0), 1},
		{"two weeks", makeTime(2025, time.April, 30, 0, 0, 0), makeTime(2025, time.May, 14, 0, 0, 0), 14},
		{"backwards", makeTime(2025, time.April, 30, 0, 0, 0), makeTime(2025, time.April, 20, 0, 0, 0), -10},
		{"across DST change", makeTime(2025, time.March, 29, 12, 0, 0), makeTime(2025, time.March, 31, 12, 0, 0), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.expected {
				t.Errorf("DaysBetween(%v, %v) = %d, expected %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	start := makeTime(2025, time.December, 30, 15, 0, 0)
	got := AddDays(start, 3)
	want := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddDays = %v, expected %v", got, want)
	}
}

func TestIsWorkday(t *testing.T) {
	// 2025-01-06 is a Monday
	monday := makeTime(2025, time.January, 6, 10, 0, 0)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		expected := i < 5
		if got := IsWorkday(day); got != expected {
			t.Errorf("IsWorkday(%s) = %v, expected %v", day.Weekday(), got, expected)
		}
	}
}

func TestSameDay(t *testing.T) {
	if !SameDay(makeTime(2025, time.May, 1, 0, 0, 0), makeTime(2025, time.May, 1, 23, 59, 59)) {
		t.Error("expected same day")
	}
	if SameDay(makeTime(2025, time.May, 1, 23, 59, 59), makeTime(2025, time.May, 2, 0, 0, 0)) {
		t.Error("expected different days")
	}
}

func TestIsInRange(t *testing.T) {
	start := makeTime(2025, time.January, 10, 0, 0, 0)
	end := makeTime(2025, time.January, 12, 0, 0, 0)

	tests := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{"before start", makeTime(2025, time.January, 9, 23, 59, 0), false},
		{"on start", makeTime(2025, time.January, 10, 8, 0, 0), true},
		{"late on end day", makeTime(2025, time.January, 12, 23, 0, 0), true},
		{"after end", makeTime(2025, time.January, 13, 0, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInRange(tt.input, start, end); got != tt.expected {
				t.Errorf("IsInRange(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
