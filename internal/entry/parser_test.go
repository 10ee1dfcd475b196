package entry

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"hours and minutes", "1h 30m", 90},
		{"minutes only", "45m", 45},
		{"bare integer is hours", "2", 120},
		{"ongoing", "ongoing", 0},
		{"ongoing uppercase", "  ONGOING ", 0},
		{"empty", "", 0},
		{"hours only", "8h", 480},
		{"compact", "1h30m", 90},
		{"minutes first", "30m 1h", 90},
		{"uppercase units", "2H 15M", 135},
		{"space before unit", "2 h 5 m", 125},
		{"legacy hours form", "3 hours", 180},
		{"long minute word", "20 minutes", 20},
		{"zero hours", "0h 45m", 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration(tt.input); got != tt.expected {
				t.Errorf("ParseDuration(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDuration_Lenient(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"garbage", "soon", 0},
		{"unknown unit", "3d", 0},
		{"decimal ignored", "1.5h", 0},
		{"decimal ignored keeps rest", "1.5h 20m", 20},
		{"unknown unit keeps rest", "2x 10m", 10},
		{"minutes beyond bound", "200000000000000000m", 0},
		{"hours beyond bound keeps rest", "100000000000000000h 20m", 20},
		{"not an int", "99999999999999999999h", 0},
		{"largest hours accepted", "35791394h", 35791394 * 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration(tt.input); got != tt.expected {
				t.Errorf("ParseDuration(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, ""},
		{480, "8h"},
		{90, "1h 30m"},
		{45, "0h 45m"},
		{60, "1h"},
		{1441, "24h 1m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.expected {
			t.Errorf("FormatDuration(%d) = %q, expected %q", tt.minutes, got, tt.expected)
		}
	}
}

func TestDuration_RoundTrip(t *testing.T) {
	for m := 0; m <= 3*24*60; m++ {
		if got := ParseDuration(FormatDuration(m)); got != m {
			t.Fatalf("ParseDuration(FormatDuration(%d)) = %d", m, got)
		}
	}
}

func TestIsOngoing(t *testing.T) {
	if !IsOngoing(" Ongoing") {
		t.Error("expected ongoing sentinel to match")
	}
	if IsOngoing("1h") || IsOngoing("") {
		t.Error("only the sentinel is ongoing")
	}
}
