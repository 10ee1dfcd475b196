package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShell_CreateLog(t *testing.T) {
	env := setupTestDeps(t, "1\nQI-5 shell\nwired up\n1h\nc\n\nn\n7\n")

	env.run(t)

	out := env.stdout.String()
	assertContains(t, out,
		"B-LOGGER",
		"1. Create new log",
		"7. Exit",
		"Enter your log here: ",
		"Update q status (x for ✗, c for ✓): ",
		"Update jira status",
		"Logged: QI-5 shell (1h)",
	)

	logs, _, err := env.services.Log.All()
	if err != nil {
		t.Fatalf("Failed to read entries: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(logs))
	}
	e := logs[0]
	if e.Description != "wired up" {
		t.Errorf("Expected description 'wired up', got %q", e.Description)
	}
	if !e.Status["q"] {
		t.Error("Expected q to be complete")
	}
	if e.Status["jira"] {
		t.Error("Expected jira to stay incomplete")
	}
	if env.exitCode != -1 {
		t.Errorf("Expected no exit, got code %d", env.exitCode)
	}
}

func TestShell_CreateLogWithSubtasks(t *testing.T) {
	env := setupTestDeps(t, "1\nQI-6\n\n30m\n\n\ny\nfirst\ny\nsecond\nn\n7\n")

	env.run(t)

	assertContains(t, env.stdout.String(),
		"Added subtask: first",
		"Added subtask: second",
		"Current subtasks:",
		"2. second",
	)
	logs, _, _ := env.services.Log.All()
	if len(logs) != 1 || len(logs[0].Subtasks) != 2 {
		t.Fatalf("Expected 1 entry with 2 subtasks, got %+v", logs)
	}
}

func TestShell_CreateLogEmptyTicket(t *testing.T) {
	env := setupTestDeps(t, "1\n\n\n\n7\n")

	env.run(t)

	assertContains(t, env.stderr.String(), "Failed to create log")
	logs, _, _ := env.services.Log.All()
	if len(logs) != 0 {
		t.Errorf("Expected no entries, got %d", len(logs))
	}
	if env.exitCode != -1 {
		t.Errorf("Expected the shell to keep running, got exit code %d", env.exitCode)
	}
}

func TestShell_ViewLogs(t *testing.T) {
	env := setupTestDeps(t, "2\n\n7\n")
	e := env.create(t, "QI-1 fix", "1h")
	if _, err := env.services.Log.AddSubtask(e.ID, "write test"); err != nil {
		t.Fatalf("Failed to add subtask: %v", err)
	}

	env.run(t)

	assertContains(t, env.stdout.String(),
		"Log History",
		"1. 15.01.2025 16:00:00 QI-1 fix (1h)",
		"└─ write test",
		"Press Enter to continue...",
	)
}

func TestShell_ViewLogsEmpty(t *testing.T) {
	env := setupTestDeps(t, "2\n\n7\n")

	env.run(t)

	assertContains(t, env.stdout.String(), "No logs available")
}

func TestShell_EditStatus(t *testing.T) {
	env := setupTestDeps(t, "3\n1\nc\nc\nn\n7\n")
	e := env.create(t, "QI-1", "1h")

	env.run(t)

	assertContains(t, env.stdout.String(), "Enter log number to edit (0 to cancel): ", "Current log: QI-1")
	updated, _ := env.services.Log.Get(e.ID)
	if !updated.Status["q"] || !updated.Status["jira"] {
		t.Errorf("Expected both status types complete, got %v", updated.Status)
	}
}

func TestShell_PickInvalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"not a number", "3\nabc\n7\n", "Invalid input"},
		{"out of range", "3\n5\n7\n", "No log number 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestDeps(t, tt.input)
			env.create(t, "QI-1", "1h")

			env.run(t)

			assertContains(t, env.stdout.String(), tt.expected)
		})
	}
}

func TestShell_DeleteLog(t *testing.T) {
	env := setupTestDeps(t, "4\n1\ny\n\n7\n")
	env.create(t, "QI-1", "1h")

	env.run(t)

	assertContains(t, env.stdout.String(), "Are you sure you want to delete log QI-1? (y/n): ", "Deleted: QI-1 (1h)")
	logs, _, _ := env.services.Log.All()
	if len(logs) != 0 {
		t.Errorf("Expected no entries, got %d", len(logs))
	}
}

func TestShell_DeleteLogDeclined(t *testing.T) {
	env := setupTestDeps(t, "4\n1\nn\n7\n")
	env.create(t, "QI-1", "1h")

	env.run(t)

	logs, _, _ := env.services.Log.All()
	if len(logs) != 1 {
		t.Errorf("Expected the entry to be kept, got %d entries", len(logs))
	}
}

func TestShell_StatsAndSprint(t *testing.T) {
	env := setupTestDeps(t, "5\n\n6\n\n7\n")
	env.create(t, "QI-1", "2h")

	env.run(t)

	assertContains(t, env.stdout.String(), "Statistics for the last 1 workday", "(current)")
}

func TestShell_InvalidChoiceAndQuit(t *testing.T) {
	env := setupTestDeps(t, "9\nquit\n")

	env.run(t)

	assertContains(t, env.stdout.String(), "Invalid choice '9'")
	if env.exitCode != -1 {
		t.Errorf("Expected no exit, got code %d", env.exitCode)
	}
}

func TestShell_EndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"at the menu", ""},
		{"while creating a log", "1\nQI-1\n"},
		{"while paused", "2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestDeps(t, tt.input)

			env.run(t)

			if env.exitCode != -1 {
				t.Errorf("Expected a clean exit, got code %d (stderr: %s)", env.exitCode, env.stderr.String())
			}
			logs, _, _ := env.services.Log.All()
			if len(logs) != 0 {
				t.Errorf("Expected no entries, got %d", len(logs))
			}
		})
	}
}

func TestFindMenuItem(t *testing.T) {
	tests := []struct {
		choice string
		label  string
		ok     bool
	}{
		{"1", "Create new log", true},
		{"6", "Sprint", true},
		{"7", "Exit", true},
		{"q", "Exit", true},
		{"EXIT", "Exit", true},
		{"8", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			item, ok := findMenuItem(tt.choice)
			if ok != tt.ok {
				t.Fatalf("findMenuItem(%q) ok = %v, expected %v", tt.choice, ok, tt.ok)
			}
			if item.label != tt.label {
				t.Errorf("findMenuItem(%q) = %q, expected %q", tt.choice, item.label, tt.label)
			}
		})
	}
}

func TestLoadBanner(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "banner.txt")
	if err := os.WriteFile(path, []byte("  ____\n |  _ \\\n"), 0644); err != nil {
		t.Fatalf("Failed to write banner: %v", err)
	}

	if got := loadBanner(""); got != DefaultBanner {
		t.Errorf("loadBanner(\"\") = %q, expected the default banner", got)
	}
	if got := loadBanner(filepath.Join(dir, "missing.txt")); got != DefaultBanner {
		t.Errorf("Expected the default banner for a missing file, got %q", got)
	}
	if got := loadBanner(path); got != "  ____\n |  _ \\" {
		t.Errorf("loadBanner(%q) = %q", path, got)
	}
}

func TestScannerPrompter(t *testing.T) {
	env := setupTestDeps(t, "")
	p := NewScannerPrompter(strings.NewReader("hello\n"), env.stdout)

	line, err := p.Prompt("> ")
	if err != nil || line != "hello" {
		t.Errorf("Prompt() = %q, %v; expected \"hello\", nil", line, err)
	}
	if _, err := p.Prompt("> "); err == nil {
		t.Error("Expected an error at the end of input")
	}
	if got := env.stdout.String(); got != "> > " {
		t.Errorf("Expected both prompts to be written, got %q", got)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
}
