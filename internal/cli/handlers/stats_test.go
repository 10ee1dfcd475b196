package handlers

import (
	"strings"
	"testing"
)

func TestShowStats_NoLogs(t *testing.T) {
	env := setupTestDeps(t)

	ShowStats(env.deps)

	if got := strings.TrimSpace(env.stdout.String()); got != "No logs available" {
		t.Errorf("ShowStats() = %q, expected %q", got, "No logs available")
	}
	if env.exitCode != 0 {
		t.Error("an empty report is not an error")
	}
}

func TestShowStats(t *testing.T) {
	env := setupTestDeps(t)
	mustCreate(t, env, "QI-1", "2h")
	mustCreate(t, env, "QI-2", "ongoing")

	ShowStats(env.deps)

	out := env.stdout.String()
	for _, want := range []string{"Statistics for the last 1 workday", "Total time:      2h", "← today", "Entries per day:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
