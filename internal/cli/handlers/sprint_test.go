package handlers

import (
	"strings"
	"testing"
	"time"
)

func TestShowCurrentSprint(t *testing.T) {
	env := setupTestDeps(t)
	env.now = time.Date(2025, time.May, 14, 10, 0, 0, 0, time.Local)
	mustCreate(t, env, "QI-4", "3h")

	ShowCurrentSprint(env.deps)

	out := env.stdout.String()
	for _, want := range []string{"Sprint 1  14.05.2025 - 27.05.2025  3h  (current)", "Total time:      3h", "QI-4 (3h)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestShowSprintHistory(t *testing.T) {
	env := setupTestDeps(t)
	env.now = time.Date(2025, time.May, 2, 10, 0, 0, 0, time.Local)
	mustCreate(t, env, "QI-1", "1h")
	env.now = time.Date(2025, time.May, 14, 10, 0, 0, 0, time.Local)
	mustCreate(t, env, "QI-2", "2h")

	ShowSprintHistory(env.deps)

	out := env.stdout.String()
	for _, want := range []string{
		"Sprints of 2 weeks starting 30.04.2025:",
		"Sprint 0  30.04.2025 - 13.05.2025  1h",
		"Sprint 1  14.05.2025 - 27.05.2025  2h  (current)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Sprint 0  30.04.2025 - 13.05.2025  1h  (current)") {
		t.Error("only the sprint containing today is current")
	}
}
