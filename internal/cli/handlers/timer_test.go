package handlers

import (
	"strings"
	"testing"
	"time"
)

func TestTimerLifecycle(t *testing.T) {
	env := setupTestDeps(t)

	ShowTimerStatus(env.deps)
	if !strings.Contains(env.stdout.String(), "No entry is ongoing") {
		t.Errorf("unexpected status: %q", env.stdout.String())
	}

	env.reset()
	StartTimer(env.deps, "QI-9 pairing")
	if !strings.Contains(env.stdout.String(), "Started: QI-9 pairing at 16:00") {
		t.Errorf("unexpected output: %q", env.stdout.String())
	}

	env.reset()
	StartTimer(env.deps, "QI-10")
	if env.exitCode != 1 {
		t.Error("expected a second start to fail")
	}
	if !strings.Contains(env.stderr.String(), "Current: QI-9 pairing (started 16:00)") {
		t.Errorf("expected current entry hint, got %q", env.stderr.String())
	}

	env.reset()
	env.now = fixedNow.Add(65 * time.Minute)
	ShowTimerStatus(env.deps)
	if !strings.Contains(env.stdout.String(), "Elapsed: 1h 05m") {
		t.Errorf("unexpected status: %q", env.stdout.String())
	}

	env.reset()
	StopTimer(env.deps)
	if !strings.Contains(env.stdout.String(), "Stopped: QI-9 pairing (1h 5m)") {
		t.Errorf("unexpected output: %q", env.stdout.String())
	}

	env.reset()
	StopTimer(env.deps)
	if env.exitCode != 1 || !strings.Contains(env.stderr.String(), "No entry is ongoing") {
		t.Errorf("expected stop without ongoing entry to fail, got %q", env.stderr.String())
	}
}
