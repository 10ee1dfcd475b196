package handlers

import (
	"strings"
	"testing"
)

func TestValidateStorage_Healthy(t *testing.T) {
	env := setupTestDeps(t)
	mustCreate(t, env, "QI-1", "1h")

	ValidateStorage(env.deps)

	out := env.stdout.String()
	if !strings.Contains(out, "Valid records:     1") {
		t.Errorf("expected valid count, got:\n%s", out)
	}
	if !strings.Contains(out, "Not created yet") {
		t.Errorf("expected missing scripts file to be reported, got:\n%s", out)
	}
	if !strings.Contains(out, "Status: ✓ Storage files are healthy") {
		t.Errorf("expected healthy status, got:\n%s", out)
	}
}

func TestValidateStorage_Corrupted(t *testing.T) {
	env := setupTestDeps(t)
	writeLogs(t, env, `[{"timestamp": "15.01.2025 09:00:00", "ticket": "QI-1", "duration": "1h"}, "oops"]`)

	ValidateStorage(env.deps)

	if !strings.Contains(env.stdout.String(), "Corrupted records: 1") {
		t.Errorf("expected corrupted count, got:\n%s", env.stdout.String())
	}
	if !strings.Contains(env.stderr.String(), "Status: ⚠ Storage has 1 corrupted record") {
		t.Errorf("expected warning status, got %q", env.stderr.String())
	}
}
