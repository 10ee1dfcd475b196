package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/config"
	"github.com/xolan/blogger/internal/service"
	"github.com/xolan/blogger/internal/storage"
)

// Wednesday afternoon
var fixedNow = time.Date(2025, time.January, 15, 16, 0, 0, 0, time.Local)

type testEnv struct {
	deps     *cli.Deps
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	exitCode int
	now      time.Time
}

func (e *testEnv) reset() {
	e.stdout.Reset()
	e.stderr.Reset()
	e.exitCode = 0
}

func setupTestDeps(t *testing.T) *testEnv {
	t.Helper()
	tmpDir := t.TempDir()

	env := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		now:    fixedNow,
	}
	services := service.NewServicesWithPaths(
		storage.PathsFor(tmpDir),
		filepath.Join(tmpDir, config.ConfigFile),
		config.DefaultConfig(),
		func() time.Time { return env.now },
	)
	env.deps = &cli.Deps{
		Stdout:   env.stdout,
		Stderr:   env.stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { env.exitCode = code },
		Services: services,
	}
	return env
}

// mustCreate adds an entry through the service and returns its id
func mustCreate(t *testing.T, env *testEnv, ticket, duration string) string {
	t.Helper()
	e, err := env.deps.Services.Log.Create(ticket, "", duration, nil)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	return e.ID
}

// writeLogs replaces the logs file with raw content
func writeLogs(t *testing.T, env *testEnv, content string) {
	t.Helper()
	if err := os.WriteFile(env.deps.Services.Paths().Logs, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write logs: %v", err)
	}
}
