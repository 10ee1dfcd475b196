package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xolan/blogger/internal/config"
	"github.com/xolan/blogger/internal/storage"
)

// fixedNow is Wednesday 15.01.2025 16:00 local time
var fixedNow = time.Date(2025, time.January, 15, 16, 0, 0, 0, time.Local)

// newTestServices creates services over a temp data dir with a settable clock
func newTestServices(t *testing.T) (*Services, *time.Time) {
	t.Helper()
	tmpDir := t.TempDir()
	now := fixedNow
	svcs := NewServicesWithPaths(
		storage.PathsFor(tmpDir),
		filepath.Join(tmpDir, config.ConfigFile),
		config.DefaultConfig(),
		func() time.Time { return now },
	)
	return svcs, &now
}

// writeFile writes raw content to a storage file
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestNewServicesWithPaths(t *testing.T) {
	services, _ := newTestServices(t)

	if services.Log == nil {
		t.Error("expected non-nil Log service")
	}
	if services.Timer == nil {
		t.Error("expected non-nil Timer service")
	}
	if services.Sprint == nil {
		t.Error("expected non-nil Sprint service")
	}
	if services.Stats == nil {
		t.Error("expected non-nil Stats service")
	}
	if services.Records == nil {
		t.Error("expected non-nil Records service")
	}
	if services.Config == nil {
		t.Error("expected non-nil Config service")
	}
}

func TestNewServicesWithPaths_NilClock(t *testing.T) {
	tmpDir := t.TempDir()
	services := NewServicesWithPaths(storage.PathsFor(tmpDir), "", config.DefaultConfig(), nil)
	if services.Log.now == nil {
		t.Fatal("expected a default clock")
	}
	if services.Now().IsZero() {
		t.Error("expected Now() to read the wall clock")
	}
}

func TestServices_Now(t *testing.T) {
	services, now := newTestServices(t)
	*now = fixedNow.Add(time.Hour)

	if !services.Now().Equal(fixedNow.Add(time.Hour)) {
		t.Errorf("Now() = %v, expected the injected clock", services.Now())
	}
}

func TestServices_Health(t *testing.T) {
	services, _ := newTestServices(t)
	writeFile(t, services.Paths().Logs, `[{"timestamp": "01.01.2025 10:00:00", "ticket": "ok"}, {"timestamp": 1}]`)

	health, err := services.Health()
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if len(health) != 3 {
		t.Fatalf("expected 3 health reports, got %d", len(health))
	}
	if health[0].ValidRecords != 1 || health[0].CorruptedRecords != 1 {
		t.Errorf("logs health = %+v", health[0])
	}
	if health[1].Exists || health[2].Exists {
		t.Error("scripts and links files should not exist yet")
	}
}
