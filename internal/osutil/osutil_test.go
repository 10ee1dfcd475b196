package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// MockPathProvider is a mock implementation for testing.
type MockPathProvider struct {
	UserConfigDirFn func() (string, error)
	UserHomeDirFn   func() (string, error)
	MkdirAllFn      func(path string, perm os.FileMode) error
}

func (m *MockPathProvider) UserConfigDir() (string, error) {
	if m.UserConfigDirFn != nil {
		return m.UserConfigDirFn()
	}
	return "", nil
}

func (m *MockPathProvider) UserHomeDir() (string, error) {
	if m.UserHomeDirFn != nil {
		return m.UserHomeDirFn()
	}
	return "", nil
}

func (m *MockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return nil
}

func TestDefaultPathProvider_MkdirAll(t *testing.T) {
	p := DefaultPathProvider{}
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	if err := p.MkdirAll(testDir, 0755); err != nil {
		t.Fatalf("MkdirAll returned error: %v", err)
	}

	info, err := os.Stat(testDir)
	if err != nil {
		t.Fatalf("Failed to stat created directory: %v", err)
	}
	if !info.IsDir() {
		t.Error("MkdirAll did not create a directory")
	}
}

func TestSetProvider(t *testing.T) {
	defer ResetProvider()

	mock := &MockPathProvider{}
	SetProvider(mock)
	if Provider != mock {
		t.Error("SetProvider did not set the provider")
	}

	ResetProvider()
	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Error("ResetProvider did not restore DefaultPathProvider")
	}
}

func TestAppDir(t *testing.T) {
	defer ResetProvider()
	tmpDir := t.TempDir()
	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return tmpDir, nil },
		MkdirAllFn:      os.MkdirAll,
	})

	dir, err := AppDir("blogger")
	if err != nil {
		t.Fatalf("AppDir returned error: %v", err)
	}
	if dir != filepath.Join(tmpDir, "blogger") {
		t.Errorf("AppDir = %q, expected %q", dir, filepath.Join(tmpDir, "blogger"))
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("AppDir did not create the directory: %v", err)
	}
}

func TestAppDir_Errors(t *testing.T) {
	defer ResetProvider()

	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return "", errors.New("no config dir") },
	})
	if _, err := AppDir("blogger"); err == nil {
		t.Error("expected error when UserConfigDir fails")
	}

	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return "/tmp", nil },
		MkdirAllFn:      func(string, os.FileMode) error { return os.ErrPermission },
	})
	if _, err := AppDir("blogger"); !errors.Is(err, os.ErrPermission) {
		t.Errorf("expected permission error, got %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	defer ResetProvider()
	SetProvider(&MockPathProvider{
		UserHomeDirFn: func() (string, error) { return "/home/me", nil },
	})

	tests := []struct {
		input    string
		expected string
	}{
		{"~", "/home/me"},
		{"~/logs", "/home/me/logs"},
		{"/var/data", "/var/data"},
		{"~other/x", "~other/x"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := ExpandHome(tt.input)
		if err != nil {
			t.Fatalf("ExpandHome(%q) error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
