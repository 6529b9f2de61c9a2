package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return path
}

func TestInit_WritesToFile(t *testing.T) {
	path := setupTestLogger(t)

	WithComponent("test").Info("hello", "key", "value")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello") {
		t.Errorf("log file missing message, got: %s", content)
	}
	if !strings.Contains(content, "component=test") {
		t.Errorf("log file missing component attribute, got: %s", content)
	}
	if Path() != path {
		t.Errorf("Path() = %q, want %q", Path(), path)
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	path := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	if Path() != path {
		t.Errorf("second Init should not change path, got %q", Path())
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Init("/nonexistent-dir/for/sure/panta.log"); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestSetDebug_FiltersLevels(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	InitWriter(&buf)

	WithComponent("test").Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug message should be filtered at info level")
	}

	SetDebug(true)
	WithComponent("test").Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug message should be written when debug enabled, got: %s", buf.String())
	}
}

func TestClose_AllowsReinit(t *testing.T) {
	setupTestLogger(t)
	Close()

	var buf bytes.Buffer
	InitWriter(&buf)
	Logger().Info("after close")
	if !strings.Contains(buf.String(), "after close") {
		t.Errorf("expected output after reinit, got: %s", buf.String())
	}
}
