// Package logger provides the file-backed structured logger used by every
// panta component. Output goes to a slog text handler so the terminal UI is
// never interleaved with log lines.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is where the main process logs when Init was not called.
const DefaultLogPath = "/tmp/panta-debug.log"

var (
	mu       sync.Mutex
	base     *slog.Logger
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	logPath  string
	debug    bool
)

// SetDebug toggles debug-level output. Safe to call before or after Init.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
	levelVar.Set(levelFor(enabled))
}

func levelFor(debugEnabled bool) slog.Level {
	if debugEnabled {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Init opens path for appending and routes all loggers to it.
// Calling Init again after a successful call is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if base != nil {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	install(f, path)
	base.Info("logger initialized", "path", path)
	return nil
}

// InitWriter routes all loggers to w. Used by tests and the demo renderer.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	install(w, "")
}

// install must be called with mu held.
func install(w io.Writer, path string) {
	if f, ok := w.(*os.File); ok {
		logFile = f
	}
	logPath = path
	levelVar.Set(levelFor(debug))
	base = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
}

// ensureInit must be called with mu held.
func ensureInit() {
	if base != nil {
		return
	}
	f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file %s: %v\n", DefaultLogPath, err)
		install(io.Discard, "")
		return
	}
	install(f, DefaultLogPath)
}

// WithComponent returns a logger tagged with the component attribute.
//
//	log := logger.WithComponent("nav")
//	log.Debug("route changed", "path", path, "mode", mode)
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	ensureInit()
	return base.With(slog.String("component", component))
}

// Logger returns the root logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	ensureInit()
	return base
}

// Path returns the file currently receiving log output, or "" for writers.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
}

// Reset drops all state so the next call reinitializes. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
	logPath = ""
	debug = false
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes the default log file. Returns the number of files removed.
func ClearLogs() (int, error) {
	if err := os.Remove(DefaultLogPath); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}
