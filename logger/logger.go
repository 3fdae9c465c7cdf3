// Package logger provides file-backed structured logging for the demo TUI.
// The interactive viewer owns the terminal, so logs go to a file instead of
// stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	log     *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init opens the log file and routes the package logger to it. Calling it
// again closes the previous file first.
func Init(path string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// Close flushes and closes the log file; logging becomes a no-op.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Get returns the package logger.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}
