// Package logger writes leveled, structured log lines to a file so that the
// TUI owns the terminal exclusively.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	// LevelDebug is for verbose debugging information
	LevelDebug LogLevel = iota
	// LevelInfo is for general operational information
	LevelInfo
	// LevelWarn is for warning conditions
	LevelWarn
	// LevelError is for error conditions
	LevelError
)

func (l LogLevel) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var (
	slogLogger   *slog.Logger
	levelVar     = new(slog.LevelVar)
	logFile      *os.File
	mu           sync.Mutex
	logPath      string
	initDone     bool
	currentLevel LogLevel = LevelInfo
)

// DefaultLogPath is the default log file for the TUI process
const DefaultLogPath = "/tmp/docdraft-debug.log"

// logGlob matches every log file docdraft may have written
const logGlob = "/tmp/docdraft-*.log"

// SetLevel sets the minimum log level to output
func SetLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
	levelVar.Set(level.toSlogLevel())
}

// SetDebug enables debug level logging
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelInfo)
	}
}

// Init initializes the logger with a custom path. If not called, the
// default path is used on first use.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	install(path, f)
	return nil
}

// InitWriter routes log output to w. Used by tests and by the headless CLI
// commands when --debug is combined with --log-stderr.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	levelVar.Set(currentLevel.toSlogLevel())
	slogLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
}

// install must be called with mu held.
func install(path string, f *os.File) {
	logPath = path
	logFile = f
	levelVar.Set(currentLevel.toSlogLevel())
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
	slogLogger.Info("Logger initialized", "path", path)
}

func ensureInit() {
	if initDone {
		return
	}
	f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file %s: %v\n", DefaultLogPath, err)
		initDone = true
		return
	}
	install(DefaultLogPath, f)
}

func logWithLevel(level slog.Level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil {
		return
	}
	if !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message to the log file
func Debug(format string, args ...interface{}) {
	logWithLevel(slog.LevelDebug, format, args...)
}

// Info writes an info message to the log file
func Info(format string, args ...interface{}) {
	logWithLevel(slog.LevelInfo, format, args...)
}

// Warn writes a warning message to the log file
func Warn(format string, args ...interface{}) {
	logWithLevel(slog.LevelWarn, format, args...)
}

// Error writes an error message to the log file
func Error(format string, args ...interface{}) {
	logWithLevel(slog.LevelError, format, args...)
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
}

// Reset resets the logger state, allowing reinitialization.
// This is primarily for testing purposes.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	initDone = false
	logPath = ""
	slogLogger = nil
	currentLevel = LevelInfo
	levelVar = new(slog.LevelVar)
}

// Path returns the file the logger writes to, or "" when logging to a writer.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// LogFiles lists the docdraft log files currently in /tmp
func LogFiles() ([]string, error) {
	return filepath.Glob(logGlob)
}

// ClearLogs removes all docdraft log files from /tmp
func ClearLogs() (int, error) {
	matches, err := LogFiles()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range matches {
		if err := os.Remove(p); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}
	return count, nil
}

// WithComponent returns a slog.Logger with the component attribute pre-attached.
//
// Example:
//
//	log := logger.WithComponent("generation")
//	log.Info("provider call failed", "kind", kind, "error", err)
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slogLogger.With(slog.String("component", component))
}

// WithSession returns a slog.Logger with the session ID pre-attached.
func WithSession(sessionID int64) *slog.Logger {
	return WithComponent("session").With(slog.Int64("sessionID", sessionID))
}
