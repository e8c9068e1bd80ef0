// Package logging wraps charmbracelet/log for structured logging.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output is the writer for log output (default: os.Stderr).
	Output io.Writer
	// Prefix is the component name prefix.
	Prefix string
	// ReportTimestamp adds timestamps to log entries.
	ReportTimestamp bool
}

// DefaultOptions returns the standard logger configuration, honoring the
// SYSWIZ_LOG_LEVEL environment override.
func DefaultOptions() Options {
	opts := Options{
		Level:           "info",
		Output:          os.Stderr,
		ReportTimestamp: true,
	}
	if level := os.Getenv("SYSWIZ_LOG_LEVEL"); level != "" {
		opts.Level = level
	}
	return opts
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a logger with the given options.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return log.NewWithOptions(out, log.Options{
		Level:           parseLevel(opts.Level),
		Prefix:          opts.Prefix,
		TimeFormat:      time.RFC3339,
		ReportTimestamp: opts.ReportTimestamp,
	})
}

// NewSessionLogger creates a file-backed logger for TUI sessions, where
// stderr belongs to the terminal renderer. Logs land in ~/.syswiz/syswiz.log.
func NewSessionLogger(level string) (*log.Logger, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".syswiz")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "syswiz.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, err
	}
	opts := DefaultOptions()
	if level != "" {
		opts.Level = level
	}
	opts.Output = f
	return New(opts), nil
}
