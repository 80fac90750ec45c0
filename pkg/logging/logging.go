// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup(os.Stderr, "info")           // CLI: colored, to stderr
//	logging.SetupFile("/tmp/splitr.log", "")   // TUI: plain, to a file
//	logging.Discard()                          // TUI without a log file
//
// Levels: debug, info, warn, error (default: info).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint handler writing to w as the default slog logger.
func Setup(w io.Writer, level string) {
	install(w, ParseLevel(level), false)
}

// SetupFile appends plain (uncolored) tint output to the file at path.
// The returned closer must be called on exit.
func SetupFile(path, level string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	install(f, ParseLevel(level), true)
	return f, nil
}

// Discard drops all log output. The TUI uses it when no log file is set,
// since it owns the terminal.
func Discard() {
	slog.SetDefault(slog.New(tint.NewHandler(io.Discard, &tint.Options{Level: slog.LevelError})))
}

func install(w io.Writer, level slog.Level, noColor bool) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}),
	))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
