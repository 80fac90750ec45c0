package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetupFiltersByLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Setup(&buf, "warn")
	slog.Info("hidden")
	slog.Warn("shown", "friend", "Clark")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "Clark") {
		t.Errorf("expected warn line with attrs, got %q", out)
	}
}

func TestSetupFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "splitr.log")
	closer, err := SetupFile(path, "debug")
	if err != nil {
		t.Fatalf("SetupFile failed: %v", err)
	}
	slog.Debug("bill split", "delta", 30)
	closer.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(b), "bill split") {
		t.Errorf("expected log line in file, got %q", b)
	}
	if strings.Contains(string(b), "\x1b[") {
		t.Errorf("file output should not be colored: %q", b)
	}
}
