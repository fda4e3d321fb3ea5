package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"bogus":   log.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Level: "warn", Format: "logfmt"})
	logger.Info("hidden")
	logger.Warn("shown", "rows", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "rows=2") {
		t.Errorf("logfmt output missing fields: %q", out)
	}
	if !strings.Contains(out, "prefix=tada") {
		t.Errorf("prefix missing: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tada.log")
	logger, closeFn, err := Open(config.LogConfig{Level: "info", Format: "text", File: path}, os.Stderr)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	logger.Info("task added", "index", 0)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "task added") {
		t.Errorf("log file content: %q", b)
	}
}

func TestOpenFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := Open(config.LogConfig{Level: "debug"}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	logger.Debug("to fallback")
	if !strings.Contains(buf.String(), "to fallback") {
		t.Errorf("fallback writer got %q", buf.String())
	}
}
