package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/tada/internal/exitcode"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	for _, k := range []string{"TADA_THEME", "TADA_NO_COLOR", "TADA_EXPORT_DIR", "TADA_LOG_LEVEL", "TADA_LOG_FORMAT", "TADA_LOG_FILE"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func runMain(t *testing.T, input string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(input), &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestPlainSession(t *testing.T) {
	isolate(t)
	stdout, stderr, code := runMain(t, "add 2025-03-10 Write report\ndone 1\n", "--theme", "mono")
	if code != exitcode.Success {
		t.Fatalf("code %d, stderr %s", code, stderr)
	}
	if !strings.Contains(stdout, " 1. [x] Write report  2025-03-10  Yes") {
		t.Errorf("stdout:\n%s", stdout)
	}
}

func TestTuiModeNeedsTerminal(t *testing.T) {
	isolate(t)
	_, stderr, code := runMain(t, "", "tui")
	if code != exitcode.Usage {
		t.Errorf("code: got %d", code)
	}
	if !strings.Contains(stderr, "requires a terminal") {
		t.Errorf("stderr: %q", stderr)
	}
}

func TestVersionAndHelp(t *testing.T) {
	isolate(t)
	stdout, _, code := runMain(t, "", "version")
	if code != exitcode.Success || stdout != "tada "+version+"\n" {
		t.Errorf("version: %q (%d)", stdout, code)
	}
	stdout, _, code = runMain(t, "", "help")
	if code != exitcode.Success || !strings.Contains(stdout, "Usage:") {
		t.Errorf("help: %q (%d)", stdout, code)
	}
	_, _, code = runMain(t, "", "-h")
	if code != exitcode.Success {
		t.Errorf("-h: code %d", code)
	}
}

func TestUsageErrors(t *testing.T) {
	isolate(t)
	tests := [][]string{
		{"--theme", "solarized"},
		{"--nope"},
		{"dance"},
		{"plain", "extra"},
	}
	for _, args := range tests {
		if _, _, code := runMain(t, "", args...); code != exitcode.Usage {
			t.Errorf("%v: code %d, want %d", args, code, exitcode.Usage)
		}
	}
}

func TestProjectConfigAndLogFile(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "tada.log")
	cfg := "theme = \"mono\"\n\n[log]\nlevel = \"debug\"\nfile = \"" + logPath + "\"\n"
	if err := os.WriteFile(filepath.Join(dir, "tada.toml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout, stderr, code := runMain(t, "add 2025-03-10 Write report\n", "--quiet")
	if code != exitcode.Success {
		t.Fatalf("code %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "x added") {
		t.Errorf("mono theme not applied: %q", stdout)
	}
	if strings.Contains(stdout, "Todos") {
		t.Errorf("--quiet ignored: %q", stdout)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "task added") {
		t.Errorf("log file: %q", b)
	}
}
