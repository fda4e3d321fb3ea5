package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the user config dir and working directory at empty temp dirs.
func isolate(t *testing.T) (userDir, workDir string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	for _, k := range []string{"TADA_THEME", "TADA_NO_COLOR", "TADA_EXPORT_DIR", "TADA_LOG_LEVEL", "TADA_LOG_FORMAT", "TADA_LOG_FILE"} {
		t.Setenv(k, "")
	}
	workDir = t.TempDir()
	t.Chdir(workDir)
	return filepath.Join(home, "tada"), workDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func load(t *testing.T, args ...string) (*Config, *flag.FlagSet, error) {
	t.Helper()
	fs := flag.NewFlagSet("tada", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := Load(fs, args)
	return cfg, fs, err
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, fs, err := load(t, "plain")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != DefaultTheme || cfg.ReportTitle != DefaultReportTitle {
		t.Errorf("defaults: got theme=%q title=%q", cfg.Theme, cfg.ReportTitle)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log defaults: got %+v", cfg.Log)
	}
	if len(cfg.Sources) != 0 {
		t.Errorf("Sources: got %v, want none", cfg.Sources)
	}
	if got := fs.Args(); len(got) != 1 || got[0] != "plain" {
		t.Errorf("positional args: got %v", got)
	}
}

func TestLoadPrecedence(t *testing.T) {
	userDir, _ := isolate(t)
	writeFile(t, filepath.Join(userDir, "tada.toml"), `
theme = "neon"
report_title = "Mine"
export_dir = "/tmp/user"

[log]
level = "debug"
`)
	writeFile(t, "tada.toml", `
theme = "mono"
`)

	cfg, _, err := load(t)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("project file should override user file: theme=%q", cfg.Theme)
	}
	if cfg.ReportTitle != "Mine" || cfg.Log.Level != "debug" {
		t.Errorf("user keys lost: %+v", cfg)
	}
	if len(cfg.Sources) != 2 {
		t.Errorf("Sources: got %v", cfg.Sources)
	}

	t.Setenv("TADA_THEME", "classic")
	t.Setenv("TADA_LOG_LEVEL", "warn")
	cfg, _, err = load(t, "--log-level", "error", "--plain")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "classic" {
		t.Errorf("env should override files: theme=%q", cfg.Theme)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("flag should override env: level=%q", cfg.Log.Level)
	}
	if !cfg.Plain {
		t.Error("--plain not applied")
	}
	if cfg.ExportDir != "/tmp/user" {
		t.Errorf("ExportDir: got %q", cfg.ExportDir)
	}
}

func TestExplicitConfigSkipsDiscovery(t *testing.T) {
	isolate(t)
	writeFile(t, "tada.toml", `theme = "mono"`)
	explicit := filepath.Join(t.TempDir(), "other.toml")
	writeFile(t, explicit, `theme = "neon"`)

	cfg, _, err := load(t, "--config", explicit)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "neon" || cfg.File != explicit {
		t.Errorf("got theme=%q file=%q", cfg.Theme, cfg.File)
	}
	if len(cfg.Sources) != 1 || cfg.Sources[0] != explicit {
		t.Errorf("Sources: got %v", cfg.Sources)
	}
}

func TestSchemaRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
	}{
		{"unknown theme", `theme = "solarized"`, "theme"},
		{"unknown key", `colour = true`, ""},
		{"bad log format", "[log]\nformat = \"xml\"", "log.format"},
		{"wrong type", `no_color = "yes"`, "no_color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			writeFile(t, "tada.toml", tt.content)
			_, _, err := load(t)
			if err == nil {
				t.Fatal("expected error")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			if ve.Path != tt.path {
				t.Errorf("path: got %q, want %q", ve.Path, tt.path)
			}
			if !strings.Contains(err.Error(), "tada.toml") {
				t.Errorf("error should name the file: %v", err)
			}
		})
	}
}

func TestMalformedToml(t *testing.T) {
	isolate(t)
	writeFile(t, "tada.toml", `theme = `)
	if _, _, err := load(t); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvAndFlagValidation(t *testing.T) {
	isolate(t)
	if _, _, err := load(t, "--theme", "nope"); err == nil {
		t.Error("expected invalid theme error from flag")
	}
	t.Setenv("TADA_NO_COLOR", "maybe")
	if _, _, err := load(t); err == nil {
		t.Error("expected TADA_NO_COLOR parse error")
	}
	t.Setenv("TADA_NO_COLOR", "true")
	cfg, _, err := load(t)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.NoColor {
		t.Error("TADA_NO_COLOR=true not applied")
	}
}

func TestUnknownFlag(t *testing.T) {
	isolate(t)
	if _, _, err := load(t, "--colour"); err == nil {
		t.Fatal("expected flag error")
	}
}
