// Package config handles configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTheme       = "classic"
	DefaultReportTitle = "Todo List"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"

	userConfigName = "tada.toml"
)

// Config holds the full configuration for tada.
type Config struct {
	Theme       string    `toml:"theme"`
	NoColor     bool      `toml:"no_color"`
	ExportDir   string    `toml:"export_dir"`
	ReportTitle string    `toml:"report_title"`
	Log         LogConfig `toml:"log"`

	// Flag-only settings.
	Plain bool   `toml:"-"`
	Quiet bool   `toml:"-"`
	File  string `toml:"-"` // config file named by --config

	// Files that were read, in merge order.
	Sources []string `toml:"-"`
}

// LogConfig controls the console logger.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	File       string `toml:"file"`
	Timestamps bool   `toml:"timestamps"`
}

// flagValues mirrors the command-line flags before they are merged.
type flagValues struct {
	config, theme, exportDir         string
	logLevel, logFormat, logFile     string
	noColor, plain, quiet, timestamp bool
}

// register defines the flags on fs.
func (fv *flagValues) register(fs *flag.FlagSet) {
	fs.StringVar(&fv.config, "config", "", "path to a config file")
	fs.StringVar(&fv.theme, "theme", "", "color theme: classic, neon or mono")
	fs.StringVar(&fv.exportDir, "export-dir", "", "directory for PDF reports")
	fs.StringVar(&fv.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&fv.logFormat, "log-format", "", "log format: text, json, logfmt")
	fs.StringVar(&fv.logFile, "log-file", "", "write logs to this file")
	fs.BoolVar(&fv.timestamp, "log-timestamps", false, "include timestamps in logs")
	fs.BoolVar(&fv.noColor, "no-color", false, "disable colors")
	fs.BoolVar(&fv.plain, "plain", false, "use the line-oriented session instead of the table UI")
	fs.BoolVar(&fv.quiet, "quiet", false, "do not redraw the table after each change")
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.config/tada/tada.toml)
// 3. Project config file (tada.toml or .tada.toml in the current directory),
//    or the file named by --config instead of both
// 4. Environment variables (TADA_*)
// 5. CLI flags
//
// Positional arguments left after flag parsing are available from fs.Args().
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	var fv flagValues
	fv.register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := &Config{}
	setDefaults(cfg)

	if fv.config != "" {
		cfg.File = fv.config
		if err := loadConfigFile(cfg, fv.config); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", fv.config, err)
		}
	} else {
		if p := findUserConfigFile(); p != "" {
			if err := loadConfigFile(cfg, p); err != nil {
				return nil, fmt.Errorf("loading user config file %s: %w", p, err)
			}
		}
		if p := findProjectConfigFile(); p != "" {
			if err := loadConfigFile(cfg, p); err != nil {
				return nil, fmt.Errorf("loading project config file %s: %w", p, err)
			}
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	applyFlags(cfg, fs, &fv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.ReportTitle = DefaultReportTitle
	cfg.Log.Level = DefaultLogLevel
	cfg.Log.Format = DefaultLogFormat
}

// loadConfigFile validates a TOML file and merges the keys it sets into cfg.
func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := validateDocument(data); err != nil {
		return err
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	cfg.Sources = append(cfg.Sources, path)
	return nil
}

// loadFromEnv overrides config from TADA_* environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TADA_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TADA_NO_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TADA_NO_COLOR: %w", err)
		}
		cfg.NoColor = b
	}
	if v := os.Getenv("TADA_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TADA_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("TADA_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	return nil
}

// applyFlags copies only the flags that were set on the command line.
func applyFlags(cfg *Config, fs *flag.FlagSet, fv *flagValues) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = fv.theme
		case "export-dir":
			cfg.ExportDir = fv.exportDir
		case "log-level":
			cfg.Log.Level = fv.logLevel
		case "log-format":
			cfg.Log.Format = fv.logFormat
		case "log-file":
			cfg.Log.File = fv.logFile
		case "log-timestamps":
			cfg.Log.Timestamps = fv.timestamp
		case "no-color":
			cfg.NoColor = fv.noColor
		case "plain":
			cfg.Plain = fv.plain
		case "quiet":
			cfg.Quiet = fv.quiet
		}
	})
}

// Validate checks values that may come from the environment or flags,
// which bypass the file schema.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("invalid theme %q: must be classic, neon or mono", c.Theme)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if strings.TrimSpace(c.ReportTitle) == "" {
		return fmt.Errorf("report title must not be empty")
	}
	return nil
}

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	for _, name := range []string{"tada.toml", ".tada.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// findUserConfigFile looks for tada.toml in the OS config directory.
func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "tada", userConfigName)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
