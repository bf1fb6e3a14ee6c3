// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tact-project/tact/lib/theme"
)

// Config is the whole tact configuration tree.
type Config struct {
	// Theme selects a palette by name (see lib/theme.Names). Empty
	// means detect from the terminal: color depth and NO_COLOR.
	Theme string `yaml:"theme"`

	// ReduceMotion holds announcements until the next one replaces
	// them instead of expiring them on a timer.
	ReduceMotion bool `yaml:"reduce_motion"`

	// Announce configures the live notice line.
	Announce AnnounceConfig `yaml:"announce"`

	// Gallery configures the widget gallery and its session file.
	Gallery GalleryConfig `yaml:"gallery"`

	// Keys rebinds actions by name. Each entry replaces the default
	// key list for that action. Names a view does not know are
	// ignored, so one file can carry bindings for every view.
	Keys map[string][]string `yaml:"keys"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log"`
}

// AnnounceConfig configures the announcement status line.
type AnnounceConfig struct {
	// VisibleSeconds is how long a notice stays on the line before
	// the next queued notice (or nothing) replaces it.
	VisibleSeconds int `yaml:"visible_seconds"`
}

// GalleryConfig configures the gallery subcommand.
type GalleryConfig struct {
	// SessionPath is where pane and widget state persists between
	// runs. Supports ${VAR} expansion.
	SessionPath string `yaml:"session_path"`

	// RestoreSession reapplies the persisted state on startup.
	RestoreSession bool `yaml:"restore_session"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, or error.
	Level string `yaml:"level"`

	// Path appends JSON log records to a file. Empty disables the
	// file handler; TUI runs still surface warnings on the status
	// line.
	Path string `yaml:"path"`
}

// Default returns the built-in configuration, the values in effect
// when no config file exists.
func Default() *Config {
	return &Config{
		Announce: AnnounceConfig{VisibleSeconds: 5},
		Gallery: GalleryConfig{
			SessionPath:    filepath.Join(stateHome(), "tact", "session.cbor"),
			RestoreSession: true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath returns the config file location used when TACT_CONFIG
// is not set: $XDG_CONFIG_HOME/tact/config.yaml, falling back to
// ~/.config.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tact", "config.yaml")
}

// stateHome resolves XDG_STATE_HOME with the ~/.local/state fallback.
func stateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state")
}

// Load loads the configuration from TACT_CONFIG when set, otherwise
// from DefaultPath. A missing file at the default location is not an
// error; a missing TACT_CONFIG file is, since the caller named it.
func Load() (*Config, error) {
	if path := os.Getenv("TACT_CONFIG"); path != "" {
		return LoadFile(path)
	}

	cfg, err := LoadFile(DefaultPath())
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		cfg.expandVariables()
		cfg.applyEnvironment()
		return cfg, nil
	}
	return cfg, err
}

// LoadFile loads configuration from a specific file. File values land
// on top of Default, then ${VAR} expansion runs on path fields, then
// the TACT_* environment overrides apply. Validation is left to the
// caller: a program that can continue on a bad file (the reload
// watcher) skips the update, one that cannot (startup) reports it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.expandVariables()
	cfg.applyEnvironment()
	return cfg, nil
}

// loadFile merges a single configuration file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// path fields, then a leading ~/ against the home directory. The home
// pass runs second so a fallback like ${XDG_STATE_HOME:-~/.local/state}
// resolves fully.
func (c *Config) expandVariables() {
	home, _ := os.UserHomeDir()
	vars := map[string]string{"HOME": home}

	c.Gallery.SessionPath = expandPath(c.Gallery.SessionPath, vars, home)
	c.Log.Path = expandPath(c.Log.Path, vars, home)
}

func expandPath(path string, vars map[string]string, home string) string {
	path = expandVars(path, vars)
	if home != "" && strings.HasPrefix(path, "~/") {
		path = filepath.Join(home, path[2:])
	}
	return path
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns. Provided
// vars win over the environment; an unset variable without a default
// expands to the empty string.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// applyEnvironment applies the TACT_* overrides on top of file values.
func (c *Config) applyEnvironment() {
	if value := os.Getenv("TACT_THEME"); value != "" {
		c.Theme = value
	}
	if value := os.Getenv("TACT_REDUCE_MOTION"); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			c.ReduceMotion = parsed
		}
	}
	if value := os.Getenv("TACT_LOG_LEVEL"); value != "" {
		c.Log.Level = value
	}
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Theme != "" {
		if _, known := theme.ByName(c.Theme); !known {
			errs = append(errs, fmt.Errorf("unknown theme %q (have: %s)",
				c.Theme, strings.Join(theme.Names(), ", ")))
		}
	}

	if c.Announce.VisibleSeconds < 0 {
		errs = append(errs, errors.New("announce.visible_seconds must not be negative"))
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	// An empty binding list would unbind the action entirely and
	// leave some widget unreachable from the keyboard. Refuse it
	// rather than let it pass silently.
	for action, bindings := range c.Keys {
		if len(bindings) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: at least one key required", action))
		}
	}

	return errors.Join(errs...)
}

// LogLevel returns the configured slog level. Unknown values fall
// back to Info; Validate reports them.
func (c *Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(value) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level must be debug, info, warn, or error (got %q)", value)
}

// VisibleDuration returns the announce window as a duration. Zero or
// negative selects the announcer's own default.
func (c *Config) VisibleDuration() time.Duration {
	return time.Duration(c.Announce.VisibleSeconds) * time.Second
}
