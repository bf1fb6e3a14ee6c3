// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearTactEnv neutralizes the TACT_* variables so tests observe file
// values rather than whatever the developer's shell carries.
func clearTactEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TACT_CONFIG", "")
	t.Setenv("TACT_THEME", "")
	t.Setenv("TACT_REDUCE_MOTION", "")
	t.Setenv("TACT_LOG_LEVEL", "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Theme != "" {
		t.Errorf("expected empty theme (terminal detection), got %q", cfg.Theme)
	}
	if cfg.Announce.VisibleSeconds != 5 {
		t.Errorf("expected visible_seconds=5, got %d", cfg.Announce.VisibleSeconds)
	}
	if !cfg.Gallery.RestoreSession {
		t.Error("expected restore_session=true")
	}
	wantSuffix := filepath.Join("tact", "session.cbor")
	if !strings.HasSuffix(cfg.Gallery.SessionPath, wantSuffix) {
		t.Errorf("session_path = %q, expected %q suffix", cfg.Gallery.SessionPath, wantSuffix)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %q", cfg.Log.Level)
	}
}

func TestLoadFile(t *testing.T) {
	clearTactEnv(t)

	path := writeConfig(t, `
theme: high-contrast
reduce_motion: true

announce:
  visible_seconds: 2

gallery:
  session_path: /custom/session.cbor
  restore_session: false

keys:
  activate: ["enter"]
  dismiss: ["esc", "q"]

log:
  level: debug
  path: /var/log/tact.log
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Theme != "high-contrast" {
		t.Errorf("theme = %q, expected high-contrast", cfg.Theme)
	}
	if !cfg.ReduceMotion {
		t.Error("expected reduce_motion=true")
	}
	if cfg.Announce.VisibleSeconds != 2 {
		t.Errorf("visible_seconds = %d, expected 2", cfg.Announce.VisibleSeconds)
	}
	if cfg.Gallery.SessionPath != "/custom/session.cbor" {
		t.Errorf("session_path = %q, expected /custom/session.cbor", cfg.Gallery.SessionPath)
	}
	if cfg.Gallery.RestoreSession {
		t.Error("expected restore_session=false")
	}
	if len(cfg.Keys["dismiss"]) != 2 || cfg.Keys["dismiss"][0] != "esc" {
		t.Errorf("keys.dismiss = %v, expected [esc q]", cfg.Keys["dismiss"])
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, expected debug", cfg.Log.Level)
	}
	if cfg.Log.Path != "/var/log/tact.log" {
		t.Errorf("log path = %q, expected /var/log/tact.log", cfg.Log.Path)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoad_UsesTactConfig(t *testing.T) {
	clearTactEnv(t)
	path := writeConfig(t, "theme: mono\n")
	t.Setenv("TACT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("theme = %q, expected mono", cfg.Theme)
	}
}

func TestLoad_MissingDefaultIsNotError(t *testing.T) {
	clearTactEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.Announce.VisibleSeconds != 5 {
		t.Errorf("expected defaults, got visible_seconds=%d", cfg.Announce.VisibleSeconds)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	clearTactEnv(t)
	t.Setenv("TACT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing TACT_CONFIG file")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	clearTactEnv(t)
	path := writeConfig(t, `
theme: default
reduce_motion: false
log:
  level: info
`)

	t.Setenv("TACT_THEME", "mono")
	t.Setenv("TACT_REDUCE_MOTION", "true")
	t.Setenv("TACT_LOG_LEVEL", "error")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Theme != "mono" {
		t.Errorf("theme = %q, expected TACT_THEME override mono", cfg.Theme)
	}
	if !cfg.ReduceMotion {
		t.Error("expected TACT_REDUCE_MOTION override true")
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log level = %q, expected TACT_LOG_LEVEL override error", cfg.Log.Level)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/tact",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/tact",
		},
		{
			input:    "${TACT_ABSENT_VAR:-fallback}",
			vars:     map[string]string{},
			expected: "fallback",
		},
		{
			input:    "${PRESENT:-fallback}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestExpandPaths(t *testing.T) {
	clearTactEnv(t)
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_STATE_HOME", "")

	path := writeConfig(t, `
gallery:
  session_path: ${XDG_STATE_HOME:-~/.local/state}/tact/session.cbor
log:
  path: ~/logs/tact.log
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	wantSession := "/home/tester/.local/state/tact/session.cbor"
	if cfg.Gallery.SessionPath != wantSession {
		t.Errorf("session_path = %q, expected %q", cfg.Gallery.SessionPath, wantSession)
	}
	wantLog := "/home/tester/logs/tact.log"
	if cfg.Log.Path != wantLog {
		t.Errorf("log path = %q, expected %q", cfg.Log.Path, wantLog)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "explicit known theme",
			modify: func(c *Config) {
				c.Theme = "high-contrast"
			},
			wantErr: false,
		},
		{
			name: "unknown theme",
			modify: func(c *Config) {
				c.Theme = "solarized"
			},
			wantErr: true,
		},
		{
			name: "negative visible seconds",
			modify: func(c *Config) {
				c.Announce.VisibleSeconds = -1
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.Log.Level = "verbose"
			},
			wantErr: true,
		},
		{
			name: "empty key binding list",
			modify: func(c *Config) {
				c.Keys = map[string][]string{"activate": {}}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Theme = "solarized"
	cfg.Log.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	message := err.Error()
	if !strings.Contains(message, "solarized") {
		t.Errorf("error %q missing theme problem", message)
	}
	if !strings.Contains(message, "verbose") {
		t.Errorf("error %q missing log level problem", message)
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Log.Level = tt.level
		if got := cfg.LogLevel(); got != tt.expected {
			t.Errorf("LogLevel(%q) = %v, want %v", tt.level, got, tt.expected)
		}
	}
}

func TestVisibleDuration(t *testing.T) {
	cfg := Default()
	cfg.Announce.VisibleSeconds = 2
	if got := cfg.VisibleDuration(); got != 2*time.Second {
		t.Errorf("VisibleDuration = %v, want 2s", got)
	}

	cfg.Announce.VisibleSeconds = 0
	if got := cfg.VisibleDuration(); got != 0 {
		t.Errorf("VisibleDuration = %v, want 0 (announcer default)", got)
	}
}
