// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/tact-project/tact/cmd/tact/cli"
	"github.com/tact-project/tact/lib/announce"
	"github.com/tact-project/tact/lib/config"
	"github.com/tact-project/tact/lib/theme"
)

// loadConfig loads and validates the configuration, returning it with
// the effective file path (needed by the gallery's reload watcher).
// Precedence: the --config flag, then TACT_CONFIG, then the default
// location. A missing file at the default location yields defaults; a
// missing file the user named is an error.
func loadConfig(flagPath string) (*config.Config, string, error) {
	var cfg *config.Config
	var err error

	effectivePath := flagPath
	if effectivePath == "" {
		effectivePath = os.Getenv("TACT_CONFIG")
	}
	if effectivePath == "" {
		effectivePath = config.DefaultPath()
	}

	if flagPath != "" {
		cfg, err = config.LoadFile(flagPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, "", cli.Validation("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", cli.Validation("config %s: %w", effectivePath, err).
			WithHint("fix the reported fields, or move the file aside to run with defaults")
	}

	return cfg, effectivePath, nil
}

// resolveTheme picks the palette: an explicit --theme flag wins, then
// the config file, then terminal detection (NO_COLOR and terminals
// without color support get the mono theme).
func resolveTheme(flagName string, cfg *config.Config) (theme.Theme, error) {
	name := flagName
	if name == "" {
		name = cfg.Theme
	}
	if name == "" {
		return theme.Detect(termenv.ColorProfile(), termenv.EnvNoColor()), nil
	}

	palette, known := theme.ByName(name)
	if !known {
		return theme.Theme{}, cli.NotFound("unknown theme %q", name).
			WithHint("run 'tact themes' to list the built-in themes")
	}
	return palette, nil
}

// buildTUILogger routes log records away from stderr for the duration
// of a Bubble Tea program: the alt-screen owns the terminal, so text
// written to stderr would corrupt the display. Warnings and errors
// surface on the status line via the announce handler; when the
// config names a log file, a JSON handler captures records there too.
//
// The caller must call SetProgram on the returned handler once the
// program exists, and the cleanup function when the program is done.
func buildTUILogger(cfg *config.Config) (*announce.Handler, *slog.Logger, func(), error) {
	announceHandler := announce.NewHandler(cfg.LogLevel())
	cleanup := func() {}

	var handler slog.Handler = announceHandler
	if cfg.Log.Path != "" {
		file, err := os.OpenFile(cfg.Log.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, nil, cli.Internal("opening log file %s: %w", cfg.Log.Path, err)
		}
		fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: cfg.LogLevel()})
		handler = fanoutHandler{announceHandler, fileHandler}
		cleanup = func() { file.Close() }
	}

	return announceHandler, slog.New(handler), cleanup, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
