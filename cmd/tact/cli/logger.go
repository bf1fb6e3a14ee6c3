// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates a structured logger for command operations. When
// stderr is a terminal, records render through slog.TextHandler for
// human reading. When stderr is piped or redirected (CI, scripts),
// slog.JSONHandler keeps the output machine-parseable.
//
// TUI commands replace this logger with their own fan-out: writing
// text to stderr would corrupt the alt-screen display, so records go
// to the status line handler and an optional log file instead.
func NewLogger(level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
