// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package announce

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// Msg delivers a log record to the host model as an announcement.
// The model feeds it to its Announcer on receipt.
type Msg struct {
	Text     string
	Priority Priority
}

// Handler is a slog.Handler that turns log records into announcements
// delivered through a bubbletea program. Warnings and errors arrive
// assertive, informational records polite. Records below the
// configured level are dropped.
//
// Create the handler before the program exists and call SetProgram
// once tea.NewProgram has run. Records arriving before then are
// silently dropped. Handlers derived via WithAttrs/WithGroup share the
// program pointer, so one SetProgram call covers all of them.
type Handler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	groups  []string
}

// NewHandler creates a handler announcing records at or above level.
func NewHandler(level slog.Level) *Handler {
	return &Handler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the receiving program. Safe from any goroutine;
// propagates to every derived handler.
func (handler *Handler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled reports interest in records at the given level.
func (handler *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats the record as a one-line announcement and sends it.
func (handler *Handler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}

	var line strings.Builder
	line.WriteString(record.Message)

	var attrParts []string
	for _, attr := range handler.attrs {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
		return true
	})
	if len(attrParts) > 0 {
		line.WriteString(" (")
		line.WriteString(strings.Join(attrParts, ", "))
		line.WriteString(")")
	}

	priority := Polite
	if record.Level >= slog.LevelWarn {
		priority = Assertive
	}
	program.Send(Msg{Text: line.String(), Priority: priority})
	return nil
}

// WithAttrs returns a derived handler with the attributes appended.
func (handler *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		level:   handler.level,
		program: handler.program,
		attrs:   append(cloneSlice(handler.attrs), attrs...),
		groups:  cloneSlice(handler.groups),
	}
}

// WithGroup returns a derived handler with the group name appended.
func (handler *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		level:   handler.level,
		program: handler.program,
		attrs:   cloneSlice(handler.attrs),
		groups:  append(cloneSlice(handler.groups), name),
	}
}

// cloneSlice copies a slice so derived handlers never alias their
// parent's backing array.
func cloneSlice[T any](source []T) []T {
	if source == nil {
		return nil
	}
	result := make([]T, len(source))
	copy(result, source)
	return result
}
