// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestCommandError_Category(t *testing.T) {
	tests := []struct {
		name     string
		err      *CommandError
		category ErrorCategory
	}{
		{"validation", Validation("bad input"), CategoryValidation},
		{"not found", NotFound("no such topic"), CategoryNotFound},
		{"internal", Internal("read failed"), CategoryInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.Category != test.category {
				t.Errorf("Category = %q, want %q", test.err.Category, test.category)
			}
		})
	}
}

func TestCommandError_UnwrapPreservesChain(t *testing.T) {
	sentinel := errors.New("underlying")
	wrapped := Internal("loading session: %w", sentinel)

	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel through CommandError")
	}

	var commandError *CommandError
	outer := fmt.Errorf("outer context: %w", wrapped)
	if !errors.As(outer, &commandError) {
		t.Fatal("errors.As should find CommandError through an outer wrap")
	}
	if commandError.Category != CategoryInternal {
		t.Errorf("Category = %q, want %q", commandError.Category, CategoryInternal)
	}
}

func TestCommandError_WithHint(t *testing.T) {
	err := NotFound("unknown theme %q", "solarized").
		WithHint("run 'tact themes' to list available themes")

	if got := HintOf(err); got != "run 'tact themes' to list available themes" {
		t.Errorf("HintOf = %q", got)
	}

	// The hint stays out of the error text.
	if want := `unknown theme "solarized"`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestHintOf_NoHint(t *testing.T) {
	if got := HintOf(errors.New("plain")); got != "" {
		t.Errorf("HintOf(plain error) = %q, want empty", got)
	}
	if got := HintOf(Validation("no hint attached")); got != "" {
		t.Errorf("HintOf(unhinted CommandError) = %q, want empty", got)
	}
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}
	if err.ExitCode() != 3 {
		t.Errorf("ExitCode() = %d, want 3", err.ExitCode())
	}

	// Main discovers the code through the anonymous interface check.
	var anyErr error = err
	coder, ok := anyErr.(interface{ ExitCode() int })
	if !ok {
		t.Fatal("ExitError should satisfy the ExitCode interface")
	}
	if coder.ExitCode() != 3 {
		t.Errorf("interface ExitCode() = %d, want 3", coder.ExitCode())
	}
}
