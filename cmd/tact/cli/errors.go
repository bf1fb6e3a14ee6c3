// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies command errors. The category names why a
// command failed independently of the message text, so tests can
// assert on failure class and main can shape its output.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing required arguments, wrong argument count, unparseable
	// values. The caller should fix the invocation and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// unknown guide topic, unknown theme name. Retrying with the same
	// input will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal indicates an unexpected error: I/O failures,
	// parse errors on data the program produced itself.
	CategoryInternal ErrorCategory = "internal"
)

// CommandError is a categorized error returned by command Run
// functions. It wraps an inner error, preserving the chain for
// errors.Is and errors.As, and optionally carries a recovery hint
// that main prints under the error message.
//
// Use the category constructors (Validation, NotFound, Internal)
// rather than constructing CommandError directly.
type CommandError struct {
	// Category classifies the failure.
	Category ErrorCategory

	// Hint, when non-empty, is a recovery suggestion printed under
	// the error message.
	Hint string

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The hint is not
// included; main prints it as a separate line.
func (e *CommandError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the CommandError wrapper.
func (e *CommandError) Unwrap() error { return e.Err }

// WithHint attaches a recovery suggestion and returns the error, so
// constructors chain: Validation("...").WithHint("...").
func (e *CommandError) WithHint(format string, args ...any) *CommandError {
	e.Hint = fmt.Sprintf(format, args...)
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure or I/O error.
func Internal(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// HintOf returns the recovery hint attached to err, or "" when the
// chain carries none.
func HintOf(err error) string {
	var commandError *CommandError
	if errors.As(err, &commandError) {
		return commandError.Hint
	}
	return ""
}
