// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the tact binary.
//
// The central type is [Command]: a named subcommand with optional
// nested [Command.Subcommands], a [pflag.FlagSet] factory, and a Run
// function that receives a context and a logger. Commands are
// assembled into a tree in cmd/tact/main.go and dispatched via
// [Command.Execute], which handles help flags, subcommand routing,
// flag parsing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework
// computes edit distance against all defined names and suggests the
// closest match within distance three. This is implemented in
// suggest.go.
//
// Run functions report failures as [CommandError] values built with
// the category constructors ([Validation], [NotFound], [Internal]),
// optionally carrying a recovery hint that main prints under the
// error message. A command that has already written its own output
// and only needs a non-zero exit status returns [ExitError] instead.
package cli
