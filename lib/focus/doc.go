// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

// Package focus implements keyboard focus management for terminal
// user interfaces: an explicit-ownership focus scope, ordered focus
// rings with wrap-around navigation, and focus traps for modal
// regions.
//
// A Scope stands in for the browser document: widgets attach to it as
// Elements, exactly one element holds focus at a time, and key events
// are offered to the scope before ordinary widget dispatch. A Trap
// confines Tab navigation to one Container while a modal is shown and
// restores the prior focus on release:
//
//	trap := focus.NewTrap(scope)
//	if err := trap.Activate(dialog, scope.Current()); err != nil { ... }
//	// in Update: if scope.RouteKey(msg) { return model, nil }
//	trap.Deactivate() // restores focus to the pre-modal element
//
// Nesting (a confirmation inside a dialog) goes through Stack, which
// suspends and resumes traps in LIFO order. Everything in this
// package is synchronous and event-loop-bound: no goroutines, no
// locks, no hidden global state.
package focus
