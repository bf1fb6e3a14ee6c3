// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

// Package gallery is the interactive showcase behind `tact gallery`:
// every widget on one screen, wired to a shared focus scope, a live
// announcer, and the configuration and session layers. It is the proof
// that the pieces interoperate, and the fastest way to feel how the
// keyboard patterns behave.
//
// Tab and Shift+Tab move between panes, one stop per widget. Arrow
// keys move inside the focused widget. F10 jumps to the menu bar, F2
// opens the dialog demo: a focus trap over three buttons that returns
// focus to wherever it was when the dialog closes. The status line
// under the panes is the announcement live region; the help line below
// it names the bindings that matter right now.
//
// Key exports:
//   - Model: the bubbletea model. New builds it from a Config; the
//     host restores persisted state with RestoreSession and collects
//     it again with SessionState after the program exits.
//   - ConfigReloadMsg: sent into the running program by the config
//     file watcher. Applies the new theme, key bindings, and
//     announcement behavior without a restart.
package gallery
