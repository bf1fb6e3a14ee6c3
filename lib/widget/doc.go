// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

// Package widget implements keyboard interaction patterns for
// terminal UIs: accordion, menu bar, tree view, combobox, data grid,
// and modal dialog. Each widget is a single tab stop with an internal
// roving cursor, implements focus.Element, and announces its state
// transitions through an optional announcer.
//
// Widgets are not bubbletea models themselves. The host model owns
// them as pointers, routes key events to whichever widget holds
// focus, and asks each for its rendered view. Pointer identity
// matters: the same widget value attaches to the focus scope and
// receives the key events, so state never diverges between the two.
//
// Data flow for a typical host Update:
//
//	key event ─▶ scope.RouteKey (active trap, if any)
//	          └▶ focused widget's HandleKey
//	          └▶ host-global bindings (quit, pane switching)
package widget
