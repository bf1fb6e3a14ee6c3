// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package focus

// Element is an interactive control reachable by sequential keyboard
// navigation. Widgets implement Element to participate in a Scope's
// tab order and in focus traps.
type Element interface {
	// ID returns the element's stable identifier within its scope.
	// IDs are caller-assigned; the focus core never generates them.
	ID() string

	// Focusable reports whether the element can currently take focus.
	// Disabled or hidden controls return false and are skipped when
	// a Ring snapshot is taken.
	Focusable() bool
}

// Container is a region holding focusable descendants, such as a
// dialog or a form pane. Descendants returns the candidate elements
// in presentation order at the moment of the call; trap activation
// snapshots this list and does not track later changes.
type Container interface {
	ID() string
	Descendants() []Element
}
