// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package focus

import (
	tea "github.com/charmbracelet/bubbletea"
)

// keyRouter receives key events while holding a Scope's key route.
type keyRouter interface {
	handleKey(msg tea.KeyMsg) bool
}

// Scope owns the focus pointer for one terminal surface. It plays the
// role a document plays in a browser: elements attach to it, exactly
// one of them may hold focus, and a trap may hold its key route.
//
// All state is explicit and instance-local. There is no package-level
// scope, and the zero value is not usable; construct with NewScope.
// Scopes are single-threaded: every method must be called from the
// program's event loop.
type Scope struct {
	elements map[string]Element
	current  Element
	route    keyRouter
}

// NewScope returns an empty scope with no focused element.
func NewScope() *Scope {
	return &Scope{elements: make(map[string]Element)}
}

// Attach adds elements to the scope. An element is "in the document"
// from Attach until Detach. Attaching an already-attached ID replaces
// the stored element.
func (scope *Scope) Attach(elements ...Element) {
	for _, element := range elements {
		scope.elements[element.ID()] = element
	}
}

// Detach removes elements by ID. Detaching the focused element leaves
// focus unset. Unknown IDs are ignored.
func (scope *Scope) Detach(ids ...string) {
	for _, id := range ids {
		delete(scope.elements, id)
		if scope.current != nil && scope.current.ID() == id {
			scope.current = nil
		}
	}
}

// Attached reports whether an element with the given ID is in the
// scope.
func (scope *Scope) Attached(id string) bool {
	_, ok := scope.elements[id]
	return ok
}

// Focus moves the focus pointer to the element with the given ID.
// Returns false, leaving focus unchanged, if the ID is not attached
// or the element is not currently focusable.
func (scope *Scope) Focus(id string) bool {
	element, ok := scope.elements[id]
	if !ok || !element.Focusable() {
		return false
	}
	scope.current = element
	return true
}

// Blur unsets the focus pointer.
func (scope *Scope) Blur() {
	scope.current = nil
}

// Current returns the focused element, or nil when focus is unset.
func (scope *Scope) Current() Element {
	return scope.current
}

// IsFocused reports whether the element with the given ID holds focus.
func (scope *Scope) IsFocused(id string) bool {
	return scope.current != nil && scope.current.ID() == id
}

// RouteKey delivers a key event to the current route holder. Returns
// false when no route is held or the holder declined the event; the
// host then dispatches the event through its ordinary widget routing.
func (scope *Scope) RouteKey(msg tea.KeyMsg) bool {
	if scope.route == nil {
		return false
	}
	return scope.route.handleKey(msg)
}

// Trapped reports whether a trap currently holds the key route.
func (scope *Scope) Trapped() bool {
	return scope.route != nil
}

// acquire claims the key route. Fails when another holder has it.
// Paired with release; the pair is the explicit listener
// registration/deregistration for trap activation.
func (scope *Scope) acquire(router keyRouter) bool {
	if scope.route != nil && scope.route != router {
		return false
	}
	scope.route = router
	return true
}

// release gives the key route back. Releasing a route the router does
// not hold is a no-op, so release is safe on every deactivation path.
func (scope *Scope) release(router keyRouter) {
	if scope.route == router {
		scope.route = nil
	}
}
