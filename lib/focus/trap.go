// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package focus

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrTrapActive is returned by Activate when a trap already holds the
// scope's key route, whether this trap or another. Nested modals go
// through Stack instead of activating a second bare trap.
var ErrTrapActive = errors.New("focus: a trap is already active on this scope")

// State is the trap lifecycle state.
type State int

const (
	// Inactive: no snapshot, no key route, no effect on the scope.
	Inactive State = iota
	// Active: holds the key route; Tab order is confined to the
	// activation snapshot until Deactivate.
	Active
)

// String returns the state name for logs.
func (state State) String() string {
	switch state {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Trap confines sequential keyboard navigation to one container while
// a modal region is shown, and restores the previously focused element
// when the region closes.
//
// The host owns the container's visual presentation and decides when
// to activate and deactivate (dialog opened; escape pressed; backdrop
// dismissed). The trap only moves focus. All methods are synchronous
// and must run on the program's event loop; the trap starts no
// goroutines and holds no locks.
type Trap struct {
	scope *Scope
	keys  KeyMap

	state     State
	container Container
	ring      Ring
	restore   Element
}

// NewTrap returns an inactive trap bound to a scope, with the default
// tab / shift+tab bindings.
func NewTrap(scope *Scope) *Trap {
	return &Trap{scope: scope, keys: DefaultKeyMap}
}

// SetKeys replaces the navigation bindings. Takes effect immediately,
// including on an active trap.
func (trap *Trap) SetKeys(keys KeyMap) {
	trap.keys = keys
}

// State returns the current lifecycle state.
func (trap *Trap) State() State {
	return trap.state
}

// Activate snapshots the container's focusable descendants, focuses
// the first of them, and claims the scope's key route. The previous
// element, usually the one focused before the modal opened, is
// recorded as the restore target for Deactivate; nil means nothing to
// restore.
//
// A container with no focusable descendants activates nothing: focus
// is left unchanged, no route is claimed, the trap stays Inactive, and
// the returned error is nil. Activating while a trap is already active
// on the scope returns ErrTrapActive.
func (trap *Trap) Activate(container Container, previous Element) error {
	if trap.state == Active {
		return ErrTrapActive
	}

	ring := NewRing(container.Descendants())
	if ring.Len() == 0 {
		return nil
	}

	if !trap.scope.acquire(trap) {
		return ErrTrapActive
	}

	trap.container = container
	trap.ring = ring
	trap.restore = previous
	trap.state = Active
	trap.scope.Focus(ring.First().ID())
	return nil
}

// Deactivate releases the key route and restores focus to the element
// recorded at activation, provided it is still attached and focusable.
// Otherwise focus is left unset. Deactivating an inactive trap is a
// no-op, so deferred or duplicate calls are safe on every exit path.
func (trap *Trap) Deactivate() {
	if trap.state != Active {
		return
	}

	trap.scope.release(trap)
	trap.state = Inactive
	trap.container = nil
	trap.ring = Ring{}

	restore := trap.restore
	trap.restore = nil
	if restore == nil || !trap.scope.Focus(restore.ID()) {
		trap.scope.Blur()
	}
}

// Refresh re-snapshots the container's focusable descendants. The ring
// never tracks mutations on its own; a host that adds or removes
// controls while the modal is open calls Refresh afterward. Focus
// stays where it is when the focused element survives the new
// snapshot, and moves to the new first element when it does not. A
// refresh that finds nothing focusable leaves the trap active but
// inert until Deactivate.
func (trap *Trap) Refresh() {
	if trap.state != Active || !trap.scope.Attached(trap.container.ID()) {
		return
	}

	trap.ring = NewRing(trap.container.Descendants())
	if trap.ring.Len() == 0 {
		return
	}

	current := trap.scope.Current()
	if current != nil && trap.ring.Contains(current.ID()) {
		return
	}
	trap.scope.Focus(trap.ring.First().ID())
}

// handleKey processes a routed key event. Only the Next and Previous
// bindings are handled; everything else returns false and flows to
// the host's normal dispatch.
//
// When the container has been detached from the scope while the trap
// is active, navigation keys are consumed but perform nothing: the
// stale modal must not leak Tab presses to whatever is rendered
// beneath it. The condition is recovered silently, never reported.
func (trap *Trap) handleKey(msg tea.KeyMsg) bool {
	if trap.state != Active {
		return false
	}

	isNext := key.Matches(msg, trap.keys.Next)
	isPrevious := key.Matches(msg, trap.keys.Previous)
	if !isNext && !isPrevious {
		return false
	}

	if !trap.scope.Attached(trap.container.ID()) {
		return true
	}

	direction := +1
	if isPrevious {
		direction = -1
	}
	trap.focusRelative(direction)
	return true
}

// focusRelative moves focus one step through the ring, skipping
// snapshot entries that can no longer take focus (detached or
// disabled since activation). Gives up after one full cycle.
func (trap *Trap) focusRelative(direction int) {
	currentID := ""
	if current := trap.scope.Current(); current != nil {
		currentID = current.ID()
	}

	candidateID := currentID
	for range trap.ring.Len() {
		var candidate Element
		if direction > 0 {
			candidate = trap.ring.Next(candidateID)
		} else {
			candidate = trap.ring.Previous(candidateID)
		}
		candidateID = candidate.ID()
		if trap.scope.Focus(candidateID) {
			return
		}
	}
}
