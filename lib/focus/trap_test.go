// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package focus

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeControl is a minimal Element for tests.
type fakeControl struct {
	id      string
	enabled bool
}

func (control *fakeControl) ID() string      { return control.id }
func (control *fakeControl) Focusable() bool { return control.enabled }

// fakePane is a minimal Container for tests.
type fakePane struct {
	id       string
	children []Element
}

func (pane *fakePane) ID() string             { return pane.id }
func (pane *fakePane) Descendants() []Element { return pane.children }

func button(id string) *fakeControl {
	return &fakeControl{id: id, enabled: true}
}

// dialogFixture builds the canonical arrangement: a dialog containing
// three buttons, plus an outside control X that holds focus before the
// dialog opens.
func dialogFixture() (*Scope, *fakePane, *fakeControl) {
	b1, b2, b3 := button("b1"), button("b2"), button("b3")
	x := button("x")
	dialog := &fakePane{id: "dialog", children: []Element{b1, b2, b3}}

	scope := NewScope()
	scope.Attach(x, b1, b2, b3, dialog.asElement())
	scope.Focus("x")
	return scope, dialog, x
}

// asElement lets the pane itself attach to the scope so traps can
// check container liveness.
func (pane *fakePane) asElement() Element {
	return &fakeControl{id: pane.id, enabled: false}
}

func pressTab() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyTab} }
func pressShiftTab() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyShiftTab} }

func requireFocus(t *testing.T, scope *Scope, id string) {
	t.Helper()
	current := scope.Current()
	if current == nil {
		t.Fatalf("focus unset, want %q", id)
	}
	if current.ID() != id {
		t.Fatalf("focus on %q, want %q", current.ID(), id)
	}
}

func TestTrapActivateFocusesFirst(t *testing.T) {
	scope, dialog, _ := dialogFixture()
	trap := NewTrap(scope)

	if err := trap.Activate(dialog, scope.Current()); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if trap.State() != Active {
		t.Fatalf("state %v after activation, want active", trap.State())
	}
	requireFocus(t, scope, "b1")
	if !scope.Trapped() {
		t.Error("scope should report a held key route while the trap is active")
	}
}

func TestTrapThreeButtonDialog(t *testing.T) {
	scope, dialog, _ := dialogFixture()
	trap := NewTrap(scope)
	if err := trap.Activate(dialog, scope.Current()); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	requireFocus(t, scope, "b1")

	// Wrap backward: previous from the first element lands on the last.
	if !scope.RouteKey(pressShiftTab()) {
		t.Fatal("shift+tab not consumed by the trap")
	}
	requireFocus(t, scope, "b3")

	// Wrap forward: next from the last element lands on the first.
	scope.RouteKey(pressTab())
	requireFocus(t, scope, "b1")

	// Ordinary forward traversal.
	scope.RouteKey(pressTab())
	requireFocus(t, scope, "b2")
	scope.RouteKey(pressTab())
	requireFocus(t, scope, "b3")

	// Deactivation returns focus to the outside element.
	trap.Deactivate()
	requireFocus(t, scope, "x")
	if trap.State() != Inactive {
		t.Errorf("state %v after deactivation, want inactive", trap.State())
	}
	if scope.Trapped() {
		t.Error("key route still held after deactivation")
	}
}

func TestTrapEmptyContainer(t *testing.T) {
	scope, _, _ := dialogFixture()
	empty := &fakePane{id: "empty"}
	scope.Attach(empty.asElement())

	trap := NewTrap(scope)
	if err := trap.Activate(empty, scope.Current()); err != nil {
		t.Fatalf("Activate on an empty container: %v", err)
	}
	if trap.State() != Inactive {
		t.Error("empty container must leave the trap inactive")
	}
	requireFocus(t, scope, "x")
	if scope.Trapped() {
		t.Error("no key route may be claimed for an empty container")
	}
}

func TestTrapSkipsUnfocusableAtSnapshot(t *testing.T) {
	scope, _, _ := dialogFixture()
	disabled := &fakeControl{id: "disabled", enabled: false}
	ok := button("ok")
	pane := &fakePane{id: "pane", children: []Element{disabled, ok}}
	scope.Attach(disabled, ok, pane.asElement())

	trap := NewTrap(scope)
	if err := trap.Activate(pane, nil); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	requireFocus(t, scope, "ok")
}

func TestTrapStaleRestoreTarget(t *testing.T) {
	scope, dialog, x := dialogFixture()
	trap := NewTrap(scope)
	if err := trap.Activate(dialog, x); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	scope.Detach("x")
	trap.Deactivate()

	if current := scope.Current(); current != nil {
		t.Errorf("focus on %q after stale restore, want unset", current.ID())
	}
}

func TestTrapNilRestoreTarget(t *testing.T) {
	scope, dialog, _ := dialogFixture()
	trap := NewTrap(scope)
	if err := trap.Activate(dialog, nil); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	trap.Deactivate()
	if current := scope.Current(); current != nil {
		t.Errorf("focus on %q with nil restore target, want unset", current.ID())
	}
}

func TestTrapDetachedContainer(t *testing.T) {
	scope, dialog, _ := dialogFixture()
	trap := NewTrap(scope)
	if err := trap.Activate(dialog, scope.Current()); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	scope.Detach("dialog")

	// Navigation keys are consumed but inert. They must not leak to
	// widgets beneath the stale modal.
	if !scope.RouteKey(pressTab()) {
		t.Error("tab should still be consumed after the container detaches")
	}
	requireFocus(t, scope, "b1")

	// Non-navigation keys flow through to the host as usual.
	if scope.RouteKey(tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Error("enter is not a trap key and should not be consumed")
	}

	// Deactivation still restores.
	trap.Deactivate()
	requireFocus(t, scope, "x")
}

func TestTrapSecondActivation(t *testing.T) {
	scope, dialog, x := dialogFixture()
	trap := NewTrap(scope)
	if err := trap.Activate(dialog, x); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	if err := trap.Activate(dialog, x); !errors.Is(err, ErrTrapActive) {
		t.Errorf("re-activating the same trap: err = %v, want ErrTrapActive", err)
	}

	other := NewTrap(scope)
	if err := other.Activate(dialog, x); !errors.Is(err, ErrTrapActive) {
		t.Errorf("activating a second trap: err = %v, want ErrTrapActive", err)
	}
	if other.State() != Inactive {
		t.Error("rejected trap must stay inactive")
	}
	requireFocus(t, scope, "b1")
}

func TestTrapDeactivateIdempotent(t *testing.T) {
	scope, dialog, _ := dialogFixture()
	trap := NewTrap(scope)

	trap.Deactivate() // inactive: no-op
	requireFocus(t, scope, "x")

	if err := trap.Activate(dialog, scope.Current()); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	trap.Deactivate()
	trap.Deactivate() // second call: no-op, focus untouched
	requireFocus(t, scope, "x")
}

func TestTrapRefresh(t *testing.T) {
	scope, dialog, _ := dialogFixture()
	trap := NewTrap(scope)
	if err := trap.Activate(dialog, scope.Current()); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	// A control added after activation is invisible until Refresh.
	b4 := button("b4")
	dialog.children = append(dialog.children, b4)
	scope.Attach(b4)

	scope.RouteKey(pressShiftTab())
	requireFocus(t, scope, "b3")
	scope.RouteKey(pressTab())
	requireFocus(t, scope, "b1")

	trap.Refresh()
	scope.RouteKey(pressShiftTab())
	requireFocus(t, scope, "b4")
}

func TestTrapRefreshFocusLost(t *testing.T) {
	scope, dialog, _ := dialogFixture()
	trap := NewTrap(scope)
	if err := trap.Activate(dialog, scope.Current()); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	requireFocus(t, scope, "b1")

	// The focused control disappears; Refresh moves focus to the new
	// first element.
	dialog.children = dialog.children[1:]
	scope.Detach("b1")
	trap.Refresh()
	requireFocus(t, scope, "b2")
}

func TestTrapSkipsDeadSnapshotEntries(t *testing.T) {
	scope, dialog, _ := dialogFixture()
	trap := NewTrap(scope)
	if err := trap.Activate(dialog, scope.Current()); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	// b2 vanishes after the snapshot. Forward navigation from b1
	// skips it rather than sticking.
	scope.Detach("b2")
	scope.RouteKey(pressTab())
	requireFocus(t, scope, "b3")
}
