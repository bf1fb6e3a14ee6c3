// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package focus

import "testing"

// nestedFixture: an outer dialog with two buttons and an inner
// confirmation with two more, plus the outside control X.
func nestedFixture() (*Scope, *fakePane, *fakePane) {
	outer := &fakePane{id: "outer", children: []Element{button("save"), button("cancel")}}
	inner := &fakePane{id: "inner", children: []Element{button("yes"), button("no")}}

	scope := NewScope()
	scope.Attach(button("x"))
	for _, pane := range []*fakePane{outer, inner} {
		scope.Attach(pane.asElement())
		scope.Attach(pane.children...)
	}
	scope.Focus("x")
	return scope, outer, inner
}

func TestStackPushPop(t *testing.T) {
	scope, outer, inner := nestedFixture()
	stack := NewStack(scope)

	if !stack.Push(outer) {
		t.Fatal("push outer failed")
	}
	requireFocus(t, scope, "save")

	// Move within the outer dialog, then nest.
	scope.RouteKey(pressTab())
	requireFocus(t, scope, "cancel")

	if !stack.Push(inner) {
		t.Fatal("push inner failed")
	}
	requireFocus(t, scope, "yes")
	if stack.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", stack.Depth())
	}

	// Only the top trap routes keys: tab cycles the inner ring.
	scope.RouteKey(pressTab())
	requireFocus(t, scope, "no")
	scope.RouteKey(pressTab())
	requireFocus(t, scope, "yes")

	// Popping unwinds focus level by level.
	if !stack.Pop() {
		t.Fatal("pop inner failed")
	}
	requireFocus(t, scope, "cancel")

	// The resumed outer trap routes keys again.
	scope.RouteKey(pressTab())
	requireFocus(t, scope, "save")

	if !stack.Pop() {
		t.Fatal("pop outer failed")
	}
	requireFocus(t, scope, "x")
	if stack.Depth() != 0 {
		t.Errorf("Depth = %d after unwinding, want 0", stack.Depth())
	}
	if scope.Trapped() {
		t.Error("key route still held after the stack emptied")
	}
}

func TestStackPushEmptyContainer(t *testing.T) {
	scope, outer, _ := nestedFixture()
	empty := &fakePane{id: "empty"}
	scope.Attach(empty.asElement())

	stack := NewStack(scope)
	if !stack.Push(outer) {
		t.Fatal("push outer failed")
	}

	if stack.Push(empty) {
		t.Error("pushing an empty container should fail")
	}
	if stack.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", stack.Depth())
	}

	// The previous top must still route keys after the failed push.
	requireFocus(t, scope, "save")
	scope.RouteKey(pressTab())
	requireFocus(t, scope, "cancel")
}

func TestStackPopEmpty(t *testing.T) {
	scope, _, _ := nestedFixture()
	stack := NewStack(scope)

	if stack.Pop() {
		t.Error("pop on an empty stack should report false")
	}
	requireFocus(t, scope, "x")
}
