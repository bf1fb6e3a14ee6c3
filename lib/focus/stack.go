// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package focus

// Stack composes traps for nested modals: a confirmation dialog opened
// from inside another dialog. Each Push activates a trap whose restore
// target is the element focused at push time, so popping unwinds focus
// level by level. Only the top trap holds the scope's key route; the
// traps beneath stay active but suspended.
type Stack struct {
	scope *Scope
	keys  KeyMap
	traps []*Trap
}

// NewStack returns an empty stack bound to a scope.
func NewStack(scope *Scope) *Stack {
	return &Stack{scope: scope, keys: DefaultKeyMap}
}

// SetKeys replaces the navigation bindings used for traps pushed from
// now on. Already-pushed traps keep their bindings.
func (stack *Stack) SetKeys(keys KeyMap) {
	stack.keys = keys
}

// Push activates a trap on the container, suspending the current top.
// Returns false, with the previous top still in charge, when the
// container has no focusable descendants.
func (stack *Stack) Push(container Container) bool {
	previous := stack.scope.Current()

	top := stack.Top()
	if top != nil {
		stack.scope.release(top)
	}

	trap := NewTrap(stack.scope)
	trap.SetKeys(stack.keys)
	if err := trap.Activate(container, previous); err != nil || trap.State() != Active {
		// Nothing to trap. Hand the route back to the suspended top.
		if top != nil {
			stack.scope.acquire(top)
		}
		return false
	}

	stack.traps = append(stack.traps, trap)
	return true
}

// Pop deactivates the top trap, restoring focus to the element that
// held it at push time, and resumes the trap beneath. Returns false on
// an empty stack.
func (stack *Stack) Pop() bool {
	top := stack.Top()
	if top == nil {
		return false
	}

	top.Deactivate()
	stack.traps = stack.traps[:len(stack.traps)-1]

	if resumed := stack.Top(); resumed != nil {
		stack.scope.acquire(resumed)
	}
	return true
}

// Top returns the trap that currently holds the key route, or nil for
// an empty stack.
func (stack *Stack) Top() *Trap {
	if len(stack.traps) == 0 {
		return nil
	}
	return stack.traps[len(stack.traps)-1]
}

// Depth returns the number of pushed traps.
func (stack *Stack) Depth() int {
	return len(stack.traps)
}
