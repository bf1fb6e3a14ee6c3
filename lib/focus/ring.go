// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package focus

// Ring is an ordered snapshot of focusable elements with wrap-around
// navigation. It is taken once (at trap activation, or explicitly on
// refresh) and never tracks later changes to the elements it holds.
type Ring struct {
	elements []Element
}

// NewRing snapshots the focusable subset of the given elements,
// preserving their order. Elements reporting Focusable() == false at
// snapshot time are excluded permanently from this ring.
func NewRing(elements []Element) Ring {
	focusables := make([]Element, 0, len(elements))
	for _, element := range elements {
		if element.Focusable() {
			focusables = append(focusables, element)
		}
	}
	return Ring{elements: focusables}
}

// Len returns the number of elements in the ring.
func (ring Ring) Len() int {
	return len(ring.elements)
}

// First returns the first element, or nil for an empty ring.
func (ring Ring) First() Element {
	if len(ring.elements) == 0 {
		return nil
	}
	return ring.elements[0]
}

// Last returns the last element, or nil for an empty ring.
func (ring Ring) Last() Element {
	if len(ring.elements) == 0 {
		return nil
	}
	return ring.elements[len(ring.elements)-1]
}

// Contains reports whether an element with the given ID is in the
// ring.
func (ring Ring) Contains(id string) bool {
	return ring.index(id) >= 0
}

// Next returns the element after the one with the given ID, wrapping
// from the last element to the first. An ID not in the ring resolves
// to First: when focus was moved externally, forward navigation
// restarts deterministically at the top.
func (ring Ring) Next(id string) Element {
	if len(ring.elements) == 0 {
		return nil
	}
	index := ring.index(id)
	if index < 0 {
		return ring.First()
	}
	return ring.elements[(index+1)%len(ring.elements)]
}

// Previous returns the element before the one with the given ID,
// wrapping from the first element to the last. An ID not in the ring
// resolves to Last, mirroring Next's recovery.
func (ring Ring) Previous(id string) Element {
	if len(ring.elements) == 0 {
		return nil
	}
	index := ring.index(id)
	if index < 0 {
		return ring.Last()
	}
	return ring.elements[(index-1+len(ring.elements))%len(ring.elements)]
}

func (ring Ring) index(id string) int {
	for i, element := range ring.elements {
		if element.ID() == id {
			return i
		}
	}
	return -1
}
