// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package focus

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the sequential-navigation bindings a trap handles.
// Everything else (activation, dismissal, arrows) belongs to the host
// and its widgets.
type KeyMap struct {
	Next     key.Binding // Move to the next element, wrapping at the end.
	Previous key.Binding // Move to the previous element, wrapping at the start.
}

// DefaultKeyMap is the conventional tab / shift+tab pair.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next control"),
	),
	Previous: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous control"),
	),
}

// Apply returns a copy of the key map with bindings replaced by config
// overrides, keyed "next" and "previous". Unknown names and empty key
// lists are ignored.
func (keys KeyMap) Apply(overrides map[string][]string) KeyMap {
	replace := func(binding *key.Binding, name string) {
		values, ok := overrides[name]
		if !ok || len(values) == 0 {
			return
		}
		*binding = key.NewBinding(
			key.WithKeys(values...),
			key.WithHelp(values[0], binding.Help().Desc),
		)
	}
	replace(&keys.Next, "next")
	replace(&keys.Previous, "previous")
	return keys
}
