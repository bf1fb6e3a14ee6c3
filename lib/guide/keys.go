// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package guide

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/tact-project/tact/lib/widget"
)

// KeyMap extends the shared widget bindings with the viewer's own:
// pane switching, filter activation, and quitting.
type KeyMap struct {
	widget.KeyMap

	FocusNext     key.Binding
	FocusPrevious key.Binding
	Filter        key.Binding
	Quit          key.Binding
}

// DefaultKeyMap is the built-in binding set for the guide viewer.
var DefaultKeyMap = KeyMap{
	KeyMap: widget.DefaultKeyMap,
	FocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next pane"),
	),
	FocusPrevious: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous pane"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter topics"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Apply overlays config overrides onto the key map. The shared widget
// names are handled by the embedded map; the viewer adds focus-next,
// focus-previous, filter, and quit.
func (keys KeyMap) Apply(overrides map[string][]string) KeyMap {
	keys.KeyMap = keys.KeyMap.Apply(overrides)

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

	replace(&keys.FocusNext, "focus-next")
	replace(&keys.FocusPrevious, "focus-previous")
	replace(&keys.Filter, "filter")
	replace(&keys.Quit, "quit")
	return keys
}
