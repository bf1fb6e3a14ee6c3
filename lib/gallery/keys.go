// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package gallery

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/tact-project/tact/lib/widget"
)

// KeyMap extends the shared widget bindings with the gallery's own:
// pane cycling, the menu bar jump, the dialog demo, and quitting.
type KeyMap struct {
	widget.KeyMap

	FocusNext     key.Binding
	FocusPrevious key.Binding
	Menu          key.Binding
	Dialog        key.Binding
	Quit          key.Binding
}

// DefaultKeyMap is the built-in binding set for the gallery.
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
	Menu: key.NewBinding(
		key.WithKeys("f10"),
		key.WithHelp("F10", "menu"),
	),
	Dialog: key.NewBinding(
		key.WithKeys("f2"),
		key.WithHelp("F2", "dialog demo"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Apply overlays config overrides onto the key map. The shared widget
// names are handled by the embedded map; the gallery adds focus-next,
// focus-previous, menu, dialog, and quit.
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
	replace(&keys.Menu, "menu")
	replace(&keys.Dialog, "dialog")
	replace(&keys.Quit, "quit")
	return keys
}
