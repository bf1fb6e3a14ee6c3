// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings shared by all widgets. Which
// bindings a given widget consumes depends on the pattern: a menubar
// roves with Left/Right, a tree expands with Right, a grid moves its
// cell cursor on both axes.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// FirstCell and LastCell jump to the corners of two-dimensional
	// widgets; one-dimensional widgets ignore them.
	FirstCell key.Binding
	LastCell  key.Binding

	// Activate toggles or picks: expand a section, choose a menu
	// entry, cycle a grid column's sort.
	Activate key.Binding

	// Dismiss closes the innermost open layer: a submenu, a
	// suggestion list, a dialog.
	Dismiss key.Binding
}

// DefaultKeyMap is the built-in binding set. Vim-style movement
// alongside the standard arrows, matching terminal conventions.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left / collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right / expand"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("C-d", "page down"),
	),
	FirstCell: key.NewBinding(
		key.WithKeys("ctrl+home"),
		key.WithHelp("C-Home", "first cell"),
	),
	LastCell: key.NewBinding(
		key.WithKeys("ctrl+end"),
		key.WithHelp("C-End", "last cell"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter/space", "activate"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "dismiss"),
	),
}

// Apply returns a copy of the key map with the named bindings replaced
// by config overrides. Override names follow the config file's keys
// section: up, down, left, right, home, end, page-up, page-down,
// first-cell, last-cell, activate, dismiss. Unknown names and empty
// key lists are ignored; help text keeps its description with the
// first override key shown.
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

	replace(&keys.Up, "up")
	replace(&keys.Down, "down")
	replace(&keys.Left, "left")
	replace(&keys.Right, "right")
	replace(&keys.Home, "home")
	replace(&keys.End, "end")
	replace(&keys.PageUp, "page-up")
	replace(&keys.PageDown, "page-down")
	replace(&keys.FirstCell, "first-cell")
	replace(&keys.LastCell, "last-cell")
	replace(&keys.Activate, "activate")
	replace(&keys.Dismiss, "dismiss")
	return keys
}
