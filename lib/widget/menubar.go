// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tact-project/tact/lib/announce"
	"github.com/tact-project/tact/lib/theme"
)

// MenuItem is one entry in a pull-down menu. Disabled items render
// dimmed and are skipped by the roving cursor.
type MenuItem struct {
	Label    string
	Disabled bool
}

// Menu is one top-level menubar entry and its pull-down items.
type Menu struct {
	Title string
	Items []MenuItem
}

// MenuSelectMsg is emitted as a command when a menu item is
// activated. The host program's Update decides what the item means.
type MenuSelectMsg struct {
	Widget string // ID of the menubar that emitted the selection.
	Menu   string // Title of the menu the item belongs to.
	Item   string // Label of the activated item.
}

// Menubar is a horizontal strip of menu titles with pull-down
// submenus. The widget is one tab stop: Left/Right rove between
// titles, Down or Activate opens the submenu under the cursor,
// Up/Down rove inside it with wraparound, Activate emits a
// MenuSelectMsg and closes. Dismiss closes an open submenu and
// returns the cursor to the title that opened it; with no submenu
// open the key falls through so the host can move focus elsewhere.
type Menubar struct {
	id        string
	menus     []Menu
	cursor    int
	open      bool
	item      int
	keys      KeyMap
	announcer *announce.Announcer
}

// NewMenubar creates a menubar with all submenus closed.
func NewMenubar(id string, menus []Menu) *Menubar {
	return &Menubar{
		id:    id,
		menus: menus,
		keys:  DefaultKeyMap,
	}
}

// ID implements focus.Element.
func (menubar *Menubar) ID() string { return menubar.id }

// Focusable implements focus.Element.
func (menubar *Menubar) Focusable() bool { return len(menubar.menus) > 0 }

// SetKeys replaces the key bindings.
func (menubar *Menubar) SetKeys(keys KeyMap) { menubar.keys = keys }

// SetAnnouncer wires submenu announcements. Nil silences them.
func (menubar *Menubar) SetAnnouncer(announcer *announce.Announcer) {
	menubar.announcer = announcer
}

// Cursor returns the index of the title under the roving cursor.
func (menubar *Menubar) Cursor() int { return menubar.cursor }

// IsOpen reports whether a submenu is showing.
func (menubar *Menubar) IsOpen() bool { return menubar.open }

// Item returns the index of the highlighted submenu row. Meaningful
// only while a submenu is open.
func (menubar *Menubar) Item() int { return menubar.item }

// Close dismisses any open submenu. Hosts call this when the menubar
// loses focus so a stale pull-down does not linger over other panes.
func (menubar *Menubar) Close() { menubar.open = false }

// HandleKey processes one key event. Handled reports whether the
// menubar consumed the key; the command, when non-nil, delivers a
// MenuSelectMsg.
func (menubar *Menubar) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(menubar.menus) == 0 {
		return false, nil
	}
	if menubar.open {
		return menubar.handleSubmenuKey(msg)
	}

	switch {
	case key.Matches(msg, menubar.keys.Left):
		menubar.cursor = (menubar.cursor - 1 + len(menubar.menus)) % len(menubar.menus)
	case key.Matches(msg, menubar.keys.Right):
		menubar.cursor = (menubar.cursor + 1) % len(menubar.menus)
	case key.Matches(msg, menubar.keys.Home):
		menubar.cursor = 0
	case key.Matches(msg, menubar.keys.End):
		menubar.cursor = len(menubar.menus) - 1
	case key.Matches(msg, menubar.keys.Down), key.Matches(msg, menubar.keys.Activate):
		menubar.openMenu()
	default:
		return false, nil
	}
	return true, nil
}

// handleSubmenuKey routes keys while a pull-down is showing.
// Left/Right carry the open state to the neighboring menu, matching
// the conventional menubar pattern.
func (menubar *Menubar) handleSubmenuKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	menu := menubar.menus[menubar.cursor]

	switch {
	case key.Matches(msg, menubar.keys.Up):
		menubar.roveItem(-1)
	case key.Matches(msg, menubar.keys.Down):
		menubar.roveItem(1)
	case key.Matches(msg, menubar.keys.Left):
		menubar.open = false
		menubar.cursor = (menubar.cursor - 1 + len(menubar.menus)) % len(menubar.menus)
		menubar.openMenu()
	case key.Matches(msg, menubar.keys.Right):
		menubar.open = false
		menubar.cursor = (menubar.cursor + 1) % len(menubar.menus)
		menubar.openMenu()
	case key.Matches(msg, menubar.keys.Activate):
		item := menu.Items[menubar.item]
		if item.Disabled {
			return true, nil
		}
		menubar.open = false
		return true, func() tea.Msg {
			return MenuSelectMsg{Widget: menubar.id, Menu: menu.Title, Item: item.Label}
		}
	case key.Matches(msg, menubar.keys.Dismiss):
		menubar.open = false
	default:
		return false, nil
	}
	return true, nil
}

// openMenu shows the submenu under the cursor with the first enabled
// item highlighted. A menu with no items stays closed; the bar has
// nothing to pull down.
func (menubar *Menubar) openMenu() {
	menu := menubar.menus[menubar.cursor]
	if len(menu.Items) == 0 {
		return
	}
	menubar.open = true
	menubar.item = firstEnabled(menu)
	announceTo(menubar.announcer,
		menu.Title+" menu, "+countNoun(len(menu.Items), "item"), announce.Polite)
}

// roveItem moves the submenu cursor by step, wrapping and skipping
// disabled items. One full cycle without an enabled item leaves the
// cursor in place.
func (menubar *Menubar) roveItem(step int) {
	items := menubar.menus[menubar.cursor].Items
	index := menubar.item
	for range len(items) {
		index = (index + step + len(items)) % len(items)
		if !items[index].Disabled {
			menubar.item = index
			return
		}
	}
}

func firstEnabled(menu Menu) int {
	for index, item := range menu.Items {
		if !item.Disabled {
			return index
		}
	}
	return 0
}

// View renders the title strip. The cursor title is highlighted only
// while the widget has focus.
func (menubar *Menubar) View(palette theme.Theme, width int, focused bool) string {
	if width <= 0 || len(menubar.menus) == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(palette.NormalText)
	cursorStyle := SelectionStyle(palette)

	var bar strings.Builder
	for index, menu := range menubar.menus {
		cell := " " + menu.Title + " "
		if focused && index == menubar.cursor {
			bar.WriteString(cursorStyle.Render(cell))
		} else {
			bar.WriteString(titleStyle.Render(cell))
		}
	}
	return ansi.Truncate(bar.String(), width, "")
}

// OverlayLines renders the open submenu for splicing beneath the
// bar. The second return is the column of the submenu's left edge,
// aligned under the open menu's title. Nil while no submenu is open.
func (menubar *Menubar) OverlayLines(palette theme.Theme) ([]string, int) {
	if !menubar.open {
		return nil, 0
	}
	menu := menubar.menus[menubar.cursor]

	anchorX := 0
	for _, before := range menubar.menus[:menubar.cursor] {
		anchorX += ansi.StringWidth(" " + before.Title + " ")
	}

	maxLabel := 0
	for _, item := range menu.Items {
		if labelWidth := ansi.StringWidth(item.Label); labelWidth > maxLabel {
			maxLabel = labelWidth
		}
	}
	// Row layout: marker, space, label. One space of padding each side.
	innerWidth := maxLabel + 2

	base := overlayStyle(palette)
	selected := SelectionStyle(palette)
	disabled := base.Foreground(palette.DisabledText)
	if palette.Mono {
		disabled = lipgloss.NewStyle().Faint(true)
	}

	var lines []string
	for index, item := range menu.Items {
		marker := " "
		if index == menubar.item {
			marker = ">"
		}
		row := marker + " " + item.Label
		row += strings.Repeat(" ", innerWidth-ansi.StringWidth(row))

		style := base
		switch {
		case item.Disabled:
			style = disabled
		case index == menubar.item:
			style = selected
		}
		lines = append(lines, style.Render(" "+row+" "))
	}
	return lines, anchorX
}
