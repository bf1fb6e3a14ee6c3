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
	"github.com/tact-project/tact/lib/focus"
	"github.com/tact-project/tact/lib/overlay"
	"github.com/tact-project/tact/lib/theme"
)

// Dialog inner area bounds. Below the minimum the body is unreadable;
// above the maximum long lines are harder to follow than wrapped ones.
const (
	dialogMinInnerWidth = 24
	dialogMaxInnerWidth = 56
)

// Button is a focusable action element inside a dialog.
type Button struct {
	id    string
	label string
}

// NewButton creates a button. The id must be unique within the scope
// the dialog attaches to.
func NewButton(id, label string) *Button {
	return &Button{id: id, label: label}
}

// ID implements focus.Element.
func (button *Button) ID() string { return button.id }

// Focusable implements focus.Element.
func (button *Button) Focusable() bool { return true }

// Label returns the display text.
func (button *Button) Label() string { return button.label }

// DialogClosedMsg is emitted as a command when the dialog closes.
// Button carries the label of the activating button, empty when the
// dialog was dismissed.
type DialogClosedMsg struct {
	Widget string
	Button string
}

// Dialog is a modal built on the focus core. Open attaches the
// dialog's buttons to the scope and pushes a trap onto the stack, so
// Tab and Shift+Tab cycle through the buttons and the element focused
// at open is restored on close. Escape dismisses; Activate presses
// the focused button. Tab order is the trap's business: hosts route
// key events through the scope before asking the dialog.
type Dialog struct {
	id      string
	title   string
	body    string
	buttons []*Button

	scope *focus.Scope
	stack *focus.Stack
	open  bool

	keys      KeyMap
	announcer *announce.Announcer
}

// NewDialog creates a closed dialog over the given scope and trap
// stack.
func NewDialog(id, title, body string, scope *focus.Scope, stack *focus.Stack, buttons ...*Button) *Dialog {
	return &Dialog{
		id:      id,
		title:   title,
		body:    body,
		buttons: buttons,
		scope:   scope,
		stack:   stack,
		keys:    DefaultKeyMap,
	}
}

// ID implements focus.Container.
func (dialog *Dialog) ID() string { return dialog.id }

// Descendants implements focus.Container: the action buttons in
// display order.
func (dialog *Dialog) Descendants() []focus.Element {
	elements := make([]focus.Element, len(dialog.buttons))
	for index, button := range dialog.buttons {
		elements[index] = button
	}
	return elements
}

// SetKeys replaces the key bindings.
func (dialog *Dialog) SetKeys(keys KeyMap) { dialog.keys = keys }

// SetAnnouncer wires open announcements. Nil silences them.
func (dialog *Dialog) SetAnnouncer(announcer *announce.Announcer) {
	dialog.announcer = announcer
}

// IsOpen reports whether the dialog is showing.
func (dialog *Dialog) IsOpen() bool { return dialog.open }

// Open attaches the buttons and traps focus inside the dialog.
// Reports false when the dialog is already open, has no buttons, or
// the trap could not be placed.
func (dialog *Dialog) Open() bool {
	if dialog.open {
		return false
	}
	dialog.scope.Attach(dialog.Descendants()...)
	if !dialog.stack.Push(dialog) {
		dialog.scope.Detach(dialog.buttonIDs()...)
		return false
	}
	dialog.open = true
	announceTo(dialog.announcer, dialog.title+" dialog", announce.Assertive)
	return true
}

// HandleKey processes one key event while open. The command, when
// non-nil, delivers a DialogClosedMsg.
func (dialog *Dialog) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !dialog.open {
		return false, nil
	}

	switch {
	case key.Matches(msg, dialog.keys.Dismiss):
		dialog.close()
		return true, dialog.closedCmd("")
	case key.Matches(msg, dialog.keys.Activate):
		current := dialog.scope.Current()
		if current == nil {
			return true, nil
		}
		for _, button := range dialog.buttons {
			if button.ID() == current.ID() {
				dialog.close()
				return true, dialog.closedCmd(button.Label())
			}
		}
		return true, nil
	}
	return false, nil
}

// close pops the trap, which restores the previously focused element,
// then detaches the buttons.
func (dialog *Dialog) close() {
	dialog.stack.Pop()
	dialog.scope.Detach(dialog.buttonIDs()...)
	dialog.open = false
}

func (dialog *Dialog) closedCmd(button string) tea.Cmd {
	return func() tea.Msg {
		return DialogClosedMsg{Widget: dialog.id, Button: button}
	}
}

func (dialog *Dialog) buttonIDs() []string {
	ids := make([]string, len(dialog.buttons))
	for index, button := range dialog.buttons {
		ids[index] = button.id
	}
	return ids
}

// OverlayLines renders the dialog for splicing onto the screen,
// returning the lines and the centered anchor. Nil while closed.
func (dialog *Dialog) OverlayLines(palette theme.Theme, screenWidth, screenHeight int) ([]string, int, int) {
	if !dialog.open {
		return nil, 0, 0
	}

	innerWidth := dialogMaxInnerWidth
	if available := screenWidth - 6; available < innerWidth {
		innerWidth = available
	}
	if innerWidth < dialogMinInnerWidth {
		innerWidth = dialogMinInnerWidth
	}

	background := overlayStyle(palette)
	titleStyle := background.Bold(true).Foreground(palette.HeaderForeground)
	if palette.Mono {
		titleStyle = lipgloss.NewStyle().Bold(true)
	}
	bodyStyle := background

	var content []string
	content = append(content, overlay.PadLine(titleStyle.Render(ansi.Truncate(dialog.title, innerWidth, "…")), innerWidth, background))
	content = append(content, overlay.PadLine("", innerWidth, background))
	for _, line := range strings.Split(ansi.Wrap(dialog.body, innerWidth, " ,.;-+|"), "\n") {
		content = append(content, overlay.PadLine(bodyStyle.Render(line), innerWidth, background))
	}
	content = append(content, overlay.PadLine("", innerWidth, background))
	content = append(content, overlay.PadLine(dialog.buttonRow(palette), innerWidth, background))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.BorderColor)
	if !palette.Mono {
		borderStyle = borderStyle.Background(palette.OverlayBackground)
	}

	lines := strings.Split(borderStyle.Render(strings.Join(content, "\n")), "\n")
	anchorX, anchorY := overlay.CenterAnchor(screenWidth, screenHeight, ansi.StringWidth(lines[0]), len(lines))
	return lines, anchorX, anchorY
}

// buttonRow renders the action buttons with the focused one
// highlighted.
func (dialog *Dialog) buttonRow(palette theme.Theme) string {
	background := overlayStyle(palette)
	focusedStyle := SelectionStyle(palette)

	var parts []string
	for _, button := range dialog.buttons {
		cell := "[ " + button.label + " ]"
		if dialog.scope.IsFocused(button.id) {
			parts = append(parts, focusedStyle.Render(cell))
		} else {
			parts = append(parts, background.Render(cell))
		}
	}
	return strings.Join(parts, background.Render("  "))
}
