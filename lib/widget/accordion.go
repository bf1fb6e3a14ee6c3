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

// AccordionSection is one disclosure section: a header line and the
// body revealed when the section expands.
type AccordionSection struct {
	Title string
	Body  string
}

// Accordion is a vertically stacked set of disclosure sections. The
// widget is one tab stop; Up/Down rove between headers, Activate
// toggles the section under the cursor. Expansion changes are
// announced.
type Accordion struct {
	id        string
	sections  []AccordionSection
	expanded  map[int]bool
	cursor    int
	keys      KeyMap
	announcer *announce.Announcer
	single    bool
}

// NewAccordion creates a collapsed accordion with the default keys.
func NewAccordion(id string, sections []AccordionSection) *Accordion {
	return &Accordion{
		id:       id,
		sections: sections,
		expanded: make(map[int]bool),
		keys:     DefaultKeyMap,
	}
}

// ID implements focus.Element.
func (accordion *Accordion) ID() string { return accordion.id }

// Focusable implements focus.Element. An accordion with no sections
// has nothing to interact with.
func (accordion *Accordion) Focusable() bool { return len(accordion.sections) > 0 }

// SetKeys replaces the key bindings.
func (accordion *Accordion) SetKeys(keys KeyMap) { accordion.keys = keys }

// SetAnnouncer wires expansion announcements. Nil silences them.
func (accordion *Accordion) SetAnnouncer(announcer *announce.Announcer) {
	accordion.announcer = announcer
}

// SetSingleExpand makes expanding one section collapse the others.
// Applies to toggles from now on; already-expanded sections stay.
func (accordion *Accordion) SetSingleExpand(single bool) { accordion.single = single }

// Cursor returns the index of the header under the roving cursor.
func (accordion *Accordion) Cursor() int { return accordion.cursor }

// IsExpanded reports whether the section at index is expanded.
func (accordion *Accordion) IsExpanded(index int) bool { return accordion.expanded[index] }

// OpenSections returns the titles of expanded sections in display
// order, for session persistence.
func (accordion *Accordion) OpenSections() []string {
	var titles []string
	for index, section := range accordion.sections {
		if accordion.expanded[index] {
			titles = append(titles, section.Title)
		}
	}
	return titles
}

// RestoreOpen expands the sections whose titles appear in the list.
// With single-expand set, only the first match expands. Unknown
// titles are ignored; restoring never announces.
func (accordion *Accordion) RestoreOpen(titles []string) {
	wanted := make(map[string]bool, len(titles))
	for _, title := range titles {
		wanted[title] = true
	}
	for index, section := range accordion.sections {
		if !wanted[section.Title] {
			continue
		}
		accordion.expanded[index] = true
		if accordion.single {
			return
		}
	}
}

// HandleKey processes one key event. Handled reports whether the
// accordion consumed the key; unhandled keys flow back to the host
// for its own dispatch. The command is always nil; the accordion
// emits no events, hosts read its state.
func (accordion *Accordion) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(accordion.sections) == 0 {
		return false, nil
	}

	switch {
	case key.Matches(msg, accordion.keys.Up):
		if accordion.cursor > 0 {
			accordion.cursor--
		}
	case key.Matches(msg, accordion.keys.Down):
		if accordion.cursor < len(accordion.sections)-1 {
			accordion.cursor++
		}
	case key.Matches(msg, accordion.keys.Home):
		accordion.cursor = 0
	case key.Matches(msg, accordion.keys.End):
		accordion.cursor = len(accordion.sections) - 1
	case key.Matches(msg, accordion.keys.Activate):
		accordion.toggle()
	default:
		return false, nil
	}
	return true, nil
}

// toggle flips the section under the cursor and announces the result.
func (accordion *Accordion) toggle() {
	index := accordion.cursor
	title := accordion.sections[index].Title

	if accordion.expanded[index] {
		delete(accordion.expanded, index)
		announceTo(accordion.announcer, title+" collapsed", announce.Polite)
		return
	}

	if accordion.single {
		accordion.expanded = make(map[int]bool)
	}
	accordion.expanded[index] = true
	announceTo(accordion.announcer, title+" expanded", announce.Polite)
}

// View renders the accordion. Headers carry a disclosure marker;
// expanded bodies are wrapped and indented beneath their header. The
// cursor row is highlighted only while the widget has focus, so a
// blurred accordion reads as plain content.
func (accordion *Accordion) View(palette theme.Theme, width int, focused bool) string {
	if width <= 4 || len(accordion.sections) == 0 {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(palette.HeaderForeground)
	bodyStyle := lipgloss.NewStyle().Foreground(palette.NormalText)
	cursorRow := SelectionStyle(palette)

	var view strings.Builder
	for index, section := range accordion.sections {
		marker := "▸"
		if accordion.expanded[index] {
			marker = "▾"
		}
		header := marker + " " + section.Title
		header = ansi.Truncate(header, width, "…")

		if focused && index == accordion.cursor {
			view.WriteString(cursorRow.Render(header))
		} else {
			view.WriteString(headerStyle.Render(header))
		}
		view.WriteString("\n")

		if !accordion.expanded[index] {
			continue
		}
		wrapped := ansi.Wrap(section.Body, width-2, " ,.;-+|")
		for _, line := range strings.Split(wrapped, "\n") {
			view.WriteString("  ")
			view.WriteString(bodyStyle.Render(line))
			view.WriteString("\n")
		}
	}
	return strings.TrimRight(view.String(), "\n")
}
