// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/tact-project/tact/lib/announce"
	"github.com/tact-project/tact/lib/theme"
)

func testAccordion() *Accordion {
	return NewAccordion("acc", []AccordionSection{
		{Title: "Keyboard", Body: "Every control is reachable without a pointer."},
		{Title: "Contrast", Body: "Text keeps a 7:1 ratio in the high-contrast theme."},
		{Title: "Motion", Body: "Reduced motion disables timed fades."},
	})
}

func keyDown() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyDown} }
func keyUp() tea.KeyMsg    { return tea.KeyMsg{Type: tea.KeyUp} }
func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEscape} }

func TestAccordionNavigation(t *testing.T) {
	accordion := testAccordion()

	if handled, _ := accordion.HandleKey(keyDown()); !handled {
		t.Fatal("down not consumed")
	}
	if accordion.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", accordion.Cursor())
	}

	// Clamped at the edges, no wrap.
	accordion.HandleKey(keyDown())
	accordion.HandleKey(keyDown())
	if accordion.Cursor() != 2 {
		t.Errorf("cursor = %d after overshoot, want 2", accordion.Cursor())
	}
	accordion.HandleKey(tea.KeyMsg{Type: tea.KeyHome})
	if accordion.Cursor() != 0 {
		t.Errorf("cursor = %d after home, want 0", accordion.Cursor())
	}
	accordion.HandleKey(keyUp())
	if accordion.Cursor() != 0 {
		t.Errorf("cursor = %d after up at top, want 0", accordion.Cursor())
	}
	accordion.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})
	if accordion.Cursor() != 2 {
		t.Errorf("cursor = %d after end, want 2", accordion.Cursor())
	}
}

func TestAccordionToggle(t *testing.T) {
	accordion := testAccordion()
	announcer := announce.New(time.Minute)
	accordion.SetAnnouncer(announcer)

	accordion.HandleKey(keyEnter())
	if !accordion.IsExpanded(0) {
		t.Fatal("section 0 should be expanded")
	}
	if text, _, ok := announcer.Current(time.Now()); !ok || text != "Keyboard expanded" {
		t.Errorf("announcement %q, want %q", text, "Keyboard expanded")
	}

	accordion.HandleKey(keyEnter())
	if accordion.IsExpanded(0) {
		t.Fatal("section 0 should be collapsed again")
	}
}

func TestAccordionSingleExpand(t *testing.T) {
	accordion := testAccordion()
	accordion.SetSingleExpand(true)

	accordion.HandleKey(keyEnter())
	accordion.HandleKey(keyDown())
	accordion.HandleKey(keyEnter())

	if accordion.IsExpanded(0) {
		t.Error("single-expand should collapse section 0")
	}
	if !accordion.IsExpanded(1) {
		t.Error("section 1 should be expanded")
	}
}

func TestAccordionSessionRoundTrip(t *testing.T) {
	accordion := testAccordion()
	accordion.HandleKey(keyEnter())
	accordion.HandleKey(keyDown())
	accordion.HandleKey(keyDown())
	accordion.HandleKey(keyEnter())

	open := accordion.OpenSections()
	if len(open) != 2 || open[0] != "Keyboard" || open[1] != "Motion" {
		t.Fatalf("OpenSections = %v", open)
	}

	restored := testAccordion()
	restored.RestoreOpen(open)
	if !restored.IsExpanded(0) || !restored.IsExpanded(2) || restored.IsExpanded(1) {
		t.Error("RestoreOpen did not reproduce the expansion state")
	}
}

func TestAccordionUnhandledKeyFallsThrough(t *testing.T) {
	accordion := testAccordion()
	if handled, _ := accordion.HandleKey(keyEsc()); handled {
		t.Error("esc is not an accordion key and should fall through")
	}
}

func TestAccordionView(t *testing.T) {
	accordion := testAccordion()
	accordion.HandleKey(keyEnter())

	view := ansi.Strip(accordion.View(theme.Default, 60, true))
	if !strings.Contains(view, "▾ Keyboard") {
		t.Error("expanded section should show an open marker")
	}
	if !strings.Contains(view, "▸ Contrast") {
		t.Error("collapsed section should show a closed marker")
	}
	if !strings.Contains(view, "reachable without a pointer") {
		t.Error("expanded body missing from the view")
	}

	empty := NewAccordion("empty", nil)
	if empty.Focusable() {
		t.Error("an accordion without sections must not be focusable")
	}
	if empty.View(theme.Default, 60, true) != "" {
		t.Error("empty accordion should render nothing")
	}
}
