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

func testGrid() *Grid {
	return NewGrid("grid", []string{"Pattern", "Role", "Keys"}, [][]string{
		{"Accordion", "region", "Up/Down"},
		{"Menubar", "menubar", "Left/Right"},
		{"Combobox", "combobox", "Type"},
	})
}

func TestGridNavigation(t *testing.T) {
	grid := testGrid()

	if row, col := grid.Cursor(); row != 0 || col != 0 {
		t.Fatalf("cursor = (%d,%d), want the first header cell", row, col)
	}

	grid.HandleKey(keyUp())
	if row, _ := grid.Cursor(); row != 0 {
		t.Fatal("up from the header row should clamp")
	}

	grid.HandleKey(keyDown())
	grid.HandleKey(keyRight())
	if row, col := grid.Cursor(); row != 1 || col != 1 {
		t.Fatalf("cursor = (%d,%d), want (1,1)", row, col)
	}
	if grid.Cell() != "region" {
		t.Fatalf("cell = %q, want %q", grid.Cell(), "region")
	}

	grid.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})
	if _, col := grid.Cursor(); col != 2 {
		t.Fatalf("col = %d, want end of row", col)
	}
	grid.HandleKey(tea.KeyMsg{Type: tea.KeyHome})
	if _, col := grid.Cursor(); col != 0 {
		t.Fatalf("col = %d, want start of row", col)
	}

	grid.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	if row, col := grid.Cursor(); row != 3 || col != 2 {
		t.Fatalf("cursor = (%d,%d), want the bottom-right corner", row, col)
	}
	grid.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlHome})
	if row, col := grid.Cursor(); row != 0 || col != 0 {
		t.Fatalf("cursor = (%d,%d), want the top-left corner", row, col)
	}
}

func TestGridSortCycle(t *testing.T) {
	grid := testGrid()
	announcer := announce.New(time.Minute)
	grid.SetAnnouncer(announcer)

	grid.HandleKey(keyEnter())
	if col, desc := grid.SortState(); col != 0 || desc {
		t.Fatalf("sort = (%d,%v), want Pattern ascending", col, desc)
	}
	if text, _, ok := announcer.Current(time.Now()); !ok || text != "Sorted by Pattern ascending" {
		t.Errorf("announcement %q, want %q", text, "Sorted by Pattern ascending")
	}

	grid.HandleKey(keyEnter())
	if col, desc := grid.SortState(); col != 0 || !desc {
		t.Fatalf("sort = (%d,%v), want Pattern descending", col, desc)
	}
	grid.HandleKey(keyDown())
	if grid.Cell() != "Menubar" {
		t.Fatalf("first data cell = %q, want %q under descending sort", grid.Cell(), "Menubar")
	}

	grid.HandleKey(keyUp())
	grid.HandleKey(keyEnter())
	if col, _ := grid.SortState(); col != -1 {
		t.Fatalf("sort column = %d, want cleared", col)
	}
	grid.HandleKey(keyDown())
	if grid.Cell() != "Accordion" {
		t.Errorf("first data cell = %q, want natural order restored", grid.Cell())
	}
}

func TestGridSortSwitchesColumn(t *testing.T) {
	grid := testGrid()
	grid.HandleKey(keyEnter())
	grid.HandleKey(keyRight())
	grid.HandleKey(keyEnter())

	if col, desc := grid.SortState(); col != 1 || desc {
		t.Fatalf("sort = (%d,%v), want the new column ascending", col, desc)
	}
}

func TestGridSelect(t *testing.T) {
	grid := testGrid()
	grid.HandleKey(keyDown())
	grid.HandleKey(keyRight())

	handled, cmd := grid.HandleKey(keyEnter())
	if !handled || cmd == nil {
		t.Fatal("enter on a data cell should emit a command")
	}
	selection, ok := cmd().(GridSelectMsg)
	if !ok {
		t.Fatalf("command produced %T, want GridSelectMsg", cmd())
	}
	want := GridSelectMsg{Widget: "grid", Row: 0, Column: 1, Value: "region"}
	if selection != want {
		t.Errorf("selection = %+v, want %+v", selection, want)
	}
}

func TestGridRestoreSort(t *testing.T) {
	grid := testGrid()
	grid.RestoreSort(2, true)

	grid.HandleKey(keyDown())
	grid.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})
	if grid.Cell() != "Up/Down" {
		t.Fatalf("cell = %q, want Keys sorted descending", grid.Cell())
	}

	grid.RestoreSort(9, true)
	if col, desc := grid.SortState(); col != -1 || desc {
		t.Errorf("sort = (%d,%v), want cleared on out-of-range restore", col, desc)
	}
}

func TestGridShortRows(t *testing.T) {
	grid := NewGrid("grid", []string{"A", "B"}, [][]string{{"only"}})
	grid.HandleKey(keyDown())
	grid.HandleKey(keyRight())
	if grid.Cell() != "" {
		t.Fatalf("cell = %q, want empty for a short row", grid.Cell())
	}
	if view := grid.View(theme.Default, 40, true); view == "" {
		t.Error("short rows should still render")
	}
}

func TestGridView(t *testing.T) {
	grid := testGrid()
	grid.HandleKey(keyEnter())

	view := ansi.Strip(grid.View(theme.Default, 60, true))
	if !strings.Contains(view, "Pattern ▲") {
		t.Errorf("view missing the sort marker:\n%s", view)
	}
	lines := strings.Split(view, "\n")
	if len(lines) != 4 {
		t.Fatalf("view lines = %d, want header plus three rows", len(lines))
	}
	if !strings.Contains(lines[1], "Accordion") {
		t.Errorf("first data row %q, want Accordion under ascending sort", lines[1])
	}
}
