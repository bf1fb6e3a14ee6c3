// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tact-project/tact/lib/announce"
	"github.com/tact-project/tact/lib/theme"
)

// GridSelectMsg is emitted as a command when Activate lands on a data
// cell.
type GridSelectMsg struct {
	Widget string
	Row    int // Data row index in display order, 0-based.
	Column int
	Value  string
}

// Grid is a two-dimensional data table with one tab stop and a cell
// cursor. Row 0 is the header row; Activate there cycles the column's
// sort order (ascending, then descending, then none), keeping a single
// sort column at a time. Arrows move the cursor, Home/End jump within
// the row, FirstCell/LastCell jump to the corners. Cells sort as
// strings.
type Grid struct {
	id      string
	columns []string
	cells   [][]string

	row, col int   // Cursor; row 0 is the header, data starts at 1.
	sortCol  int   // -1 when unsorted.
	sortDesc bool
	order    []int // Display order of data rows.

	keys      KeyMap
	announcer *announce.Announcer
}

// NewGrid creates an unsorted grid with the cursor on the first
// header cell. Rows shorter than the column list read as empty cells.
func NewGrid(id string, columns []string, cells [][]string) *Grid {
	grid := &Grid{
		id:      id,
		columns: columns,
		cells:   cells,
		sortCol: -1,
		keys:    DefaultKeyMap,
	}
	grid.applySort()
	return grid
}

// ID implements focus.Element.
func (grid *Grid) ID() string { return grid.id }

// Focusable implements focus.Element.
func (grid *Grid) Focusable() bool { return len(grid.columns) > 0 }

// SetKeys replaces the key bindings.
func (grid *Grid) SetKeys(keys KeyMap) { grid.keys = keys }

// SetAnnouncer wires sort announcements. Nil silences them.
func (grid *Grid) SetAnnouncer(announcer *announce.Announcer) {
	grid.announcer = announcer
}

// Cursor returns the cursor position. Row 0 is the header row.
func (grid *Grid) Cursor() (row, col int) { return grid.row, grid.col }

// Cell returns the value under the cursor; headers return the column
// title.
func (grid *Grid) Cell() string {
	if grid.row == 0 {
		return grid.columns[grid.col]
	}
	return grid.cellAt(grid.row-1, grid.col)
}

// SortState returns the sort column index and direction, -1 when
// unsorted. Used for session persistence.
func (grid *Grid) SortState() (column int, descending bool) {
	return grid.sortCol, grid.sortDesc
}

// RestoreSort applies a persisted sort state without announcing.
// An out-of-range column clears the sort.
func (grid *Grid) RestoreSort(column int, descending bool) {
	if column < 0 || column >= len(grid.columns) {
		column = -1
		descending = false
	}
	grid.sortCol = column
	grid.sortDesc = descending
	grid.applySort()
}

// HandleKey processes one key event. The command, when non-nil,
// delivers a GridSelectMsg for a data cell activation.
func (grid *Grid) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(grid.columns) == 0 {
		return false, nil
	}

	switch {
	case key.Matches(msg, grid.keys.Up):
		if grid.row > 0 {
			grid.row--
		}
	case key.Matches(msg, grid.keys.Down):
		if grid.row < len(grid.cells) {
			grid.row++
		}
	case key.Matches(msg, grid.keys.Left):
		if grid.col > 0 {
			grid.col--
		}
	case key.Matches(msg, grid.keys.Right):
		if grid.col < len(grid.columns)-1 {
			grid.col++
		}
	case key.Matches(msg, grid.keys.Home):
		grid.col = 0
	case key.Matches(msg, grid.keys.End):
		grid.col = len(grid.columns) - 1
	case key.Matches(msg, grid.keys.FirstCell):
		grid.row, grid.col = 0, 0
	case key.Matches(msg, grid.keys.LastCell):
		grid.row, grid.col = len(grid.cells), len(grid.columns)-1
	case key.Matches(msg, grid.keys.Activate):
		if grid.row == 0 {
			grid.cycleSort(grid.col)
			return true, nil
		}
		row, col, value := grid.row-1, grid.col, grid.Cell()
		return true, func() tea.Msg {
			return GridSelectMsg{Widget: grid.id, Row: row, Column: col, Value: value}
		}
	default:
		return false, nil
	}
	return true, nil
}

// cycleSort advances the sort on the given column: a new column
// starts ascending, the same column flips to descending and then
// clears.
func (grid *Grid) cycleSort(column int) {
	title := grid.columns[column]
	switch {
	case grid.sortCol != column:
		grid.sortCol = column
		grid.sortDesc = false
		announceTo(grid.announcer, "Sorted by "+title+" ascending", announce.Polite)
	case !grid.sortDesc:
		grid.sortDesc = true
		announceTo(grid.announcer, "Sorted by "+title+" descending", announce.Polite)
	default:
		grid.sortCol = -1
		grid.sortDesc = false
		announceTo(grid.announcer, "Sort cleared", announce.Polite)
	}
	grid.applySort()
}

// applySort rebuilds the display order of data rows.
func (grid *Grid) applySort() {
	grid.order = make([]int, len(grid.cells))
	for index := range grid.order {
		grid.order[index] = index
	}
	if grid.sortCol < 0 {
		return
	}
	slices.SortStableFunc(grid.order, func(a, b int) int {
		compared := strings.Compare(grid.cellAt(a, grid.sortCol), grid.cellAt(b, grid.sortCol))
		if grid.sortDesc {
			return -compared
		}
		return compared
	})
}

// cellAt reads a cell by data row index (pre-display-order) and
// column, tolerating short rows.
func (grid *Grid) cellAt(row, col int) string {
	if col >= len(grid.cells[row]) {
		return ""
	}
	return grid.cells[row][col]
}

// columnWidths sizes each column to its widest content, header
// included, plus room for the sort marker.
func (grid *Grid) columnWidths() []int {
	widths := make([]int, len(grid.columns))
	for index, title := range grid.columns {
		widths[index] = ansi.StringWidth(title) + 2
	}
	for row := range grid.cells {
		for col := range grid.columns {
			if cellWidth := ansi.StringWidth(grid.cellAt(row, col)); cellWidth > widths[col] {
				widths[col] = cellWidth
			}
		}
	}
	return widths
}

// View renders the header and data rows in display order. The cursor
// cell is highlighted only while the widget has focus; the sorted
// column's header carries a direction marker.
func (grid *Grid) View(palette theme.Theme, width int, focused bool) string {
	if width <= 4 || len(grid.columns) == 0 {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(palette.HeaderForeground).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(palette.NormalText)
	cursorCell := SelectionStyle(palette)
	widths := grid.columnWidths()

	renderRow := func(values []string, rowIndex int, style lipgloss.Style) string {
		var parts []string
		for col, value := range values {
			padded := value + strings.Repeat(" ", max(0, widths[col]-ansi.StringWidth(value)))
			if focused && rowIndex == grid.row && col == grid.col {
				parts = append(parts, cursorCell.Render(padded))
			} else {
				parts = append(parts, style.Render(padded))
			}
		}
		return ansi.Truncate(strings.Join(parts, "  "), width, "…")
	}

	headers := make([]string, len(grid.columns))
	for col, title := range grid.columns {
		if col == grid.sortCol {
			marker := " ▲"
			if grid.sortDesc {
				marker = " ▼"
			}
			title += marker
		}
		headers[col] = title
	}

	var view strings.Builder
	view.WriteString(renderRow(headers, 0, headerStyle))
	for display, dataRow := range grid.order {
		row := make([]string, len(grid.columns))
		for col := range grid.columns {
			row[col] = grid.cellAt(dataRow, col)
		}
		view.WriteString("\n")
		view.WriteString(renderRow(row, display+1, cellStyle))
	}
	return view.String()
}
