// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package gallery

import "github.com/tact-project/tact/lib/widget"

// Menu and item labels. The selection dispatcher matches on these, so
// they live next to the menu data rather than inline in both places.
const (
	menuDemo  = "Demo"
	menuTheme = "Theme"
	menuHelp  = "Help"

	itemOpenDialog      = "Open dialog…"
	itemPoliteNotice    = "Polite notice"
	itemAssertiveNotice = "Assertive notice"
	itemExport          = "Export report"
	itemQuit            = "Quit"
	itemAbout           = "About"
)

// demoMenus builds the menu bar. The theme menu's item labels are the
// theme names themselves; the disabled export item demonstrates that
// roving skips what cannot be activated without hiding it.
func demoMenus() []widget.Menu {
	return []widget.Menu{
		{Title: menuDemo, Items: []widget.MenuItem{
			{Label: itemOpenDialog},
			{Label: itemPoliteNotice},
			{Label: itemAssertiveNotice},
			{Label: itemExport, Disabled: true},
			{Label: itemQuit},
		}},
		{Title: menuTheme, Items: []widget.MenuItem{
			{Label: "default"},
			{Label: "high-contrast"},
			{Label: "mono"},
		}},
		{Title: menuHelp, Items: []widget.MenuItem{
			{Label: itemAbout},
		}},
	}
}

// demoTree is a small taxonomy of the interaction patterns and
// practices this repository documents. Deep enough to show collapse,
// expand, and parent jumps; small enough to read at a glance.
func demoTree() []widget.TreeNode {
	return []widget.TreeNode{
		{Label: "Patterns", Children: []widget.TreeNode{
			{Label: "Composite", Children: []widget.TreeNode{
				{Label: "Combobox"},
				{Label: "Data grid"},
				{Label: "Menu bar"},
				{Label: "Tree view"},
			}},
			{Label: "Disclosure", Children: []widget.TreeNode{
				{Label: "Accordion"},
				{Label: "Tooltip"},
			}},
			{Label: "Windows", Children: []widget.TreeNode{
				{Label: "Alert dialog"},
				{Label: "Dialog"},
			}},
		}},
		{Label: "Practices", Children: []widget.TreeNode{
			{Label: "Focus management"},
			{Label: "Keyboard interface"},
			{Label: "Live regions"},
		}},
	}
}

// demoGridColumns returns the column titles for the pattern grid. Kept
// separate from the rows so session persistence can store the sort
// column by name.
func demoGridColumns() []string {
	return []string{"Pattern", "Role", "Tab stops", "Arrow keys"}
}

// demoGridRows summarizes how each pattern spends the user's
// keystrokes. Sorting any column keeps rows intact.
func demoGridRows() [][]string {
	return [][]string{
		{"Accordion", "group", "1", "Up and Down between headers"},
		{"Combobox", "combobox", "1", "Down opens the list"},
		{"Data grid", "grid", "1", "all four, Home and End"},
		{"Dialog", "dialog", "trap", "none, Tab cycles buttons"},
		{"Menu bar", "menubar", "1", "Left and Right, Down opens"},
		{"Tree view", "tree", "1", "Up, Down, Left, Right"},
	}
}

// demoAccordion explains the behaviors the gallery demonstrates, in
// the gallery itself.
func demoAccordion() []widget.AccordionSection {
	return []widget.AccordionSection{
		{
			Title: "Live announcements",
			Body: "Widgets report state changes on the status line below: " +
				"expansions, sort order, suggestion counts. Polite notices " +
				"queue; assertive ones take the line immediately.",
		},
		{
			Title: "Reduced motion",
			Body: "With reduce_motion set, notices hold until the next one " +
				"arrives instead of expiring on a timer.",
		},
		{
			Title: "Key bindings",
			Body: "Every binding here can be remapped in the keys section " +
				"of the config file. Run `tact keys` for the names.",
		},
		{
			Title: "Session restore",
			Body: "Expanded branches, sort order, open sections, and the " +
				"focused pane persist across runs.",
		},
	}
}

// demoPatternOptions is the completion list for the pattern combobox:
// the widget pattern vocabulary, alphabetical.
func demoPatternOptions() []string {
	return []string{
		"accordion",
		"alert",
		"alert dialog",
		"breadcrumb",
		"button",
		"carousel",
		"checkbox",
		"combobox",
		"data grid",
		"dialog",
		"disclosure",
		"feed",
		"link",
		"listbox",
		"menu bar",
		"menu button",
		"meter",
		"radio group",
		"slider",
		"spinbutton",
		"switch",
		"table",
		"tabs",
		"toolbar",
		"tooltip",
		"tree view",
		"window splitter",
	}
}

// dialogBody is the text of the confirmation demo.
const dialogBody = "The gallery claims you have unsaved changes. " +
	"Whichever button you choose, focus returns to the element that " +
	"opened the dialog."
