// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tact-project/tact/lib/announce"
	"github.com/tact-project/tact/lib/theme"
)

// typeaheadWindow is how long typed characters keep accumulating
// into one search buffer before the buffer resets.
const typeaheadWindow = 750 * time.Millisecond

// TreeNode is one node of a tree widget's data.
type TreeNode struct {
	Label    string
	Children []TreeNode
}

// TreeSelectMsg is emitted as a command when Activate lands on a
// leaf node.
type TreeSelectMsg struct {
	Widget string
	Path   string // Slash-joined child indices from the root, e.g. "0/2".
	Label  string
}

// treeRow is one visible line of the flattened tree. The row list is
// rebuilt from the node data on every expansion change; rows of
// collapsed subtrees simply do not exist.
type treeRow struct {
	path   string
	label  string
	depth  int
	parent int // Visible-row index of the parent, -1 for roots.
	leaf   bool
}

// Tree is a hierarchical list with expandable branches. The widget is
// one tab stop: Up/Down move linearly through visible rows, Left
// collapses the branch under the cursor or jumps to its parent, Right
// expands or enters the first child, Activate toggles a branch or
// selects a leaf. Typed characters accumulate into a typeahead buffer
// that jumps to the best-matching visible label.
type Tree struct {
	id        string
	roots     []TreeNode
	expanded  map[string]bool
	rows      []treeRow
	cursor    int
	keys      KeyMap
	announcer *announce.Announcer

	typed   string
	typedAt time.Time
}

// NewTree creates a tree with every branch collapsed.
func NewTree(id string, roots []TreeNode) *Tree {
	tree := &Tree{
		id:       id,
		roots:    roots,
		expanded: make(map[string]bool),
		keys:     DefaultKeyMap,
	}
	tree.rebuild()
	return tree
}

// ID implements focus.Element.
func (tree *Tree) ID() string { return tree.id }

// Focusable implements focus.Element.
func (tree *Tree) Focusable() bool { return len(tree.roots) > 0 }

// SetKeys replaces the key bindings. Characters claimed by a binding
// never reach the typeahead buffer, so dropping the vim-style letter
// keys widens what typeahead can match.
func (tree *Tree) SetKeys(keys KeyMap) { tree.keys = keys }

// SetAnnouncer wires expansion announcements. Nil silences them.
func (tree *Tree) SetAnnouncer(announcer *announce.Announcer) {
	tree.announcer = announcer
}

// Cursor returns the visible-row index under the cursor.
func (tree *Tree) Cursor() int { return tree.cursor }

// CurrentPath returns the path of the row under the cursor, "" when
// the tree is empty.
func (tree *Tree) CurrentPath() string {
	if tree.cursor < 0 || tree.cursor >= len(tree.rows) {
		return ""
	}
	return tree.rows[tree.cursor].path
}

// Len returns the number of visible rows.
func (tree *Tree) Len() int { return len(tree.rows) }

// ExpandedPaths returns the expanded branch paths in sorted order,
// for session persistence. Branches hidden inside a collapsed
// ancestor are included; they reappear expanded when the ancestor
// opens.
func (tree *Tree) ExpandedPaths() []string {
	var paths []string
	for path, open := range tree.expanded {
		if open {
			paths = append(paths, path)
		}
	}
	slices.Sort(paths)
	return paths
}

// RestoreExpanded replaces the expansion state with the given paths.
// Unknown paths are harmless; restoring never announces.
func (tree *Tree) RestoreExpanded(paths []string) {
	tree.expanded = make(map[string]bool, len(paths))
	for _, path := range paths {
		tree.expanded[path] = true
	}
	tree.rebuild()
	if tree.cursor >= len(tree.rows) {
		tree.cursor = len(tree.rows) - 1
	}
}

// HandleKey processes one key event. Handled reports whether the
// tree consumed the key; the command, when non-nil, delivers a
// TreeSelectMsg for a leaf activation.
func (tree *Tree) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(tree.rows) == 0 {
		return false, nil
	}

	switch {
	case key.Matches(msg, tree.keys.Up):
		if tree.cursor > 0 {
			tree.cursor--
		}
	case key.Matches(msg, tree.keys.Down):
		if tree.cursor < len(tree.rows)-1 {
			tree.cursor++
		}
	case key.Matches(msg, tree.keys.Home):
		tree.cursor = 0
	case key.Matches(msg, tree.keys.End):
		tree.cursor = len(tree.rows) - 1
	case key.Matches(msg, tree.keys.Left):
		tree.collapseOrParent()
	case key.Matches(msg, tree.keys.Right):
		tree.expandOrFirstChild()
	case key.Matches(msg, tree.keys.Activate):
		return true, tree.activate()
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 && unicode.IsPrint(msg.Runes[0]) {
			tree.typeahead(msg.Runes[0], time.Now())
			return true, nil
		}
		return false, nil
	}
	return true, nil
}

// collapseOrParent handles Left:
//   - on an expanded branch: collapse it
//   - on anything else: move to the parent row
func (tree *Tree) collapseOrParent() {
	row := tree.rows[tree.cursor]
	if !row.leaf && tree.expanded[row.path] {
		tree.collapse(row)
		return
	}
	if row.parent >= 0 {
		tree.cursor = row.parent
	}
}

// expandOrFirstChild handles Right:
//   - on a collapsed branch: expand it
//   - on an expanded branch: move to the first child
//   - on a leaf: no-op
func (tree *Tree) expandOrFirstChild() {
	row := tree.rows[tree.cursor]
	if row.leaf {
		return
	}
	if !tree.expanded[row.path] {
		tree.expand(row)
		return
	}
	// The first child sits on the next row after its expanded parent.
	if tree.cursor+1 < len(tree.rows) {
		tree.cursor++
	}
}

// activate toggles a branch or selects a leaf.
func (tree *Tree) activate() tea.Cmd {
	row := tree.rows[tree.cursor]
	if row.leaf {
		return func() tea.Msg {
			return TreeSelectMsg{Widget: tree.id, Path: row.path, Label: row.label}
		}
	}
	if tree.expanded[row.path] {
		tree.collapse(row)
	} else {
		tree.expand(row)
	}
	return nil
}

func (tree *Tree) collapse(row treeRow) {
	delete(tree.expanded, row.path)
	tree.rebuild()
	tree.cursorToPath(row.path)
	announceTo(tree.announcer, row.label+" collapsed", announce.Polite)
}

func (tree *Tree) expand(row treeRow) {
	tree.expanded[row.path] = true
	tree.rebuild()
	tree.cursorToPath(row.path)
	node, ok := tree.nodeAt(row.path)
	if !ok {
		return
	}
	announceTo(tree.announcer,
		row.label+" expanded, "+countNoun(len(node.Children), "item"), announce.Polite)
}

// typeahead accumulates one typed character and jumps the cursor to
// the best-matching visible row. Characters older than the window
// are discarded first.
func (tree *Tree) typeahead(r rune, now time.Time) {
	if now.Sub(tree.typedAt) > typeaheadWindow {
		tree.typed = ""
	}
	tree.typed += string(unicode.ToLower(r))
	tree.typedAt = now

	if target := tree.typeaheadTarget(); target >= 0 {
		tree.cursor = target
	}
}

// typeaheadTarget picks the row matching the buffer: the first prefix
// match scanning forward from the cursor with wraparound, or the
// closest label by edit distance when nothing matches by prefix.
// Distance is measured against the label's leading runes so long
// labels are not penalized, and a buffer with nothing even close
// leaves the cursor where it is.
func (tree *Tree) typeaheadTarget() int {
	for offset := 1; offset <= len(tree.rows); offset++ {
		index := (tree.cursor + offset) % len(tree.rows)
		if strings.HasPrefix(strings.ToLower(tree.rows[index].label), tree.typed) {
			return index
		}
	}

	buffer := []rune(tree.typed)
	best, bestDistance := -1, len(buffer)
	for index, row := range tree.rows {
		label := []rune(strings.ToLower(row.label))
		if len(label) > len(buffer) {
			label = label[:len(buffer)]
		}
		distance := levenshtein.ComputeDistance(tree.typed, string(label))
		if distance < bestDistance {
			best, bestDistance = index, distance
		}
	}
	return best
}

// rebuild flattens the node data into visible rows, honoring the
// expansion state.
func (tree *Tree) rebuild() {
	tree.rows = tree.rows[:0]
	tree.walk(tree.roots, "", 0, -1)
}

func (tree *Tree) walk(nodes []TreeNode, prefix string, depth, parent int) {
	for index, node := range nodes {
		path := strconv.Itoa(index)
		if prefix != "" {
			path = prefix + "/" + path
		}
		row := treeRow{
			path:   path,
			label:  node.Label,
			depth:  depth,
			parent: parent,
			leaf:   len(node.Children) == 0,
		}
		tree.rows = append(tree.rows, row)
		if !row.leaf && tree.expanded[path] {
			tree.walk(node.Children, path, depth+1, len(tree.rows)-1)
		}
	}
}

// cursorToPath places the cursor on the row with the given path,
// clamping when the path is no longer visible.
func (tree *Tree) cursorToPath(path string) {
	for index, row := range tree.rows {
		if row.path == path {
			tree.cursor = index
			return
		}
	}
	if tree.cursor >= len(tree.rows) {
		tree.cursor = len(tree.rows) - 1
	}
}

// nodeAt resolves a path back to its node in the source data.
func (tree *Tree) nodeAt(path string) (TreeNode, bool) {
	nodes := tree.roots
	var node TreeNode
	for _, part := range strings.Split(path, "/") {
		index, err := strconv.Atoi(part)
		if err != nil || index < 0 || index >= len(nodes) {
			return TreeNode{}, false
		}
		node = nodes[index]
		nodes = node.Children
	}
	return node, true
}

// View renders the visible rows. Branches carry a disclosure marker
// and children indent under their parent. The cursor row is
// highlighted only while the widget has focus.
func (tree *Tree) View(palette theme.Theme, width int, focused bool) string {
	if width <= 4 || len(tree.rows) == 0 {
		return ""
	}

	branchStyle := lipgloss.NewStyle().Foreground(palette.HeaderForeground)
	leafStyle := lipgloss.NewStyle().Foreground(palette.NormalText)
	cursorRow := SelectionStyle(palette)

	var view strings.Builder
	for index, row := range tree.rows {
		marker := " "
		if !row.leaf {
			marker = "▸"
			if tree.expanded[row.path] {
				marker = "▾"
			}
		}
		line := strings.Repeat("  ", row.depth) + marker + " " + row.label
		line = ansi.Truncate(line, width, "…")

		switch {
		case focused && index == tree.cursor:
			view.WriteString(cursorRow.Render(line))
		case row.leaf:
			view.WriteString(leafStyle.Render(line))
		default:
			view.WriteString(branchStyle.Render(line))
		}
		view.WriteString("\n")
	}
	return strings.TrimRight(view.String(), "\n")
}
