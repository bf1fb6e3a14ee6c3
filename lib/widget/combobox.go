// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tact-project/tact/lib/announce"
	"github.com/tact-project/tact/lib/theme"
)

// ComboSelectMsg is emitted as a command when the combobox commits a
// value, either a highlighted suggestion or the raw typed text.
type ComboSelectMsg struct {
	Widget string
	Value  string
}

// comboSuggestion is one filtered option with its match decoration.
type comboSuggestion struct {
	option    string
	score     int
	positions []int
}

// Combobox is a single-line text input with a suggestion list
// filtered by fuzzy match over a fixed option set. Typing opens and
// refilters the list, Down moves the highlight from the input into
// the list, Enter commits and closes. Escape closes the list keeping
// the typed text; a second escape clears the text. A text field has
// to consume printable keys, so the combobox routes on key types
// directly and the shared bindings do not apply inside it.
type Combobox struct {
	id      string
	label   string
	options []string

	input     []rune
	cursor    int
	open      bool
	listIndex int // Highlighted suggestion; -1 means the input line.
	matches   []comboSuggestion

	announcer *announce.Announcer
	lastCount int
}

// NewCombobox creates a closed combobox with an empty input.
func NewCombobox(id, label string, options []string) *Combobox {
	return &Combobox{
		id:        id,
		label:     label,
		options:   options,
		listIndex: -1,
		lastCount: -1,
	}
}

// ID implements focus.Element.
func (combo *Combobox) ID() string { return combo.id }

// Focusable implements focus.Element.
func (combo *Combobox) Focusable() bool { return true }

// SetAnnouncer wires suggestion-count announcements. Nil silences
// them.
func (combo *Combobox) SetAnnouncer(announcer *announce.Announcer) {
	combo.announcer = announcer
}

// Value returns the current input text.
func (combo *Combobox) Value() string { return string(combo.input) }

// SetValue replaces the input text without opening the list.
func (combo *Combobox) SetValue(value string) {
	combo.input = []rune(value)
	combo.cursor = len(combo.input)
}

// IsOpen reports whether the suggestion list is showing.
func (combo *Combobox) IsOpen() bool { return combo.open }

// ListIndex returns the highlighted suggestion index, -1 while the
// highlight is on the input line.
func (combo *Combobox) ListIndex() int { return combo.listIndex }

// Suggestions returns the current filtered options in rank order.
func (combo *Combobox) Suggestions() []string {
	var options []string
	for _, match := range combo.matches {
		options = append(options, match.option)
	}
	return options
}

// HandleKey processes one key event. The command, when non-nil,
// delivers a ComboSelectMsg.
func (combo *Combobox) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt {
			return false, nil
		}
		for _, character := range msg.Runes {
			combo.insertRune(character)
		}
		if combo.open {
			combo.refilter()
			combo.announceCount()
		} else {
			combo.openList()
		}

	case tea.KeyBackspace:
		if combo.cursor > 0 {
			combo.input = append(combo.input[:combo.cursor-1], combo.input[combo.cursor:]...)
			combo.cursor--
			if combo.open {
				combo.refilter()
				combo.announceCount()
			}
		}

	case tea.KeyLeft:
		combo.listIndex = -1
		if combo.cursor > 0 {
			combo.cursor--
		}

	case tea.KeyRight:
		combo.listIndex = -1
		if combo.cursor < len(combo.input) {
			combo.cursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		combo.listIndex = -1
		combo.cursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		combo.listIndex = -1
		combo.cursor = len(combo.input)

	case tea.KeyDown:
		if !combo.open {
			combo.openList()
			return true, nil
		}
		if len(combo.matches) == 0 {
			return true, nil
		}
		if combo.listIndex < 0 {
			combo.listIndex = 0
		} else {
			combo.listIndex = (combo.listIndex + 1) % len(combo.matches)
		}

	case tea.KeyUp:
		if !combo.open || len(combo.matches) == 0 {
			return true, nil
		}
		if combo.listIndex <= 0 {
			combo.listIndex = -1
		} else {
			combo.listIndex--
		}

	case tea.KeyEnter:
		value := string(combo.input)
		if combo.open && combo.listIndex >= 0 && combo.listIndex < len(combo.matches) {
			value = combo.matches[combo.listIndex].option
			combo.input = []rune(value)
			combo.cursor = len(combo.input)
		}
		combo.close()
		return true, func() tea.Msg {
			return ComboSelectMsg{Widget: combo.id, Value: value}
		}

	case tea.KeyEscape:
		if combo.open {
			combo.close()
			return true, nil
		}
		if len(combo.input) > 0 {
			combo.input = combo.input[:0]
			combo.cursor = 0
			return true, nil
		}
		return false, nil

	default:
		return false, nil
	}
	return true, nil
}

func (combo *Combobox) insertRune(character rune) {
	line := make([]rune, len(combo.input)+1)
	copy(line, combo.input[:combo.cursor])
	line[combo.cursor] = character
	copy(line[combo.cursor+1:], combo.input[combo.cursor:])
	combo.input = line
	combo.cursor++
}

func (combo *Combobox) openList() {
	combo.open = true
	combo.listIndex = -1
	combo.refilter()
	combo.announceCount()
}

func (combo *Combobox) close() {
	combo.open = false
	combo.listIndex = -1
	combo.lastCount = -1
}

// refilter rebuilds the suggestion list for the current input. An
// empty input shows every option in its original order; otherwise
// options rank by fuzzy score, original order breaking ties.
func (combo *Combobox) refilter() {
	combo.matches = combo.matches[:0]
	pattern := string(combo.input)

	if pattern == "" {
		for _, option := range combo.options {
			combo.matches = append(combo.matches, comboSuggestion{option: option})
		}
	} else {
		for _, option := range combo.options {
			result := FuzzyMatch(option, pattern)
			if result.Score <= 0 {
				continue
			}
			combo.matches = append(combo.matches, comboSuggestion{
				option:    option,
				score:     result.Score,
				positions: result.Positions,
			})
		}
		slices.SortStableFunc(combo.matches, func(a, b comboSuggestion) int {
			return b.score - a.score
		})
	}

	if combo.listIndex >= len(combo.matches) {
		combo.listIndex = len(combo.matches) - 1
	}
}

// announceCount reports the suggestion count when it changed since
// the last report.
func (combo *Combobox) announceCount() {
	if !combo.open || len(combo.matches) == combo.lastCount {
		return
	}
	combo.lastCount = len(combo.matches)
	announceTo(combo.announcer, countNoun(len(combo.matches), "suggestion"), announce.Polite)
}

// View renders the label and input line. The cursor cell shows in
// reverse video while the widget has focus and the highlight is on
// the input.
func (combo *Combobox) View(palette theme.Theme, width int, focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(palette.FaintText)
	textStyle := lipgloss.NewStyle().Foreground(palette.NormalText)
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	line := labelStyle.Render(combo.label + ": ")
	if focused && combo.listIndex < 0 {
		if combo.cursor >= len(combo.input) {
			line += textStyle.Render(string(combo.input)) + cursorStyle.Render(" ")
		} else {
			line += textStyle.Render(string(combo.input[:combo.cursor])) +
				cursorStyle.Render(string(combo.input[combo.cursor:combo.cursor+1])) +
				textStyle.Render(string(combo.input[combo.cursor+1:]))
		}
	} else {
		line += textStyle.Render(string(combo.input))
	}
	return ansi.Truncate(line, width, "")
}

// OverlayLines renders the open suggestion list for splicing beneath
// the input. The second return is the column where the input text
// begins, so the list aligns under what the user typed. Nil while the
// list is closed or empty.
func (combo *Combobox) OverlayLines(palette theme.Theme) ([]string, int) {
	if !combo.open || len(combo.matches) == 0 {
		return nil, 0
	}
	anchorX := ansi.StringWidth(combo.label + ": ")

	maxOption := 0
	for _, match := range combo.matches {
		if optionWidth := ansi.StringWidth(match.option); optionWidth > maxOption {
			maxOption = optionWidth
		}
	}
	innerWidth := maxOption + 2

	base := overlayStyle(palette)
	selected := SelectionStyle(palette)
	matchStyle := base.Background(palette.MatchBackground)
	if palette.Mono {
		matchStyle = lipgloss.NewStyle().Bold(true)
	}

	var lines []string
	for index, match := range combo.matches {
		marker := " "
		if index == combo.listIndex {
			marker = ">"
		}

		var body string
		if index == combo.listIndex {
			body = selected.Render(match.option)
		} else {
			body = Highlight(match.option, match.positions, base, matchStyle)
		}

		pad := innerWidth - 2 - ansi.StringWidth(match.option)
		if pad < 0 {
			pad = 0
		}
		rowStyle := base
		if index == combo.listIndex {
			rowStyle = selected
		}
		lines = append(lines, rowStyle.Render(" "+marker+" ")+body+rowStyle.Render(strings.Repeat(" ", pad)+" "))
	}
	return lines, anchorX
}
