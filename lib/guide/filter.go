// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package guide

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/tact-project/tact/lib/theme"
	"github.com/tact-project/tact/lib/widget"
)

// TopicFilter narrows the topic list with fuzzy matching. The filter
// is client-side only: the topic set is embedded and tiny, so every
// keystroke re-scores the whole list.
type TopicFilter struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// TopicMatch is one topic surviving the filter: its position in the
// unfiltered slice and the matched rune positions in the title, for
// highlight rendering. No positions means the match came through the
// slug or an empty filter.
type TopicMatch struct {
	Index     int
	Positions []int

	score int
}

// Apply scores every topic against the filter text, best match first.
// An empty filter passes everything through in presentation order.
func (filter *TopicFilter) Apply(topics []Topic) []TopicMatch {
	if filter.Input == "" {
		all := make([]TopicMatch, len(topics))
		for index := range topics {
			all[index] = TopicMatch{Index: index}
		}
		return all
	}

	var matches []TopicMatch
	for index, topic := range topics {
		result := widget.FuzzyMatch(topic.Title, filter.Input)
		match := TopicMatch{Index: index, Positions: result.Positions, score: result.Score}

		// The slug can match where the title does not: a hyphenated
		// query hits "focus-traps" but misses "Focus Traps". Slug
		// matches carry no title highlights.
		if slug := widget.FuzzyMatch(topic.Slug, filter.Input); slug.Score > match.score {
			match = TopicMatch{Index: index, score: slug.Score}
		}

		if match.score <= 0 {
			continue
		}
		matches = append(matches, match)
	}

	slices.SortStableFunc(matches, func(a, b TopicMatch) int {
		return b.score - a.score
	})
	return matches
}

// HandleRune appends a typed character to the filter query.
func (filter *TopicFilter) HandleRune(character rune) {
	filter.Input += string(character)
}

// HandleBackspace removes the last character from the filter query.
// Returns true if the input changed.
func (filter *TopicFilter) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter query and deactivates it.
func (filter *TopicFilter) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the query with a
// cursor. When inactive with text, shows the query as a dim reminder
// that the list is narrowed. When inactive and empty, hidden.
func (filter *TopicFilter) View(palette theme.Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(palette.HeaderForeground).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(palette.NormalText).
			Width(width).
			Render("/ " + filter.Input + cursor)
	}

	return lipgloss.NewStyle().
		Foreground(palette.FaintText).
		Width(width).
		Render("filter: " + filter.Input)
}
