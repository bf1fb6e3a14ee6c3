// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tact-project/tact/lib/announce"
	"github.com/tact-project/tact/lib/theme"
)

// announceTo forwards a state-change notice to the announcer, if one
// is wired. Widgets work fine without an announcer; they just go
// silent.
func announceTo(announcer *announce.Announcer, text string, priority announce.Priority) {
	if announcer == nil {
		return
	}
	announcer.Announce(text, priority, time.Now())
}

// countNoun formats "3 items" or "1 item" for announcements.
func countNoun(count int, noun string) string {
	if count == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(count) + " " + noun + "s"
}

// Highlight renders text with matchStyle at the given rune positions
// and baseStyle everywhere else. Consecutive same-style runes are
// batched into one Render call to keep ANSI output compact. Combobox
// suggestion lists and the guide topic filter use it to mark fuzzy
// match positions.
func Highlight(text string, positions []int, baseStyle, matchStyle lipgloss.Style) string {
	if len(positions) == 0 {
		return baseStyle.Render(text)
	}

	positionSet := make(map[int]bool, len(positions))
	for _, position := range positions {
		positionSet[position] = true
	}

	runes := []rune(text)
	var result strings.Builder
	runStart := 0
	highlighted := positionSet[0]

	for index := 1; index <= len(runes); index++ {
		current := index < len(runes) && positionSet[index]
		if current != highlighted || index == len(runes) {
			chunk := string(runes[runStart:index])
			if highlighted {
				result.WriteString(matchStyle.Render(chunk))
			} else {
				result.WriteString(baseStyle.Render(chunk))
			}
			runStart = index
			highlighted = current
		}
	}
	return result.String()
}

// SelectionStyle is the roving-cursor row style, shared with the guide
// and gallery pane views. The mono theme gets reverse video instead of
// a background color.
func SelectionStyle(palette theme.Theme) lipgloss.Style {
	if palette.Mono {
		return lipgloss.NewStyle().Reverse(true)
	}
	return lipgloss.NewStyle().
		Background(palette.SelectedBackground).
		Foreground(palette.SelectedForeground)
}

// overlayStyle is the base style for floating layer rows.
func overlayStyle(palette theme.Theme) lipgloss.Style {
	if palette.Mono {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Background(palette.OverlayBackground).
		Foreground(palette.OverlayForeground)
}
