// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tact-project/tact/lib/theme"
)

// Scrollbar produces a single-column scrollbar of the given height.
// The thumb marks the visible region within the total content.
//
// Track and thumb are always rendered. When the content fits in the
// visible area the thumb spans the full height, signaling "nothing to
// scroll" without the column disappearing (a layout shift screen
// magnifier users notice). Focus brightens the thumb.
func Scrollbar(palette theme.Theme, height, totalItems, visibleItems, scrollOffset int, focused bool) string {
	if height <= 0 {
		return ""
	}

	thumbColor := palette.BorderColor
	if focused {
		thumbColor = palette.FocusAccent
	}
	trackStyle := lipgloss.NewStyle().Foreground(palette.BorderColor)
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)
	if palette.Mono && focused {
		thumbStyle = thumbStyle.Bold(true)
	}

	lines := make([]string, height)

	if totalItems <= visibleItems || totalItems <= 0 {
		for index := range lines {
			lines[index] = thumbStyle.Render("┃")
		}
		return strings.Join(lines, "\n")
	}

	// Thumb size proportional to visible/total, minimum one row.
	thumbSize := height * visibleItems / totalItems
	if thumbSize < 1 {
		thumbSize = 1
	}

	scrollableRange := totalItems - visibleItems
	trackRange := height - thumbSize
	thumbOffset := 0
	if scrollableRange > 0 && trackRange > 0 {
		thumbOffset = scrollOffset * trackRange / scrollableRange
	}
	if thumbOffset+thumbSize > height {
		thumbOffset = height - thumbSize
	}

	for index := range lines {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			lines[index] = thumbStyle.Render("┃")
		} else {
			lines[index] = trackStyle.Render("│")
		}
	}

	return strings.Join(lines, "\n")
}
