// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Splice replaces a rectangular region of a rendered view with overlay
// content. Overlay lines are placed starting at cell (anchorX, anchorY)
// in screen coordinates. Truncation is ANSI-aware so escape sequences
// in the underlying view survive on both sides of the overlay.
//
// Each overlay line is spliced at its own width, so ragged overlays
// (a menu wider at the top than the bottom) leave the underlying view
// visible beside their narrow lines.
func Splice(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}
	if anchorX < 0 {
		anchorX = 0
	}

	viewLines := strings.Split(view, "\n")

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)
		overlayWidth := ansi.StringWidth(overlayLine)

		// Assemble prefix + reset + overlay + reset + suffix. The
		// resets isolate the overlay from any open SGR state in the
		// underlying line.
		var spliced strings.Builder
		if anchorX > 0 {
			spliced.WriteString(ansi.Truncate(viewLine, anchorX, ""))
		}
		spliced.WriteString("\x1b[0m")
		spliced.WriteString(overlayLine)
		spliced.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < viewLineWidth {
			spliced.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[viewLineIndex] = spliced.String()
	}

	return strings.Join(viewLines, "\n")
}

// PadLine pads styled content to innerWidth display cells and wraps it
// in one background-colored space on each side. Overlay rows rendered
// this way form a uniform block regardless of content width.
func PadLine(styledContent string, innerWidth int, background lipgloss.Style) string {
	rightPad := innerWidth - ansi.StringWidth(styledContent)
	if rightPad < 0 {
		rightPad = 0
	}
	return background.Render(" ") +
		styledContent +
		background.Render(strings.Repeat(" ", rightPad+1))
}

// CenterAnchor returns the top-left anchor that centers an overlay of
// the given size within a view of the given size. Anchors never go
// negative; an overlay larger than the view pins to the top-left
// corner.
func CenterAnchor(viewWidth, viewHeight, overlayWidth, overlayHeight int) (anchorX, anchorY int) {
	anchorX = (viewWidth - overlayWidth) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	anchorY = (viewHeight - overlayHeight) / 2
	if anchorY < 0 {
		anchorY = 0
	}
	return anchorX, anchorY
}
