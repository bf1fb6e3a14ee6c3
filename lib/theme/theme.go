// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color palette and visual properties for tact
// widgets and viewers. All colors use lipgloss ANSI 256-color codes
// for broad terminal compatibility.
//
// The fields cover universal chrome (text, selection, borders) plus
// the roles specific to accessible interaction: a focus accent that
// must stay distinguishable from ordinary borders, announcement
// styling per priority, and disabled-control text that remains
// readable rather than vanishing.
type Theme struct {
	// Name identifies the theme in config files and `tact themes`.
	Name string

	// Text colors.
	NormalText   lipgloss.Color
	FaintText    lipgloss.Color
	DisabledText lipgloss.Color

	// Cursor row / roving selection.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Focus indication. FocusAccent marks the focused element or pane
	// border; BorderColor is the resting border everywhere else. The
	// two must contrast with each other, not only with the background.
	FocusAccent lipgloss.Color
	BorderColor lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	HelpText         lipgloss.Color

	// Announcement line, by priority.
	AnnouncePolite    lipgloss.Color
	AnnounceAssertive lipgloss.Color

	// Floating layers: menus, suggestion lists, dialogs.
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color

	// Background tint for fuzzy-matched characters in suggestions.
	MatchBackground lipgloss.Color

	// CodeStyle is the chroma style name for fenced code blocks.
	CodeStyle string

	// Mono disables color entirely. Widgets substitute attributes
	// (bold, reverse) for the focus and selection roles so the theme
	// stays usable on NO_COLOR and ANSI-less terminals.
	Mono bool
}

// FocusBorder returns the border color for a pane, bright when the
// pane holds focus and resting otherwise.
func (theme Theme) FocusBorder(focused bool) lipgloss.Color {
	if focused {
		return theme.FocusAccent
	}
	return theme.BorderColor
}

// AnnounceColor returns the announcement line color for assertive or
// polite notices.
func (theme Theme) AnnounceColor(assertive bool) lipgloss.Color {
	if assertive {
		return theme.AnnounceAssertive
	}
	return theme.AnnouncePolite
}

// Default is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var Default = Theme{
	Name: "default",

	NormalText:   lipgloss.Color("252"),
	FaintText:    lipgloss.Color("245"),
	DisabledText: lipgloss.Color("240"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	FocusAccent: lipgloss.Color("75"),  // blue
	BorderColor: lipgloss.Color("240"), // dim gray

	HeaderForeground: lipgloss.Color("255"),
	HelpText:         lipgloss.Color("241"),

	AnnouncePolite:    lipgloss.Color("114"), // green
	AnnounceAssertive: lipgloss.Color("208"), // orange

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"), // slightly lighter than terminal background

	MatchBackground: lipgloss.Color("58"), // dark amber

	CodeStyle: "monokai",
}

// HighContrast maximizes luminance separation between every role.
// Pure white text on black, saturated primaries for the accent roles.
// Intended for low-vision use and harsh ambient light.
var HighContrast = Theme{
	Name: "high-contrast",

	NormalText:   lipgloss.Color("231"), // pure white
	FaintText:    lipgloss.Color("250"),
	DisabledText: lipgloss.Color("244"),

	SelectedBackground: lipgloss.Color("231"),
	SelectedForeground: lipgloss.Color("16"), // inverse: black on white

	FocusAccent: lipgloss.Color("226"), // yellow
	BorderColor: lipgloss.Color("250"),

	HeaderForeground: lipgloss.Color("231"),
	HelpText:         lipgloss.Color("250"),

	AnnouncePolite:    lipgloss.Color("46"),  // bright green
	AnnounceAssertive: lipgloss.Color("196"), // bright red

	OverlayForeground: lipgloss.Color("231"),
	OverlayBackground: lipgloss.Color("16"),

	MatchBackground: lipgloss.Color("21"), // deep blue

	CodeStyle: "github-dark",
}

// Mono carries no color at all. Every color field is the empty value
// (lipgloss renders no sequence for it) and the Mono flag tells
// widgets to express focus and selection with bold and reverse video.
var Mono = Theme{
	Name:      "mono",
	CodeStyle: "bw",
	Mono:      true,
}

// builtins in presentation order for Names and ByName.
var builtins = []Theme{Default, HighContrast, Mono}

// Names returns the built-in theme names in presentation order.
func Names() []string {
	names := make([]string, len(builtins))
	for i, theme := range builtins {
		names[i] = theme.Name
	}
	return names
}

// ByName looks up a built-in theme. The bool reports whether the name
// is known.
func ByName(name string) (Theme, bool) {
	for _, theme := range builtins {
		if theme.Name == name {
			return theme, true
		}
	}
	return Theme{}, false
}

// Detect picks the theme for a terminal capability profile. Terminals
// without color support, and any environment that sets NO_COLOR, get
// the Mono theme; everything else gets Default. An explicit theme in
// config overrides the detected choice.
func Detect(profile termenv.Profile, noColor bool) Theme {
	if noColor || profile == termenv.Ascii {
		return Mono
	}
	return Default
}
