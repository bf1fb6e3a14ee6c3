// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/tact-project/tact/cmd/tact/cli"
	"github.com/tact-project/tact/lib/theme"
)

// themesCommand returns the "themes" subcommand: the built-in theme
// names with sample styling.
func themesCommand() *cli.Command {
	return &cli.Command{
		Name:    "themes",
		Summary: "List the built-in themes with sample styling",
		Description: `List the built-in themes. Each line shows the theme name with its
text, selection, focus, and announcement colors applied, so the
preview is the theme.

Select a theme with the theme key in the config file, the TACT_THEME
environment variable, or the --theme flag on gallery and guide. With
none of those set, tact detects the terminal: NO_COLOR and colorless
terminals get mono, everything else gets default.`,
		Usage: "tact themes",
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			printThemes(os.Stdout)
			return nil
		},
	}
}

// printThemes writes one swatch line per built-in theme.
func printThemes(w io.Writer) {
	for _, name := range theme.Names() {
		palette, _ := theme.ByName(name)
		fmt.Fprintln(w, themeSwatch(palette))
	}
}

// themeSwatch renders a single theme's sample line. The mono theme
// substitutes bold for its focus accent, matching what its widgets
// do.
func themeSwatch(palette theme.Theme) string {
	text := lipgloss.NewStyle().
		Foreground(palette.NormalText).
		Render("text")

	selected := lipgloss.NewStyle().
		Background(palette.SelectedBackground).
		Foreground(palette.SelectedForeground).
		Render(" selected ")

	focusStyle := lipgloss.NewStyle().Foreground(palette.FocusAccent)
	if palette.Mono {
		focusStyle = focusStyle.Bold(true)
	}
	focus := focusStyle.Render("focus")

	notice := lipgloss.NewStyle().
		Foreground(palette.AnnouncePolite).
		Render("notice")

	return fmt.Sprintf("%-15s %s  %s  %s  %s", palette.Name, text, selected, focus, notice)
}
