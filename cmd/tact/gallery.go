// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/tact-project/tact/cmd/tact/cli"
	"github.com/tact-project/tact/lib/config"
	"github.com/tact-project/tact/lib/gallery"
	"github.com/tact-project/tact/lib/session"
)

// galleryCommand returns the "gallery" subcommand: an interactive
// showcase of every widget pattern in one screen.
func galleryCommand() *cli.Command {
	var (
		configPath string
		themeName  string
		noRestore  bool
	)

	return &cli.Command{
		Name:    "gallery",
		Summary: "Open the interactive widget gallery",
		Description: `Open the widget gallery: a tree view, data grid, combobox, accordion,
and menu bar composed into one screen, with a live announcement line
at the bottom reporting what each interaction did.

Tab and Shift+Tab move between panes. Each pane handles its own
arrow-key movement; Enter or Space activates. F10 jumps to the menu
bar, F2 opens the dialog demo (a focus trap: Tab cycles the dialog's
buttons until it closes, then focus returns to where it was).

Pane and widget state persists across runs in a session file. Edits
to the config file apply live, without restarting.`,
		Usage: "tact gallery [flags]",
		Examples: []cli.Example{
			{
				Description: "Open the gallery",
				Command:     "tact gallery",
			},
			{
				Description: "Force the high-contrast theme for this run",
				Command:     "tact gallery --theme high-contrast",
			},
			{
				Description: "Start with the default layout, discarding the saved session",
				Command:     "tact gallery --no-restore",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("gallery", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/tact/config.yaml)")
			flagSet.StringVar(&themeName, "theme", "", "theme name (overrides config and detection)")
			flagSet.BoolVar(&noRestore, "no-restore", false, "start with the default layout and discard the saved session")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return cli.Validation("the gallery needs an interactive terminal").
					WithHint("stdout is not a terminal; run tact gallery directly, not through a pipe or redirect")
			}
			return runGallery(ctx, configPath, themeName, noRestore)
		},
	}
}

// runGallery wires the gallery model to its surroundings: config,
// theme, session restore, status-line logging, the config reload
// watcher, and session save on exit.
func runGallery(ctx context.Context, configPath, themeName string, noRestore bool) error {
	cfg, effectivePath, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	palette, err := resolveTheme(themeName, cfg)
	if err != nil {
		return err
	}

	model := gallery.New(cfg, palette)

	if cfg.Gallery.RestoreSession && !noRestore {
		state, err := session.LoadState(cfg.Gallery.SessionPath)
		if err != nil {
			// A torn session file should not keep the gallery from
			// starting. The save on exit replaces it.
			fmt.Fprintf(os.Stderr, "warning: %v (starting fresh)\n", err)
		} else {
			model.RestoreSession(state)
		}
	}

	announceHandler, logger, closeLog, err := buildTUILogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// Package-level slog users (the config watcher among them) must
	// not write to stderr while the alt-screen is up.
	slog.SetDefault(logger)

	program := tea.NewProgram(model, tea.WithAltScreen())
	announceHandler.SetProgram(program)

	// Live reload: each valid rewrite of the config file lands in the
	// running program as a ConfigReloadMsg. Invalid versions are
	// logged and skipped by the watcher.
	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	if err := config.Watch(watchCtx, effectivePath, func(next *config.Config) {
		program.Send(gallery.ConfigReloadMsg{Config: next})
	}); err != nil {
		logger.Warn("config watch unavailable", "path", effectivePath, "error", err)
	}

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	final, ok := finalModel.(gallery.Model)
	if !ok {
		return nil
	}
	if err := session.Save(cfg.Gallery.SessionPath, final.SessionState()); err != nil {
		return cli.Internal("saving session: %w", err)
	}
	return nil
}
