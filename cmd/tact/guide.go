// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/tact-project/tact/cmd/tact/cli"
	"github.com/tact-project/tact/lib/announce"
	"github.com/tact-project/tact/lib/guide"
	"github.com/tact-project/tact/lib/session"
)

// guideCommand returns the "guide" subcommand: the embedded
// accessibility guides in a two-pane reader.
func guideCommand() *cli.Command {
	var (
		configPath string
		themeName  string
		listTopics bool
	)

	return &cli.Command{
		Name:    "guide",
		Summary: "Read the accessibility guides",
		Description: `Read the embedded accessibility guides in a two-pane viewer: topics
on the left, rendered content on the right.

With a topic argument, the viewer opens on that guide. Without one,
it returns to the guide you were reading last, or the first topic on
a fresh start. Press / to filter topics by fuzzy match.`,
		Usage: "tact guide [topic] [flags]",
		Examples: []cli.Example{
			{
				Description: "Open the reader on the last topic read",
				Command:     "tact guide",
			},
			{
				Description: "Jump straight to a topic",
				Command:     "tact guide focus-traps",
			},
			{
				Description: "Print the topic list without opening the viewer",
				Command:     "tact guide --list",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("guide", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/tact/config.yaml)")
			flagSet.StringVar(&themeName, "theme", "", "theme name (overrides config and detection)")
			flagSet.BoolVar(&listTopics, "list", false, "print available topics and exit")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			topics, err := guide.Topics()
			if err != nil {
				return cli.Internal("loading embedded guides: %w", err)
			}

			if listTopics {
				writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
				for _, topic := range topics {
					fmt.Fprintf(writer, "%s\t%s\n", topic.Slug, topic.Title)
				}
				return writer.Flush()
			}

			requested := ""
			if len(args) > 0 {
				requested = args[0]
			}
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return cli.Validation("the guide viewer needs an interactive terminal").
					WithHint("use 'tact guide --list' to print the topics without a terminal")
			}

			return runGuide(configPath, themeName, requested, topics)
		},
	}
}

// runGuide opens the viewer, selecting the requested topic or the one
// saved in the session, and persists the reading position on exit.
func runGuide(configPath, themeName, requested string, topics []guide.Topic) error {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	palette, err := resolveTheme(themeName, cfg)
	if err != nil {
		return err
	}

	announcer := announce.New(cfg.VisibleDuration())
	announcer.SetHold(cfg.ReduceMotion)

	keys := guide.DefaultKeyMap.Apply(cfg.Keys)
	viewer := guide.NewViewer(topics, palette, keys, announcer)

	// The session file carries the gallery's widget state too; only
	// the topic slug belongs to the guide. Load errors are ignored
	// here because the viewer works fine from the first topic.
	state, stateErr := session.LoadState(cfg.Gallery.SessionPath)

	switch {
	case requested != "":
		if !viewer.Select(requested) {
			return cli.NotFound("unknown topic %q", requested).
				WithHint("run 'tact guide --list' to see the available topics")
		}
	case stateErr == nil && state.GuideTopic != "":
		// Stale slugs are skipped silently; the viewer stays on the
		// first topic.
		viewer.Select(state.GuideTopic)
	}

	announceHandler, logger, closeLog, err := buildTUILogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	program := tea.NewProgram(viewer, tea.WithAltScreen())
	announceHandler.SetProgram(program)

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	final, ok := finalModel.(guide.Viewer)
	if !ok {
		return nil
	}
	state.GuideTopic = final.SelectedSlug()
	if err := session.Save(cfg.Gallery.SessionPath, state); err != nil {
		return cli.Internal("saving session: %w", err)
	}
	return nil
}
