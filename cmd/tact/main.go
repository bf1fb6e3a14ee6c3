// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

// tact is a terminal accessibility toolkit: a widget gallery that
// demonstrates keyboard interaction patterns (focus trapping, roving
// selection, live announcements) and a reader for the embedded guides
// that explain them.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/tact-project/tact/cmd/tact/cli"
	"github.com/tact-project/tact/lib/version"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output return an ExitError
		// with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if hint := cli.HintOf(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

func run() error {
	logger := cli.NewLogger(slog.LevelInfo)
	return rootCommand().Execute(context.Background(), os.Args[1:], logger)
}

// rootCommand builds the complete tact command tree.
func rootCommand() *cli.Command {
	var full bool

	return &cli.Command{
		Name: "tact",
		Description: `tact: accessibility patterns for the terminal.

Explore keyboard interaction patterns (focus traps, roving selection,
live announcements) in a working widget gallery, and read the guides
that explain how each pattern works and why.`,
		Subcommands: []*cli.Command{
			galleryCommand(),
			guideCommand(),
			keysCommand(),
			themesCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Usage:   "tact version [flags]",
				Flags: func() *pflag.FlagSet {
					flagSet := pflag.NewFlagSet("version", pflag.ContinueOnError)
					flagSet.BoolVar(&full, "full", false, "include Go version and platform")
					return flagSet
				},
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					if len(args) > 0 {
						return cli.Validation("unexpected argument: %s", args[0])
					}
					if full {
						fmt.Printf("tact %s\n", version.Full())
					} else {
						fmt.Printf("tact %s\n", version.Info())
					}
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Open the widget gallery",
				Command:     "tact gallery",
			},
			{
				Description: "Read the focus traps guide",
				Command:     "tact guide focus-traps",
			},
			{
				Description: "List the guides",
				Command:     "tact guide --list",
			},
			{
				Description: "Print the default key bindings",
				Command:     "tact keys",
			},
			{
				Description: "Preview the built-in themes",
				Command:     "tact themes",
			},
		},
	}
}
