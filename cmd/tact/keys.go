// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/bubbles/key"

	"github.com/tact-project/tact/cmd/tact/cli"
	"github.com/tact-project/tact/lib/gallery"
	"github.com/tact-project/tact/lib/guide"
	"github.com/tact-project/tact/lib/widget"
)

// keysCommand returns the "keys" subcommand: the default bindings and
// the names that rebind them in the config file.
func keysCommand() *cli.Command {
	return &cli.Command{
		Name:    "keys",
		Summary: "Print the default key bindings",
		Description: `Print every key binding with the name that rebinds it.

To change a binding, list the replacement keys under that name in the
keys section of the config file:

  keys:
    focus-next: ["ctrl+n"]
    activate: ["enter"]

Widget names apply in both the gallery and the guide viewer; the
remaining sections list the bindings each view adds.`,
		Usage: "tact keys",
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			printKeys(os.Stdout)
			return nil
		},
	}
}

// printKeys writes the binding tables. Keys come from the default
// maps themselves, so the table cannot drift from the code.
func printKeys(w io.Writer) {
	writer := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)

	row := func(name string, binding key.Binding) {
		fmt.Fprintf(writer, "  %s\t%s\t%s\n", name, strings.Join(binding.Keys(), ", "), binding.Help().Desc)
	}
	header := func(title string) {
		fmt.Fprintf(writer, "%s\n", title)
		fmt.Fprintf(writer, "  NAME\tKEYS\tACTION\n")
	}

	widgetKeys := widget.DefaultKeyMap
	header("WIDGETS")
	row("up", widgetKeys.Up)
	row("down", widgetKeys.Down)
	row("left", widgetKeys.Left)
	row("right", widgetKeys.Right)
	row("home", widgetKeys.Home)
	row("end", widgetKeys.End)
	row("page-up", widgetKeys.PageUp)
	row("page-down", widgetKeys.PageDown)
	row("first-cell", widgetKeys.FirstCell)
	row("last-cell", widgetKeys.LastCell)
	row("activate", widgetKeys.Activate)
	row("dismiss", widgetKeys.Dismiss)

	galleryKeys := gallery.DefaultKeyMap
	fmt.Fprintf(writer, "\t\t\n")
	header("GALLERY")
	row("focus-next", galleryKeys.FocusNext)
	row("focus-previous", galleryKeys.FocusPrevious)
	row("menu", galleryKeys.Menu)
	row("dialog", galleryKeys.Dialog)
	row("quit", galleryKeys.Quit)

	guideKeys := guide.DefaultKeyMap
	fmt.Fprintf(writer, "\t\t\n")
	header("GUIDE")
	row("focus-next", guideKeys.FocusNext)
	row("focus-previous", guideKeys.FocusPrevious)
	row("filter", guideKeys.Filter)
	row("quit", guideKeys.Quit)

	writer.Flush()
}
