// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/tact-project/tact/cmd/tact/cli"
)

// TestCommandTreeWellFormed walks the full command tree and validates
// that every command a user can reach has a name, a summary for the
// parent's help listing, and something to do when invoked.
func TestCommandTreeWellFormed(t *testing.T) {
	root := rootCommand()
	walkCommands(root, nil, func(command *cli.Command, path []string) {
		location := strings.Join(path, " ")
		if command.Name == "" {
			t.Errorf("%s: command with empty name", location)
		}
		if command != root && command.Summary == "" {
			t.Errorf("%s: missing summary", location)
		}
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s: neither Run nor Subcommands set", location)
		}
	})
}

// TestCommandTreeNamesUnique verifies no two siblings share a name;
// dispatch takes the first match, so a duplicate would shadow its
// sibling silently.
func TestCommandTreeNamesUnique(t *testing.T) {
	root := rootCommand()
	walkCommands(root, nil, func(command *cli.Command, path []string) {
		seen := make(map[string]bool, len(command.Subcommands))
		for _, sub := range command.Subcommands {
			if seen[sub.Name] {
				t.Errorf("%s: duplicate subcommand %q", strings.Join(path, " "), sub.Name)
			}
			seen[sub.Name] = true
		}
	})
}

func TestCommandTreeHasExpectedCommands(t *testing.T) {
	root := rootCommand()

	names := make(map[string]bool, len(root.Subcommands))
	for _, sub := range root.Subcommands {
		names[sub.Name] = true
	}

	for _, want := range []string{"gallery", "guide", "keys", "themes", "version"} {
		if !names[want] {
			t.Errorf("root command tree missing %q", want)
		}
	}
}

// walkCommands recursively visits every command in the tree, calling
// visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
