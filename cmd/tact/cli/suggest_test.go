// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "gallery"},
		{Name: "guide"},
		{Name: "themes"},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"galery", "gallery"},   // dropped letter
		{"gudie", "guide"},      // transposition
		{"theme", "themes"},     // missing plural
		{"verison", "version"},  // transposition
		{"zzzzzz", ""},          // nothing close
		{"galleryx", "gallery"}, // extra letter
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := suggestCommand(test.input, commands); got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("gallery", pflag.ContinueOnError)
		flagSet.String("theme", "", "theme name")
		flagSet.Bool("no-restore", false, "skip session restore")
		flagSet.String("log-file", "", "log file path")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"close long flag", []string{"--thme"}, "--theme"},
		{"equals form", []string{"--thme=mono"}, "--theme"},
		{"hyphenated", []string{"--no-restor"}, "--no-restore"},
		{"defined flag skipped", []string{"--theme", "--log-fil"}, "--log-file"},
		{"distant flag", []string{"--completely-different"}, ""},
		{"no flags in args", []string{"positional"}, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := suggestFlag(test.args, newFlags()); got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
