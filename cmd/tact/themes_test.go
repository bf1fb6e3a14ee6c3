// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tact-project/tact/lib/theme"
)

func TestPrintThemes(t *testing.T) {
	var buffer bytes.Buffer
	printThemes(&buffer)
	output := buffer.String()

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != len(theme.Names()) {
		t.Fatalf("got %d lines, want one per theme (%d)", len(lines), len(theme.Names()))
	}

	for _, name := range theme.Names() {
		if !strings.Contains(output, name) {
			t.Errorf("themes output missing %q", name)
		}
	}

	// Each swatch carries the sample words regardless of styling.
	for _, sample := range []string{"text", "selected", "focus", "notice"} {
		if !strings.Contains(output, sample) {
			t.Errorf("themes output missing sample %q", sample)
		}
	}
}
