// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package theme

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		got, ok := ByName(name)
		if !ok {
			t.Fatalf("ByName(%q) not found", name)
		}
		if got.Name != name {
			t.Errorf("ByName(%q) returned theme named %q", name, got.Name)
		}
	}

	if _, ok := ByName("solarized"); ok {
		t.Error("ByName accepted an unknown theme name")
	}
	if _, ok := ByName("Default"); ok {
		t.Error("ByName should be case-sensitive")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		profile termenv.Profile
		noColor bool
		want    string
	}{
		{"truecolor", termenv.TrueColor, false, "default"},
		{"ansi256", termenv.ANSI256, false, "default"},
		{"ascii", termenv.Ascii, false, "mono"},
		{"no_color env", termenv.TrueColor, true, "mono"},
	}
	for _, test := range tests {
		got := Detect(test.profile, test.noColor)
		if got.Name != test.want {
			t.Errorf("%s: Detect returned %q, want %q", test.name, got.Name, test.want)
		}
	}
}

func TestFocusBorder(t *testing.T) {
	if Default.FocusBorder(true) != Default.FocusAccent {
		t.Error("focused border should use the focus accent")
	}
	if Default.FocusBorder(false) != Default.BorderColor {
		t.Error("resting border should use the border color")
	}
	if Default.FocusAccent == Default.BorderColor {
		t.Error("focus accent must be distinguishable from the resting border")
	}
}

func TestMonoCarriesNoColor(t *testing.T) {
	if !Mono.Mono {
		t.Fatal("Mono theme must set the Mono flag")
	}
	if Mono.NormalText != "" || Mono.FocusAccent != "" || Mono.SelectedBackground != "" {
		t.Error("Mono theme must not carry color codes")
	}
}
