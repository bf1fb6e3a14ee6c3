// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func sampleState() State {
	return State{
		ActivePane:     "tree",
		TreeExpanded:   []string{"fruits", "fruits/citrus"},
		GridSortColumn: "name",
		GridSortDesc:   true,
		AccordionOpen:  []string{"shipping"},
		GuideTopic:     "focus-traps",
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cbor")
	state := sampleState()

	if err := Save(path, state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if !reflect.DeepEqual(got, state) {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", got, state)
	}
}

func TestLoadStateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.cbor")

	got, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState on missing file should not error, got: %v", err)
	}
	if !reflect.DeepEqual(got, State{}) {
		t.Errorf("expected zero state for missing file, got %+v", got)
	}
}

func TestLoadStateCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cbor")
	if err := os.WriteFile(path, []byte("not cbor at all"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := LoadState(path)
	if err == nil {
		t.Fatal("LoadState on corrupt file should return an error")
	}
	// The error should mention the file path for diagnostics.
	if got := err.Error(); !strings.Contains(got, path) {
		t.Errorf("error %q should mention file path %q", got, path)
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "tact", "session.cbor")

	if err := Save(path, sampleState()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := LoadState(path); err != nil {
		t.Fatalf("LoadState after nested Save: %v", err)
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cbor")

	first := sampleState()
	if err := Save(path, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}

	second := State{ActivePane: "grid", GuideTopic: "themes"}
	if err := Save(path, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if got.ActivePane != "grid" {
		t.Errorf("ActivePane = %q, want %q (second save should overwrite)", got.ActivePane, "grid")
	}
	if len(got.TreeExpanded) != 0 {
		t.Errorf("TreeExpanded = %v, want empty from second save", got.TreeExpanded)
	}
}

func TestSaveNoTemporaryFileLeftBehind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cbor")

	if err := Save(path, sampleState()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	temporaryPath := path + ".tmp"
	if _, err := os.Stat(temporaryPath); !os.IsNotExist(err) {
		t.Errorf("temporary file %s still exists after successful Save", temporaryPath)
	}
}

func TestSaveFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cbor")

	if err := Save(path, sampleState()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if permissions := info.Mode().Perm(); permissions != 0o600 {
		t.Errorf("permissions = %04o, want 0600", permissions)
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cbor")

	if err := Save(path, sampleState()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Clear(path); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not exist after Clear")
	}

	// Second Clear is idempotent.
	if err := Clear(path); err != nil {
		t.Errorf("Clear on missing file should be idempotent, got: %v", err)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	state := sampleState()

	first, err := Marshal(state)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(state)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	// A session written by a newer tact may carry fields this version
	// does not know. Encode a superset and decode into State.
	superset := map[string]any{
		"active_pane":  "guide",
		"guide_topic":  "announcements",
		"future_field": "whatever",
	}
	data, err := Marshal(superset)
	if err != nil {
		t.Fatalf("Marshal superset: %v", err)
	}

	var state State
	if err := Unmarshal(data, &state); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if state.ActivePane != "guide" {
		t.Errorf("ActivePane = %q, want guide", state.ActivePane)
	}
	if state.GuideTopic != "announcements" {
		t.Errorf("GuideTopic = %q, want announcements", state.GuideTopic)
	}
}
