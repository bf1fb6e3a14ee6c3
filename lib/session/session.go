// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

// Package session persists gallery UI state between runs: the focused
// pane, which tree branches and accordion sections are open, the grid
// sort, the last guide topic read. The file is CBOR (see codec.go) and
// is written atomically (temporary file, fsync, rename) so a crash
// mid-save never leaves a torn file behind.
//
// Session state is a convenience, never a requirement. A missing file
// loads as the zero State with no error; a file that exists but cannot
// be decoded is reported so the caller can discard it and start fresh.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// State records what a reader had open when the gallery exited.
type State struct {
	// ActivePane is the focus ring identifier of the focused pane.
	ActivePane string `cbor:"active_pane,omitempty"`

	// TreeExpanded lists the identifiers of expanded tree branches.
	TreeExpanded []string `cbor:"tree_expanded,omitempty"`

	// GridSortColumn is the sorted column identifier; empty means
	// natural order.
	GridSortColumn string `cbor:"grid_sort_column,omitempty"`

	// GridSortDesc inverts the sort direction.
	GridSortDesc bool `cbor:"grid_sort_desc,omitempty"`

	// AccordionOpen lists the identifiers of expanded accordion
	// sections.
	AccordionOpen []string `cbor:"accordion_open,omitempty"`

	// GuideTopic is the slug of the last guide topic read.
	GuideTopic string `cbor:"guide_topic,omitempty"`
}

// Save atomically writes state to path, creating the parent directory
// when needed. The data is written to a temporary name in the same
// directory, synced, and renamed into place, so a reader never sees a
// partial write.
func Save(path string, state State) error {
	data, err := Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding session state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	temporaryPath := path + ".tmp"
	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating temporary session file: %w", err)
	}

	// Write, sync, close, rename. If any step fails, remove the
	// temporary file and report the first error.
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary session file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary session file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary session file: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming session file into place: %w", err)
	}
	return nil
}

// LoadState reads the session file. A missing file is the common case
// (first run, or the file was cleared) and returns the zero State with
// no error.
func LoadState(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{}, nil
		}
		return State{}, err
	}

	var state State
	if err := Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("parsing session file %s: %w", path, err)
	}
	return state, nil
}

// Clear removes the session file. Idempotent: returns nil when the
// file does not exist.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
