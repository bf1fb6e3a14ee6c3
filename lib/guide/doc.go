// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

// Package guide holds the embedded accessibility guides and the
// terminal viewer for reading them.
//
// The guides are Markdown documents compiled into the binary. Render
// turns one into styled terminal text: word-wrapped paragraphs,
// highlighted code fences, GFM tables. Viewer is the interactive
// reader behind `tact guide`: a fuzzy-filterable topic list beside a
// scrollable content pane, with focus moving between the two.
package guide
