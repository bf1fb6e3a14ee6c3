// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for tact.
//
// Configuration comes from a single file. The TACT_CONFIG environment
// variable names it; otherwise $XDG_CONFIG_HOME/tact/config.yaml is
// tried, falling back to ~/.config. A missing file at the default
// location is not an error and leaves the defaults in effect. A
// missing file named by TACT_CONFIG is an error, since the caller
// asked for that file and nothing else.
//
// After loading, ${VAR} and ${VAR:-default} patterns in path fields
// are expanded, along with a leading ~/. Then a small set of
// environment variables override file values: TACT_THEME,
// TACT_REDUCE_MOTION, and TACT_LOG_LEVEL. They exist so a reader can
// flip a preference for one run without editing the file; validation
// sees the final values either way.
//
// Key exports:
//
//   - [Config] -- the whole tree: theme, motion, announce, gallery, keys, log
//   - [Default], [Load], [LoadFile] -- construction and the two loading entry points
//   - [Config.Validate] -- aggregated field validation
//   - [Watch] -- inotify-based live reload for running programs
//
// This package depends on lib/theme for theme name validation and on
// nothing else in tact.
package config
