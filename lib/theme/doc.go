// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

// Package theme defines the color palettes for tact's terminal
// widgets. Three built-in themes ship with the toolkit: a dark
// 256-color default, a high-contrast variant, and a monochrome theme
// that substitutes text attributes for color. Capability detection
// falls back to monochrome on terminals that cannot render color or
// when the user has opted out via NO_COLOR.
package theme
