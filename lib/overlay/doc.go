// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

// Package overlay composites floating layers onto rendered terminal
// views. Menus, suggestion lists, and dialogs render themselves as
// line slices; Splice places those lines over the base view with
// ANSI-aware cell arithmetic so styling on both sides survives.
package overlay
