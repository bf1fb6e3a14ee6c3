// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

// Package announce provides a live-region analog for terminal UIs: a
// status line that surfaces widget state changes without moving
// focus. Notices carry a polite or assertive priority; polite ones
// queue, assertive ones preempt. A slog.Handler bridge lets
// background log records surface as announcements in a running
// program.
package announce
