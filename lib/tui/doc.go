// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the rendering pieces of gametimer's live clock
// viewer. Built on lipgloss, these components draw clock rows colored
// by state, horizontal gauges, and short background flashes when a
// clock receives an event.
//
// The viewer itself (a bubbletea program) lives in cmd/gametimer and
// owns the clocks, the key bindings, and the frame ticker. This
// package only turns values into styled strings.
package tui
