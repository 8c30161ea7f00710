// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ClockState is what a clock row displays: whether the clock is
// advancing and, if not, why.
type ClockState int

const (
	// StateRunning is a clock advancing normally.
	StateRunning ClockState = iota
	// StatePaused is a clock paused by its own flag or its upstream.
	StatePaused
	// StateHitPause is a clock frozen by a hit pause.
	StateHitPause
	// StateExpired is a countdown with no time remaining.
	StateExpired
)

// String returns the label shown next to a clock.
func (state ClockState) String() string {
	switch state {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateHitPause:
		return "hit pause"
	case StateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Theme defines the color palette for gametimer's terminal UI. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Clock state colors.
	StateRunning  lipgloss.Color
	StatePaused   lipgloss.Color
	StateHitPause lipgloss.Color
	StateExpired  lipgloss.Color

	// Countdown progress bar gradient, from full to empty.
	ProgressFull  lipgloss.Color
	ProgressEmpty lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Flash accents: background tint for rows that just changed.
	FlashHitPause lipgloss.Color
	FlashRestart  lipgloss.Color
}

// StateColor returns the color for a clock state. Unknown states
// return FaintText.
func (theme Theme) StateColor(state ClockState) lipgloss.Color {
	switch state {
	case StateRunning:
		return theme.StateRunning
	case StatePaused:
		return theme.StatePaused
	case StateHitPause:
		return theme.StateHitPause
	case StateExpired:
		return theme.StateExpired
	default:
		return theme.FaintText
	}
}

// FlashColor returns the background tint for a flash kind.
func (theme Theme) FlashColor(kind FlashKind) lipgloss.Color {
	if kind == FlashRestart {
		return theme.FlashRestart
	}
	return theme.FlashHitPause
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	StateRunning:  lipgloss.Color("114"), // green
	StatePaused:   lipgloss.Color("220"), // yellow/amber
	StateHitPause: lipgloss.Color("141"), // light purple
	StateExpired:  lipgloss.Color("196"), // red

	ProgressFull:  lipgloss.Color("#5FD787"),
	ProgressEmpty: lipgloss.Color("#FF5F5F"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	FlashHitPause: lipgloss.Color("54"), // dark purple background tint
	FlashRestart:  lipgloss.Color("58"), // dark amber background tint
}
