// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FitLine truncates or pads styled content to exactly width terminal
// cells. ANSI escape sequences do not count toward the width.
func FitLine(styledContent string, width int) string {
	if width <= 0 {
		return ""
	}
	contentWidth := ansi.StringWidth(styledContent)
	if contentWidth > width {
		return ansi.Truncate(styledContent, width-1, "…")
	}
	return styledContent + strings.Repeat(" ", width-contentWidth)
}

// ClockRow is one line of the clock panel.
type ClockRow struct {
	// Label names the clock ("world", "character", ...).
	Label string
	State ClockState
	// Readout is the formatted time shown after the label.
	Readout string
	// Detail is optional faint text after the state.
	Detail string
}

// RenderClockRow renders a row at width cells. A positive flash
// intensity tints the row's background with the flash color.
func RenderClockRow(theme Theme, row ClockRow, width int, flash float64, kind FlashKind) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	readoutStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	stateStyle := lipgloss.NewStyle().Foreground(theme.StateColor(row.State))
	detailStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	content := labelStyle.Render(padRight(row.Label, 10)) +
		readoutStyle.Render(padLeft(row.Readout, 9)) + "  " +
		stateStyle.Render(padRight(row.State.String(), 10))
	if row.Detail != "" {
		content += " " + detailStyle.Render(row.Detail)
	}

	line := FitLine(content, width)
	if flash > 0 {
		line = lipgloss.NewStyle().
			Background(theme.FlashColor(kind)).
			Width(width).
			MaxWidth(width).
			Render(line)
	}
	return line
}

func padRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func padLeft(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
