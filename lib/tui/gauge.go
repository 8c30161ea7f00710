// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderGauge produces a single-row gauge of the given width with the
// leading fraction filled in color and the rest drawn as a dim track.
// Fractions outside [0, 1] are clamped; NaN renders an empty gauge.
func RenderGauge(theme Theme, width int, fraction float64, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(fraction) || fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(math.Round(fraction * float64(width)))
	// Any time left shows at least one cell.
	if filled == 0 && fraction > 0 {
		filled = 1
	}

	fillStyle := lipgloss.NewStyle().Foreground(color)
	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)

	return fillStyle.Render(strings.Repeat("━", filled)) +
		trackStyle.Render(strings.Repeat("─", width-filled))
}
