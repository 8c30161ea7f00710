// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametime

import (
	"fmt"
	"math"
)

// FramesPerSecond is the fixed frame rate used by frame-count inputs.
const FramesPerSecond = 60

// SecondsToFrames converts seconds to whole frames, rounding half up.
func SecondsToFrames(seconds float64) int {
	return int(math.Floor(seconds*FramesPerSecond + 0.5))
}

// FramesToSeconds converts a frame count to seconds.
func FramesToSeconds(frames int) float64 {
	return float64(frames) / FramesPerSecond
}

// FormatTime renders seconds as "M:SS", or "H:MM:SS" once there is at
// least one full hour. Fractional seconds are truncated. Negative and
// NaN inputs render as "0:00".
//
//	FormatTime(61)    // "1:01"
//	FormatTime(45296) // "12:34:56"
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	if seconds > 1<<62 {
		seconds = 1 << 62
	}
	total := int64(seconds)

	hours := total / 3600
	minutes := (total % 3600) / 60
	remainder := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, remainder)
	}
	return fmt.Sprintf("%d:%02d", minutes, remainder)
}
