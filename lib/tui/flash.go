// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// FlashDuration is how long a row stays tinted after an event. The
// flash starts at 1.0 and decays linearly to 0.0 over this duration.
const FlashDuration = 600 * time.Millisecond

// FlashKind distinguishes events for color selection.
type FlashKind int

const (
	// FlashHitPause marks a row whose clock just received a hit pause.
	FlashHitPause FlashKind = iota
	// FlashRestart marks a row whose clock was just restarted.
	FlashRestart
)

type flashEntry struct {
	ignition time.Time
	kind     FlashKind
}

// FlashTracker maps row names to ignition timestamps for animated
// event highlighting. Each event ignites a row, which then fades from
// full intensity to zero over [FlashDuration].
type FlashTracker struct {
	entries map[string]flashEntry
}

// NewFlashTracker creates an empty tracker.
func NewFlashTracker() *FlashTracker {
	return &FlashTracker{
		entries: make(map[string]flashEntry),
	}
}

// Ignite records an event for a row. Resets the fade if the row was
// already lit.
func (tracker *FlashTracker) Ignite(row string, kind FlashKind, now time.Time) {
	tracker.entries[row] = flashEntry{ignition: now, kind: kind}
}

// Intensity returns 1.0 at ignition, decaying linearly to 0.0 over
// [FlashDuration]. Rows never ignited report 0.0.
func (tracker *FlashTracker) Intensity(row string, now time.Time) float64 {
	entry, exists := tracker.entries[row]
	if !exists {
		return 0.0
	}
	elapsed := now.Sub(entry.ignition)
	if elapsed >= FlashDuration || elapsed < 0 {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(FlashDuration)
}

// Kind returns the kind of a row's last event. Only meaningful when
// Intensity returns > 0.
func (tracker *FlashTracker) Kind(row string) FlashKind {
	return tracker.entries[row].kind
}

// Active reports whether any row is still lit, and forgets rows that
// have faded.
func (tracker *FlashTracker) Active(now time.Time) bool {
	active := false
	for row, entry := range tracker.entries {
		if now.Sub(entry.ignition) < FlashDuration {
			active = true
			continue
		}
		delete(tracker.entries, row)
	}
	return active
}
