// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock is the real-time source behind the frame loop. Production
// code injects Real(); tests inject Fake() and advance it by hand.
type Clock interface {
	// Now returns the current time. Real clocks include a monotonic
	// reading, so differences between two Now values are unaffected
	// by wall-clock adjustments.
	Now() time.Time

	// NewTicker returns a Ticker that delivers ticks on its C channel
	// at the given interval. Panics if d <= 0.
	NewTicker(d time.Duration) *Ticker
}

// Ticker delivers periodic ticks on C. Call Stop when the Ticker is no
// longer needed.
//
// C has capacity 1. A consumer that falls behind loses ticks rather
// than queueing them, which is what a frame loop wants: a slow frame
// is followed by one larger delta, not a burst of catch-up frames.
type Ticker struct {
	C <-chan time.Time

	stopFunc func()
}

// Stop turns off the ticker. Stop does not close C.
func (t *Ticker) Stop() { t.stopFunc() }

// FrameInterval returns the tick interval for a frame rate, e.g. 60
// frames per second is 16.666ms. Panics if framesPerSecond <= 0.
func FrameInterval(framesPerSecond int) time.Duration {
	if framesPerSecond <= 0 {
		panic("clock: non-positive frame rate")
	}
	return time.Second / time.Duration(framesPerSecond)
}
