// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametime

// HitPauseClock is a [Clock] that can be frozen for a short window,
// typically a few frames when a character lands or takes a hit.
//
// The window is measured by a private gate timer that advances on
// every update, including while the clock is frozen. Each update
// advances the gate first, then recomputes the pause flag from it,
// then applies the base update. The frame on which the window runs
// out is therefore already unpaused.
//
// Because the pause flag is recomputed on every update, SetPaused on
// a HitPauseClock only lasts until the next update. Pause a
// HitPauseClock by pausing the clock it is updated from.
//
// The gate always runs at speed 1. Like [Clock], the zero value has a
// speed of 0 until SetSpeed is called, but its hit pauses still run
// out on schedule.
type HitPauseClock struct {
	Clock

	gate CountdownTimer
}

var _ Updater = (*HitPauseClock)(nil)

// NewHitPauseClock returns a running clock at time zero with speed 1
// and no pending hit pause.
func NewHitPauseClock() *HitPauseClock {
	return &HitPauseClock{
		Clock: Clock{speed: 1},
		gate:  CountdownTimer{Clock: Clock{speed: 1}},
	}
}

// AddHitPause freezes the clock for duration seconds of input time,
// starting from the next update. A new hit pause replaces any window
// still running.
//
// The window is anchored at the gate's last reading rather than at
// zero, so the absolute update forms measure it against the input
// they were last given.
func (c *HitPauseClock) AddHitPause(duration float64) {
	c.gate.speed = 1
	c.gate.StartAt(duration, c.gate.currentTime)
}

// HitPauseRemaining returns the seconds left in the current hit pause,
// or 0 if none is running.
func (c *HitPauseClock) HitPauseRemaining() float64 {
	if remaining := c.gate.RemainingTime(); remaining > 0 {
		return remaining
	}
	return 0
}

// Stop stops the clock and cancels any pending hit pause. The gate
// keeps tracking its input so a later AddHitPause stays anchored.
func (c *HitPauseClock) Stop() {
	c.Clock.Stop()
	c.gate.countdownLength = 0
	c.gate.startTime = c.gate.currentTime
}

// UpdateFrom advances the gate from upstream, pauses if either the
// upstream is paused or a hit pause is running, then applies the
// upstream's delta.
func (c *HitPauseClock) UpdateFrom(upstream Upstream) {
	c.gate.UpdateFrom(upstream)
	c.paused = upstream.Paused() || c.gate.HasTimeRemaining()
	c.Clock.UpdateFrom(upstream)
}

// Update is [Clock.Update] gated by the hit pause.
func (c *HitPauseClock) Update(seconds float64) {
	c.gate.Update(seconds)
	c.paused = c.gate.HasTimeRemaining()
	c.Clock.Update(seconds)
}

// UpdateFrames is [Clock.UpdateFrames] gated by the hit pause.
func (c *HitPauseClock) UpdateFrames(frames int) {
	c.Update(FramesToSeconds(frames))
}

// UpdateSource is [Clock.UpdateSource] gated by the hit pause.
func (c *HitPauseClock) UpdateSource(source TimeSource) {
	c.Update(source.CurrentTime())
}

// UpdateElapsed is [Clock.UpdateElapsed] gated by the hit pause.
func (c *HitPauseClock) UpdateElapsed(delta float64) {
	c.gate.UpdateElapsed(delta)
	c.paused = c.gate.HasTimeRemaining()
	c.Clock.UpdateElapsed(delta)
}

// WriteState writes the clock fields followed by the gate timer's
// fields.
func (c *HitPauseClock) WriteState(writer FieldWriter) error {
	if err := c.Clock.WriteState(writer); err != nil {
		return err
	}
	if err := c.gate.WriteState(writer); err != nil {
		return fieldError("writing", "hit pause", err)
	}
	return nil
}

// ReadState reads the fields written by [HitPauseClock.WriteState].
// On error neither the clock nor its gate is changed.
func (c *HitPauseClock) ReadState(reader FieldReader) error {
	outer, err := readClockFields(reader)
	if err != nil {
		return err
	}
	gate, err := readCountdownFields(reader)
	if err != nil {
		return fieldError("reading", "hit pause", err)
	}
	c.Clock.apply(outer)
	c.gate.apply(gate)
	return nil
}
