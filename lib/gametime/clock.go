// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametime

// Upstream is the view a clock has of a peer clock it is updated
// from. Only the peer's last delta and pause flag are visible.
type Upstream interface {
	TimeDelta() float64
	Paused() bool
}

// TimeSource supplies an absolute reading in seconds. [Sampler] and
// [Clock] both implement it.
type TimeSource interface {
	CurrentTime() float64
}

// TimeFunc adapts an ordinary function to a [TimeSource].
type TimeFunc func() float64

// CurrentTime calls f.
func (f TimeFunc) CurrentTime() float64 { return f() }

// Updater is implemented by every clock in this package. The game
// loop calls exactly one of these methods per frame.
type Updater interface {
	// Update advances to an absolute reading in seconds.
	Update(seconds float64)

	// UpdateFrames advances to an absolute reading in frames.
	UpdateFrames(frames int)

	// UpdateElapsed advances by the seconds elapsed since the last frame.
	UpdateElapsed(delta float64)

	// UpdateFrom advances by the upstream clock's last delta.
	UpdateFrom(upstream Upstream)

	// UpdateSource advances to the source's absolute reading.
	UpdateSource(source TimeSource)
}

var (
	_ Updater    = (*Clock)(nil)
	_ Upstream   = (*Clock)(nil)
	_ TimeSource = (*Clock)(nil)
)

// Clock accumulates logical time. Use [NewClock]; the zero value has a
// speed of 0 and never advances.
type Clock struct {
	currentTime float64
	timeDelta   float64
	paused      bool
	speed       float64
}

// NewClock returns a running clock at time zero with speed 1.
func NewClock() *Clock {
	return &Clock{speed: 1}
}

// Start resets the clock to zero and unpauses it. Speed and the last
// delta are left alone.
func (c *Clock) Start() {
	c.currentTime = 0
	c.paused = false
}

// Stop resets the clock to zero and pauses it.
func (c *Clock) Stop() {
	c.currentTime = 0
	c.timeDelta = 0
	c.paused = true
}

// CurrentTime returns the accumulated logical time in seconds.
func (c *Clock) CurrentTime() float64 { return c.currentTime }

// TimeDelta returns the logical seconds applied by the most recent
// update. Zero if the clock was paused during that update.
func (c *Clock) TimeDelta() float64 { return c.timeDelta }

// Paused reports whether updates are currently ignored.
func (c *Clock) Paused() bool { return c.paused }

// SetPaused pauses or resumes the clock. Takes effect on the next update.
func (c *Clock) SetPaused(paused bool) { c.paused = paused }

// Speed returns the multiplier applied to every incoming delta.
func (c *Clock) Speed() float64 { return c.speed }

// SetSpeed sets the delta multiplier. Clocks updated from this one
// with UpdateFrom see the scaled delta, so the speed carries
// downstream.
func (c *Clock) SetSpeed(speed float64) { c.speed = speed }

// Update treats seconds as the new absolute reading. The delta is
// scaled by speed but the current time is set to seconds as given.
func (c *Clock) Update(seconds float64) {
	if c.paused {
		c.timeDelta = 0
		return
	}
	c.timeDelta = (seconds - c.currentTime) * c.speed
	c.currentTime = seconds
}

// UpdateFrames is Update with a reading in 1/60 second frames.
func (c *Clock) UpdateFrames(frames int) {
	c.Update(FramesToSeconds(frames))
}

// UpdateSource is Update with source's current reading.
func (c *Clock) UpdateSource(source TimeSource) {
	c.Update(source.CurrentTime())
}

// UpdateElapsed adds delta seconds, scaled by speed.
func (c *Clock) UpdateElapsed(delta float64) {
	c.advance(delta)
}

// UpdateFrom adds the upstream clock's last delta, scaled by speed.
// The upstream is read once and not retained.
func (c *Clock) UpdateFrom(upstream Upstream) {
	c.advance(upstream.TimeDelta())
}

// advance is the incremental update rule shared by UpdateElapsed and
// UpdateFrom.
func (c *Clock) advance(delta float64) {
	if c.paused {
		c.timeDelta = 0
		return
	}
	c.timeDelta = delta * c.speed
	c.currentTime += c.timeDelta
}

// SubtractTime moves the clock back by delta seconds without touching
// the last delta or the pause flag.
func (c *Clock) SubtractTime(delta float64) {
	c.currentTime -= delta
}

// AppendTime moves the clock forward by delta seconds without
// touching the last delta or the pause flag.
func (c *Clock) AppendTime(delta float64) {
	c.currentTime += delta
}

// PreviousTime returns the reading before the most recent update,
// clamped at zero. The first update of an absolute-driven clock can
// carry a delta larger than the current time.
func (c *Clock) PreviousTime() float64 {
	previous := c.currentTime - c.timeDelta
	if previous < 0 {
		return 0
	}
	return previous
}

// String formats the current time with [FormatTime].
func (c *Clock) String() string {
	return FormatTime(c.currentTime)
}

// WriteState writes the current time and the pause flag, in that order.
func (c *Clock) WriteState(writer FieldWriter) error {
	if err := writer.WriteFloat(c.currentTime); err != nil {
		return fieldError("writing", "current time", err)
	}
	if err := writer.WriteBool(c.paused); err != nil {
		return fieldError("writing", "paused", err)
	}
	return nil
}

// ReadState reads the fields written by [Clock.WriteState]. On error
// the clock is left unchanged.
func (c *Clock) ReadState(reader FieldReader) error {
	fields, err := readClockFields(reader)
	if err != nil {
		return err
	}
	c.apply(fields)
	return nil
}
