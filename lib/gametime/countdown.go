// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametime

// CountdownTimer is a [Clock] that counts down toward a target
// duration. The embedded clock keeps running past zero; RemainingTime
// goes negative once the countdown is overdue.
type CountdownTimer struct {
	Clock

	countdownLength float64

	// startTime is the clock reading captured by the Start methods.
	startTime float64
}

// NewCountdownTimer returns a stopped-length timer (length 0) with a
// running clock at speed 1.
func NewCountdownTimer() *CountdownTimer {
	return &CountdownTimer{Clock: Clock{speed: 1}}
}

// Start restarts the clock and counts down length seconds from zero.
func (t *CountdownTimer) Start(length float64) {
	t.Clock.Start()
	t.countdownLength = length
	t.startTime = t.currentTime
}

// StartAt restarts the clock at startAt and counts down length
// seconds from there.
func (t *CountdownTimer) StartAt(length, startAt float64) {
	t.Clock.Start()
	t.countdownLength = length
	t.currentTime = startAt
	t.startTime = t.currentTime
}

// Restart restarts the clock and re-anchors the countdown without
// changing its length.
func (t *CountdownTimer) Restart() {
	t.Clock.Start()
	t.startTime = t.currentTime
}

// Stop stops the clock and clears the countdown.
func (t *CountdownTimer) Stop() {
	t.Clock.Stop()
	t.countdownLength = 0
	t.startTime = 0
}

// AddTime extends the countdown by delta seconds. Elapsed progress is
// kept.
func (t *CountdownTimer) AddTime(delta float64) {
	t.countdownLength += delta
}

// CountdownLength returns the target duration in seconds.
func (t *CountdownTimer) CountdownLength() float64 { return t.countdownLength }

// SetCountdownLength replaces the target duration.
func (t *CountdownTimer) SetCountdownLength(length float64) { t.countdownLength = length }

// StartTime returns the clock reading at which the countdown started.
func (t *CountdownTimer) StartTime() float64 { return t.startTime }

// RemainingTime returns the seconds left. Negative when overdue.
func (t *CountdownTimer) RemainingTime() float64 {
	return t.countdownLength - (t.currentTime - t.startTime)
}

// HasTimeRemaining reports whether RemainingTime is positive.
func (t *CountdownTimer) HasTimeRemaining() bool {
	return t.RemainingTime() > 0
}

// Lerp returns the fraction of the countdown remaining: 1.0 at start,
// 0.0 at expiry. A timer with no length reports 0.
func (t *CountdownTimer) Lerp() float64 {
	if t.countdownLength > 0 {
		return t.RemainingTime() / t.countdownLength
	}
	return 0
}

// LerpValues interpolates from start (when the countdown starts) to
// end (when it expires). Once expired it returns end exactly.
func (t *CountdownTimer) LerpValues(start, end float64) float64 {
	if !t.HasTimeRemaining() {
		return end
	}
	return end - (end-start)*t.Lerp()
}

// String formats the remaining time with [FormatTime].
func (t *CountdownTimer) String() string {
	return FormatTime(t.RemainingTime())
}

// WriteState writes the clock fields followed by the countdown length
// and start time.
func (t *CountdownTimer) WriteState(writer FieldWriter) error {
	if err := t.Clock.WriteState(writer); err != nil {
		return err
	}
	if err := writer.WriteFloat(t.countdownLength); err != nil {
		return fieldError("writing", "countdown length", err)
	}
	if err := writer.WriteFloat(t.startTime); err != nil {
		return fieldError("writing", "start time", err)
	}
	return nil
}

// ReadState reads the fields written by [CountdownTimer.WriteState].
// On error the timer is left unchanged.
func (t *CountdownTimer) ReadState(reader FieldReader) error {
	fields, err := readCountdownFields(reader)
	if err != nil {
		return err
	}
	t.apply(fields)
	return nil
}
