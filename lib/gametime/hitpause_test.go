// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// worldStep returns a running world clock whose last delta is delta.
func worldStep(delta float64) *Clock {
	world := NewClock()
	world.UpdateElapsed(delta)
	return world
}

func TestHitPauseDefaults(t *testing.T) {
	clock := NewHitPauseClock()

	assert.False(t, clock.Paused())
	assert.Equal(t, 1.0, clock.Speed())
	assert.Equal(t, 0.0, clock.HitPauseRemaining())
}

func TestHitPauseUpdateFromWorld(t *testing.T) {
	clock := NewHitPauseClock()
	clock.UpdateFrom(worldStep(0.5))

	assert.False(t, clock.Paused())
	assert.Equal(t, 0.5, clock.CurrentTime())
}

func TestHitPauseAppliesOnNextUpdate(t *testing.T) {
	clock := NewHitPauseClock()
	clock.AddHitPause(0.25)

	assert.False(t, clock.Paused(), "AddHitPause must not set the flag itself")
	assert.Equal(t, 0.25, clock.HitPauseRemaining())

	clock.UpdateFrom(worldStep(0.1))
	assert.True(t, clock.Paused())
	assert.Equal(t, 0.0, clock.CurrentTime())
	assert.Equal(t, 0.0, clock.TimeDelta())
}

func TestHitPauseWindow(t *testing.T) {
	// Binary-exact steps so the expiry frame is unambiguous.
	const step = 0.125
	clock := NewHitPauseClock()
	clock.AddHitPause(0.5)
	world := worldStep(step)

	for frame := 1; frame <= 3; frame++ {
		clock.UpdateFrom(world)
		assert.True(t, clock.Paused(), "frame %d: %v of 0.5 elapsed", frame, float64(frame)*step)
		assert.Equal(t, 0.0, clock.CurrentTime())
	}

	clock.UpdateFrom(world)
	assert.False(t, clock.Paused(), "pause window fully elapsed")
	assert.Equal(t, step, clock.CurrentTime())
	assert.Equal(t, 0.0, clock.HitPauseRemaining())

	clock.UpdateFrom(world)
	assert.False(t, clock.Paused())
	assert.Equal(t, 2*step, clock.CurrentTime())
}

func TestHitPauseOvershootingFrame(t *testing.T) {
	clock := NewHitPauseClock()
	clock.AddHitPause(0.25)
	world := worldStep(0.2)

	clock.UpdateFrom(world)
	assert.True(t, clock.Paused())
	clock.UpdateFrom(world)
	assert.False(t, clock.Paused())
	assert.InDelta(t, 0.2, clock.CurrentTime(), tolerance)
}

func TestHitPauseLongerThanFrame(t *testing.T) {
	clock := NewHitPauseClock()
	clock.AddHitPause(0.25)
	clock.UpdateFrom(worldStep(0.5))

	assert.False(t, clock.Paused())
	assert.Equal(t, 0.5, clock.CurrentTime())
}

func TestHitPauseFollowsUpstreamPause(t *testing.T) {
	world := NewClock()
	world.SetPaused(true)
	world.UpdateElapsed(0.1)

	clock := NewHitPauseClock()
	clock.UpdateFrom(world)
	assert.True(t, clock.Paused())

	world.SetPaused(false)
	world.UpdateElapsed(0.1)
	clock.UpdateFrom(world)
	assert.False(t, clock.Paused())
	assert.InDelta(t, 0.1, clock.CurrentTime(), tolerance)
}

func TestHitPauseUpstreamPauseDoesNotConsumeWindow(t *testing.T) {
	world := NewClock()
	clock := NewHitPauseClock()
	clock.AddHitPause(0.5)

	// A paused world reports zero deltas, so the gate does not move.
	world.SetPaused(true)
	for range 10 {
		world.UpdateElapsed(0.25)
		clock.UpdateFrom(world)
	}
	assert.Equal(t, 0.5, clock.HitPauseRemaining())
}

func TestHitPauseElapsedForm(t *testing.T) {
	clock := NewHitPauseClock()
	clock.UpdateElapsed(1)
	clock.AddHitPause(0.5)

	clock.UpdateElapsed(0.25)
	assert.True(t, clock.Paused())
	assert.Equal(t, 1.0, clock.CurrentTime())

	clock.UpdateElapsed(0.25)
	assert.False(t, clock.Paused())
	assert.Equal(t, 1.25, clock.CurrentTime())
}

func TestHitPauseAbsoluteForm(t *testing.T) {
	clock := NewHitPauseClock()
	clock.Update(10)
	clock.AddHitPause(0.5)

	clock.Update(10.25)
	assert.True(t, clock.Paused(), "window is measured from the last reading, not from zero")
	assert.Equal(t, 10.0, clock.CurrentTime())

	clock.Update(10.5)
	assert.False(t, clock.Paused())
	assert.Equal(t, 10.5, clock.CurrentTime())
}

func TestHitPauseFrameForm(t *testing.T) {
	clock := NewHitPauseClock()
	clock.UpdateFrames(60)
	clock.AddHitPause(FramesToSeconds(3))

	clock.UpdateFrames(61)
	assert.True(t, clock.Paused())
	clock.UpdateFrames(62)
	assert.True(t, clock.Paused())
	clock.UpdateFrames(64)
	assert.False(t, clock.Paused())
	assert.InDelta(t, FramesToSeconds(64), clock.CurrentTime(), tolerance)
}

func TestHitPauseSourceForm(t *testing.T) {
	reading := 0.0
	source := TimeFunc(func() float64 { return reading })
	clock := NewHitPauseClock()

	reading = 1
	clock.UpdateSource(source)
	clock.AddHitPause(1)

	reading = 1.5
	clock.UpdateSource(source)
	assert.True(t, clock.Paused())

	reading = 2
	clock.UpdateSource(source)
	assert.False(t, clock.Paused())
	assert.Equal(t, 2.0, clock.CurrentTime())
}

func TestHitPauseReplacesRunningWindow(t *testing.T) {
	clock := NewHitPauseClock()
	world := worldStep(0.25)

	clock.AddHitPause(1)
	clock.UpdateFrom(world)
	clock.AddHitPause(0.25)
	assert.Equal(t, 0.25, clock.HitPauseRemaining())

	clock.UpdateFrom(world)
	assert.False(t, clock.Paused())
}

func TestHitPauseStopCancelsWindow(t *testing.T) {
	clock := NewHitPauseClock()
	clock.AddHitPause(5)
	clock.UpdateElapsed(0.5)
	assert.True(t, clock.Paused())

	clock.Stop()
	assert.True(t, clock.Paused())
	assert.Equal(t, 0.0, clock.HitPauseRemaining())
	assert.Equal(t, 0.0, clock.CurrentTime())

	// The next update recomputes the flag from the cancelled gate.
	clock.UpdateElapsed(0.5)
	assert.False(t, clock.Paused())
	assert.Equal(t, 0.5, clock.CurrentTime())
}

func TestHitPauseStartClearsPausedFlag(t *testing.T) {
	clock := NewHitPauseClock()
	clock.SetPaused(true)
	clock.Start()
	assert.False(t, clock.Paused())
}

func TestHitPauseSetPausedLastsOneFrame(t *testing.T) {
	clock := NewHitPauseClock()
	clock.SetPaused(true)
	clock.UpdateElapsed(0.5)

	assert.False(t, clock.Paused())
	assert.Equal(t, 0.5, clock.CurrentTime())
}

func TestHitPauseWithSpeed(t *testing.T) {
	clock := NewHitPauseClock()
	clock.SetSpeed(2)
	clock.AddHitPause(0.5)
	world := worldStep(0.25)

	clock.UpdateFrom(world)
	assert.True(t, clock.Paused(), "the window is measured in upstream time, not scaled time")

	clock.UpdateFrom(world)
	assert.False(t, clock.Paused())
	assert.Equal(t, 0.5, clock.TimeDelta())
}

func TestHitPauseZeroValueWindowRunsOut(t *testing.T) {
	var clock HitPauseClock
	clock.SetSpeed(1)
	clock.AddHitPause(0.25)

	clock.UpdateElapsed(0.1)
	assert.True(t, clock.Paused())
	assert.InDelta(t, 0.15, clock.HitPauseRemaining(), 1e-12)

	clock.UpdateElapsed(0.1)
	clock.UpdateElapsed(0.1)
	assert.False(t, clock.Paused())
	assert.Equal(t, 0.0, clock.HitPauseRemaining())
	assert.InDelta(t, 0.1, clock.CurrentTime(), 1e-12)
}

func TestHitPauseOneFrameWindowEndsOnItsFrame(t *testing.T) {
	const frame = 1.0 / FramesPerSecond
	clock := NewHitPauseClock()
	clock.AddHitPause(frame)

	clock.UpdateElapsed(frame)
	assert.False(t, clock.Paused(), "the frame that consumes the window is not paused")
	assert.Equal(t, frame, clock.CurrentTime())
}
