// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdownStart(t *testing.T) {
	timer := NewCountdownTimer()
	timer.Start(1)

	assert.Equal(t, 1.0, timer.RemainingTime())
	assert.Equal(t, 1.0, timer.Lerp())
	assert.True(t, timer.HasTimeRemaining())
	assert.Equal(t, 0.0, timer.StartTime())
}

func TestCountdownProgress(t *testing.T) {
	tests := []struct {
		name          string
		length        float64
		elapsed       float64
		wantRemaining float64
		wantLerp      float64
	}{
		{"half", 1, 0.5, 0.5, 0.5},
		{"quarter", 1, 0.25, 0.75, 0.75},
		{"one of four", 4, 1, 3, 0.75},
		{"three of four", 4, 3, 1, 0.25},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			timer := NewCountdownTimer()
			timer.Start(test.length)
			timer.UpdateElapsed(test.elapsed)

			assert.InDelta(t, test.wantRemaining, timer.RemainingTime(), tolerance)
			assert.InDelta(t, test.wantLerp, timer.Lerp(), tolerance)
			assert.True(t, timer.HasTimeRemaining())
		})
	}
}

func TestCountdownExpiresAtLength(t *testing.T) {
	timer := NewCountdownTimer()
	timer.Start(2)
	timer.UpdateElapsed(2)

	assert.Equal(t, 0.0, timer.RemainingTime())
	assert.False(t, timer.HasTimeRemaining())
	assert.Equal(t, 0.0, timer.Lerp())
}

func TestCountdownOverdueIsNegative(t *testing.T) {
	timer := NewCountdownTimer()
	timer.Start(1)
	timer.UpdateElapsed(1.5)

	assert.Equal(t, -0.5, timer.RemainingTime())
	assert.False(t, timer.HasTimeRemaining())
	assert.Equal(t, "0:00", timer.String())
}

func TestCountdownStop(t *testing.T) {
	timer := NewCountdownTimer()
	timer.Start(4)
	timer.UpdateElapsed(1)
	timer.Stop()

	assert.False(t, timer.HasTimeRemaining())
	assert.Equal(t, 0.0, timer.CountdownLength())
	assert.Equal(t, 0.0, timer.StartTime())
	assert.Equal(t, 0.0, timer.Lerp())
	assert.True(t, timer.Paused())
}

func TestCountdownZeroLength(t *testing.T) {
	timer := NewCountdownTimer()

	assert.Equal(t, 0.0, timer.Lerp())
	assert.Equal(t, 200.0, timer.LerpValues(100, 200))

	timer.Start(0)
	assert.Equal(t, 0.0, timer.Lerp())
	assert.Equal(t, 200.0, timer.LerpValues(100, 200))
}

func TestCountdownLerpValues(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		start   float64
		end     float64
		want    float64
	}{
		{"at start", 0, 100, 200, 100},
		{"a quarter in", 1, 100, 200, 125},
		{"three quarters in", 3, 100, 200, 175},
		{"reversed at start", 0, 200, 100, 200},
		{"reversed a quarter in", 1, 200, 100, 175},
		{"reversed three quarters in", 3, 200, 100, 125},
		{"expired", 4, 100, 200, 200},
		{"long expired", 9.75, 100, 200, 200},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			timer := NewCountdownTimer()
			timer.Start(4)
			timer.UpdateElapsed(test.elapsed)

			assert.Equal(t, test.want, timer.LerpValues(test.start, test.end))
		})
	}
}

func TestCountdownStartAt(t *testing.T) {
	timer := NewCountdownTimer()
	timer.StartAt(2, 10)

	assert.Equal(t, 10.0, timer.CurrentTime())
	assert.Equal(t, 10.0, timer.StartTime())
	assert.Equal(t, 2.0, timer.RemainingTime())

	timer.Update(11)
	assert.Equal(t, 1.0, timer.RemainingTime())
	assert.Equal(t, 0.5, timer.Lerp())
}

func TestCountdownRestartKeepsLength(t *testing.T) {
	timer := NewCountdownTimer()
	timer.Start(3)
	timer.UpdateElapsed(2)

	timer.Restart()
	assert.Equal(t, 3.0, timer.CountdownLength())
	assert.Equal(t, 3.0, timer.RemainingTime())
}

func TestCountdownAddTime(t *testing.T) {
	timer := NewCountdownTimer()
	timer.Start(1)
	timer.UpdateElapsed(0.5)

	timer.AddTime(1)
	assert.Equal(t, 2.0, timer.CountdownLength())
	assert.Equal(t, 1.5, timer.RemainingTime())
	assert.Equal(t, 0.75, timer.Lerp())
}

func TestCountdownRemainingTracksDelta(t *testing.T) {
	timer := NewCountdownTimer()
	timer.Start(10)
	timer.SetSpeed(0.5)

	before := timer.RemainingTime()
	timer.UpdateElapsed(1)
	assert.InDelta(t, before-timer.TimeDelta(), timer.RemainingTime(), tolerance)
	assert.Equal(t, 9.5, timer.RemainingTime())
}

func TestCountdownPausedHoldsRemaining(t *testing.T) {
	timer := NewCountdownTimer()
	timer.Start(5)
	timer.UpdateElapsed(1)
	timer.SetPaused(true)
	timer.UpdateElapsed(1)

	assert.Equal(t, 4.0, timer.RemainingTime())
}

func TestCountdownString(t *testing.T) {
	timer := NewCountdownTimer()
	timer.Start(90)
	assert.Equal(t, "1:30", timer.String())

	timer.UpdateElapsed(30.5)
	assert.Equal(t, "0:59", timer.String())
}

// A four second countdown advanced by one second and then two more.
func TestCountdownEndToEnd(t *testing.T) {
	t.Run("absolute readings", func(t *testing.T) {
		timer := NewCountdownTimer()
		timer.Start(4)
		timer.Update(1)
		timer.Update(3)

		assert.Equal(t, 1.0, timer.RemainingTime())
		assert.Equal(t, 0.25, timer.Lerp())
		assert.Equal(t, 175.0, timer.LerpValues(100, 200))
	})

	t.Run("elapsed deltas", func(t *testing.T) {
		timer := NewCountdownTimer()
		timer.Start(4)
		timer.UpdateElapsed(1)
		timer.UpdateElapsed(2)

		assert.Equal(t, 1.0, timer.RemainingTime())
		assert.Equal(t, 0.25, timer.Lerp())
		assert.Equal(t, 175.0, timer.LerpValues(100, 200))
	})

	t.Run("from a world clock", func(t *testing.T) {
		world := NewClock()
		timer := NewCountdownTimer()
		timer.Start(4)

		world.UpdateElapsed(1)
		timer.UpdateFrom(world)
		world.UpdateElapsed(2)
		timer.UpdateFrom(world)

		assert.Equal(t, 1.0, timer.RemainingTime())
		assert.Equal(t, 0.25, timer.Lerp())
	})
}
