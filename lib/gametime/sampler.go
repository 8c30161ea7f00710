// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametime

import (
	"errors"
	"time"

	"github.com/bureau-foundation/gametimer/lib/clock"
)

// ErrSamplerNotStarted is returned by [Sampler.Update] when Start has
// not been called.
var ErrSamplerNotStarted = errors.New("gametime: sampler updated before Start")

// Sampler reads real elapsed time for hosts with no engine-supplied
// frame delta. Its reading is an absolute number of seconds since
// Start, suitable for [Clock.UpdateSource].
type Sampler struct {
	clock       clock.Clock
	start       time.Time
	started     bool
	currentTime float64
}

var _ TimeSource = (*Sampler)(nil)

// NewSampler returns a sampler reading from source. The sampler reads
// zero until Start is called.
func NewSampler(source clock.Clock) *Sampler {
	return &Sampler{clock: source}
}

// Start records the current instant as time zero.
func (s *Sampler) Start() {
	s.start = s.clock.Now()
	s.started = true
	s.currentTime = 0
}

// Update re-samples the clock. Returns [ErrSamplerNotStarted] and
// leaves the reading at zero if Start has not been called.
func (s *Sampler) Update() error {
	if !s.started {
		return ErrSamplerNotStarted
	}
	s.currentTime = s.clock.Now().Sub(s.start).Seconds()
	return nil
}

// Started reports whether Start has been called.
func (s *Sampler) Started() bool { return s.started }

// StartedAt returns the instant recorded by Start.
func (s *Sampler) StartedAt() time.Time { return s.start }

// CurrentTime returns the seconds between Start and the last Update.
func (s *Sampler) CurrentTime() float64 { return s.currentTime }
