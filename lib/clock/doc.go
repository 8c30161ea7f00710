// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides the injectable real-time source used to
// sample wall-clock time and pace frame loops.
//
// Logical game time lives in lib/gametime and only moves when a frame
// pushes a sample into it. This package is where those samples come
// from when the host has no engine-supplied frame delta: a
// gametime.Sampler reads Now, and interactive frontends pace their
// frames with NewTicker.
//
// # Wiring Pattern
//
// Accept a Clock instead of calling time.Now or time.NewTicker:
//
//	sampler := gametime.NewSampler(clock.Real())
//
// In tests:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	sampler := gametime.NewSampler(fake)
//	sampler.Start()
//	fake.Advance(250 * time.Millisecond)
//	sampler.Update() // CurrentTime() == 0.25
//
// FakeClock tickers fire only from Advance, once per elapsed interval,
// so a test can step a frame loop one frame at a time.
package clock
