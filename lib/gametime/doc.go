// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package gametime provides logical-time clocks for per-frame game
// simulation.
//
// Logical time is a clock's own accumulated seconds. It advances only
// when the owning game loop pushes a time sample into the clock, once
// per frame. Nothing in this package polls, sleeps, or starts
// goroutines.
//
// # Types
//
//   - [Clock] accumulates time, can be paused, and scales every
//     incoming delta by its speed.
//   - [CountdownTimer] is a Clock with a target duration. It reports
//     remaining time and a 1.0 → 0.0 completion ratio ([CountdownTimer.Lerp]).
//   - [HitPauseClock] is a Clock with a private one-shot pause window,
//     used to freeze a character for a few frames on impact.
//   - [Sampler] converts real elapsed time from a [clock.Clock] into
//     logical seconds for hosts that do not supply a frame delta.
//
// # Update forms
//
// Every clock implements [Updater]. The forms differ in how they read
// their input:
//
//   - Update(seconds) treats its input as an absolute reading. The
//     delta is the difference from the clock's current time.
//   - UpdateFrames(frames) is Update with a frame count in 1/60 second
//     units.
//   - UpdateSource(source) is Update with source.CurrentTime().
//   - UpdateElapsed(delta) adds delta (seconds since the last frame).
//   - UpdateFrom(upstream) adds the upstream clock's last delta. This
//     is how clocks compose: a character clock updated from a world
//     clock inherits the world's speed and pauses.
//
// A paused clock ignores its input and reports a zero delta.
//
// # Replication
//
// [Clock.WriteState] and [Clock.ReadState] (and their counterparts on
// the derived types) stream the persisted fields through a
// [FieldWriter] or [FieldReader]. The field order is fixed; the byte
// layout belongs to the transport. See lib/codec for the CBOR
// implementation and lib/replication for whole-state encoding.
//
// Clocks are not safe for concurrent use. A clock is owned by the
// simulation goroutine that updates it.
package gametime
