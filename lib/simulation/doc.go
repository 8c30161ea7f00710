// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package simulation replays a [config.Scenario] deterministically.
//
// A run owns three clocks wired the way a game loop wires them: a
// world clock fed by the host (one of the elapsed, absolute, or frame
// update forms), a character [gametime.HitPauseClock] that follows
// the world, and a round [gametime.CountdownTimer] that also follows
// the world. Pausing the world pauses both followers. A hit pause
// freezes only the character.
//
// With the absolute and frame input forms the world clock stores no
// reading while paused, so the first frame after a world pause
// carries the whole paused interval as its delta. The elapsed form
// simply drops the paused frames.
//
// [Run] returns a [Report] with a record of every frame, the final
// clocks, frame-delta statistics for the character, and a replication
// checksum per clock. Two runs of the same scenario produce identical
// checksums on any machine.
package simulation
