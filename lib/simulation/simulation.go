// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package simulation

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bureau-foundation/gametimer/lib/config"
	"github.com/bureau-foundation/gametimer/lib/framestats"
	"github.com/bureau-foundation/gametimer/lib/gametime"
	"github.com/bureau-foundation/gametimer/lib/replication"
)

// Frame records the clocks after one simulated frame.
type Frame struct {
	// Number is the 1-based frame number.
	Number int `json:"number"`

	WorldTime   float64 `json:"world_time"`
	WorldDelta  float64 `json:"world_delta"`
	WorldPaused bool    `json:"world_paused"`

	CharacterTime   float64 `json:"character_time"`
	CharacterDelta  float64 `json:"character_delta"`
	CharacterPaused bool    `json:"character_paused"`

	// HitPause is true on frames where a scheduled hit pause was added.
	HitPause          bool    `json:"hit_pause,omitempty"`
	HitPauseRemaining float64 `json:"hit_pause_remaining"`

	RoundRemaining float64 `json:"round_remaining"`
	RoundLerp      float64 `json:"round_lerp"`
}

// Checksums holds the replication checksum of each clock's final state.
type Checksums struct {
	World     replication.Hash
	Character replication.Hash
	Round     replication.Hash
}

// Report is the result of a completed run.
type Report struct {
	Scenario string
	Frames   []Frame

	World     *gametime.Clock
	Character *gametime.HitPauseClock
	Round     *gametime.CountdownTimer

	// RoundExpiredAt is the first frame on which the round countdown
	// had no time remaining, or 0 if it never ran out.
	RoundExpiredAt int

	// CharacterStats summarizes the character clock's per-frame deltas.
	CharacterStats framestats.Summary

	Checksums Checksums
}

// Snapshot is the encoded final state of each clock, suitable for
// writing to disk with lib/codec and restoring with
// [replication.Decode].
type Snapshot struct {
	Scenario  string `json:"scenario"`
	World     []byte `json:"world"`
	Character []byte `json:"character"`
	Round     []byte `json:"round"`
}

// Snapshot encodes the report's final clock states.
func (r *Report) Snapshot() (*Snapshot, error) {
	world, err := replication.Encode(r.World)
	if err != nil {
		return nil, fmt.Errorf("encoding world clock: %w", err)
	}
	character, err := replication.Encode(r.Character)
	if err != nil {
		return nil, fmt.Errorf("encoding character clock: %w", err)
	}
	round, err := replication.Encode(r.Round)
	if err != nil {
		return nil, fmt.Errorf("encoding round countdown: %w", err)
	}
	return &Snapshot{
		Scenario:  r.Scenario,
		World:     world,
		Character: character,
		Round:     round,
	}, nil
}

// Run simulates scenario frame by frame.
//
// Each frame applies the events scheduled for it (speed changes, the
// world pause windows, hit pauses), updates the world clock with the
// scenario's input form, and then updates the character clock and the
// round countdown from the world. Run returns ctx.Err() if ctx is
// cancelled between frames. A nil logger discards log output.
func Run(ctx context.Context, scenario *config.Scenario, logger *slog.Logger) (*Report, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("scenario", scenario.Name)

	world := gametime.NewClock()
	world.SetSpeed(scenario.TimerSpeed)

	character := gametime.NewHitPauseClock()
	character.SetSpeed(scenario.CharacterSpeed)

	round := gametime.NewCountdownTimer()
	if scenario.Countdown.Length > 0 {
		round.StartAt(scenario.Countdown.Length, scenario.Countdown.StartAt)
	} else {
		round.Stop()
	}

	hitPauses := make(map[int]float64, len(scenario.HitPauses))
	for _, pause := range scenario.HitPauses {
		hitPauses[pause.Frame] = pause.Duration
	}
	speedChanges := make(map[int]float64, len(scenario.SpeedChanges))
	for _, change := range scenario.SpeedChanges {
		speedChanges[change.Frame] = change.Speed
	}

	recorder := framestats.NewRecorder()
	report := &Report{
		Scenario:  scenario.Name,
		Frames:    make([]Frame, 0, scenario.Frames),
		World:     world,
		Character: character,
		Round:     round,
	}

	logger.Info("simulation starting",
		"frames", scenario.Frames,
		"input", scenario.Input,
		"countdown", scenario.Countdown.Length,
	)

	for number := 1; number <= scenario.Frames; number++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if speed, ok := speedChanges[number]; ok {
			world.SetSpeed(speed)
			logger.Debug("world speed changed", "frame", number, "speed", speed)
		}
		world.SetPaused(scenario.WorldPausedAt(number))

		duration, hitPause := hitPauses[number]
		if hitPause {
			character.AddHitPause(duration)
		}

		switch scenario.Input {
		case config.InputElapsed:
			world.UpdateElapsed(gametime.FramesToSeconds(1))
		case config.InputAbsolute:
			world.Update(gametime.FramesToSeconds(number))
		case config.InputFrames:
			world.UpdateFrames(number)
		}
		character.UpdateFrom(world)
		round.UpdateFrom(world)

		recorder.Record(character.TimeDelta())

		if report.RoundExpiredAt == 0 && scenario.Countdown.Length > 0 && !round.HasTimeRemaining() {
			report.RoundExpiredAt = number
			logger.Info("round countdown expired", "frame", number, "world_time", world.CurrentTime())
		}

		report.Frames = append(report.Frames, Frame{
			Number:            number,
			WorldTime:         world.CurrentTime(),
			WorldDelta:        world.TimeDelta(),
			WorldPaused:       world.Paused(),
			CharacterTime:     character.CurrentTime(),
			CharacterDelta:    character.TimeDelta(),
			CharacterPaused:   character.Paused(),
			HitPause:          hitPause,
			HitPauseRemaining: character.HitPauseRemaining(),
			RoundRemaining:    round.RemainingTime(),
			RoundLerp:         round.Lerp(),
		})

		if scenario.LogEvery > 0 && number%scenario.LogEvery == 0 {
			logger.Debug("simulation progress",
				"frame", number,
				"world", world.String(),
				"character", character.String(),
				"round", round.String(),
			)
		}
	}

	report.CharacterStats = recorder.Summary()

	var err error
	if report.Checksums.World, err = replication.Checksum(world); err != nil {
		return nil, fmt.Errorf("checksumming world clock: %w", err)
	}
	if report.Checksums.Character, err = replication.Checksum(character); err != nil {
		return nil, fmt.Errorf("checksumming character clock: %w", err)
	}
	if report.Checksums.Round, err = replication.Checksum(round); err != nil {
		return nil, fmt.Errorf("checksumming round countdown: %w", err)
	}

	logger.Info("simulation complete",
		"world_time", world.CurrentTime(),
		"character_time", character.CurrentTime(),
		"round_remaining", round.RemainingTime(),
		"character_checksum", report.Checksums.Character.Short(),
	)
	return report, nil
}
