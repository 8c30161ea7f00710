// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/gametimer/cmd/gametimer/cli"
	"github.com/bureau-foundation/gametimer/lib/gametime"
	"github.com/bureau-foundation/gametimer/lib/replication"
	"github.com/bureau-foundation/gametimer/lib/simulation"
	"github.com/bureau-foundation/gametimer/lib/snapshot"
)

func inspectCommand(stdout io.Writer) *cli.Command {
	var raw bool
	return &cli.Command{
		Name:    "inspect",
		Summary: "Show the clocks stored in a snapshot file",
		Description: `Restore the clocks from a snapshot written by 'gametimer simulate
--snapshot' and print their state and replication checksums. The
checksums match the ones simulate printed for the same run.`,
		Usage: "gametimer inspect [--raw] FILE",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
			flagSet.BoolVar(&raw, "raw", false, "print CBOR diagnostic notation instead of decoding")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("exactly one snapshot FILE is required")
			}
			return runInspect(args[0], raw, stdout)
		},
	}
}

func runInspect(path string, raw bool, stdout io.Writer) error {
	if raw {
		notation, err := snapshot.Describe(path)
		if err != nil {
			return snapshotError(path, err)
		}
		fmt.Fprintln(stdout, notation)
		return nil
	}

	var state simulation.Snapshot
	if err := snapshot.Read(path, &state); err != nil {
		return snapshotError(path, err)
	}

	world := gametime.NewClock()
	character := gametime.NewHitPauseClock()
	round := gametime.NewCountdownTimer()
	if err := replication.Decode(state.World, world); err != nil {
		return cli.Validation("restoring world clock from %s: %w", path, err)
	}
	if err := replication.Decode(state.Character, character); err != nil {
		return cli.Validation("restoring character clock from %s: %w", path, err)
	}
	if err := replication.Decode(state.Round, round); err != nil {
		return cli.Validation("restoring round countdown from %s: %w", path, err)
	}

	worldSum, err := replication.Checksum(world)
	if err != nil {
		return cli.Internal("checksum world: %w", err)
	}
	characterSum, err := replication.Checksum(character)
	if err != nil {
		return cli.Internal("checksum character: %w", err)
	}
	roundSum, err := replication.Checksum(round)
	if err != nil {
		return cli.Internal("checksum round: %w", err)
	}

	tw := tabwriter.NewWriter(stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "scenario\t%s\n", state.Scenario)
	fmt.Fprintf(tw, "world\t%s\t%.4fs%s\t%s\n", world, world.CurrentTime(), pausedLabel(world.Paused()), worldSum.Short())
	fmt.Fprintf(tw, "character\t%s\t%.4fs%s\t%s\n", character, character.CurrentTime(), pausedLabel(character.Paused()), characterSum.Short())
	fmt.Fprintf(tw, "round\t%s\t%.4fs remaining\t%s\n", round, round.RemainingTime(), roundSum.Short())
	return tw.Flush()
}

func pausedLabel(paused bool) string {
	if paused {
		return " (paused)"
	}
	return ""
}

func snapshotError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return cli.Validation("snapshot %s does not exist", path)
	}
	return cli.Validation("reading snapshot: %w", err)
}
