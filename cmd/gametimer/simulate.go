// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/gametimer/cmd/gametimer/cli"
	"github.com/bureau-foundation/gametimer/lib/config"
	"github.com/bureau-foundation/gametimer/lib/gametime"
	"github.com/bureau-foundation/gametimer/lib/simulation"
	"github.com/bureau-foundation/gametimer/lib/snapshot"
)

type simulateOptions struct {
	configPath   string
	frames       int
	trace        bool
	traceFormat  string
	snapshotPath string
	logLevel     string
}

func simulateCommand(stdout io.Writer) *cli.Command {
	var options simulateOptions
	return &cli.Command{
		Name:    "simulate",
		Summary: "Replay a scenario deterministically",
		Description: `Replay a scenario file frame by frame and print the final clocks, the
character's frame-delta statistics, and a replication checksum per clock.

The scenario is read from --config, or from the file named by
GAMETIMER_SCENARIO. Two runs of the same scenario print the same
checksums on any machine.`,
		Usage: "gametimer simulate [--config FILE] [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("simulate", pflag.ContinueOnError)
			flagSet.StringVarP(&options.configPath, "config", "c", "", "scenario file (.yaml, .yml, .json, .jsonc)")
			flagSet.IntVar(&options.frames, "frames", 0, "override the scenario's frame count")
			flagSet.BoolVar(&options.trace, "trace", false, "print every frame")
			flagSet.StringVar(&options.traceFormat, "trace-format", "text", "trace output format: text or json")
			flagSet.StringVar(&options.snapshotPath, "snapshot", "", "write the final clock states as CBOR to this file")
			flagSet.StringVar(&options.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Replay a scenario file",
				Command:     "gametimer simulate --config fight.yaml",
			},
			{
				Description: "Stream frames as JSON lines",
				Command:     "gametimer simulate --config fight.jsonc --trace --trace-format json",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			level, err := cli.ParseLevel(options.logLevel)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSimulate(ctx, options, stdout, cli.NewCommandLogger(level))
		},
	}
}

func runSimulate(ctx context.Context, options simulateOptions, stdout io.Writer, logger *slog.Logger) error {
	if options.traceFormat != "text" && options.traceFormat != "json" {
		return cli.Validation("invalid --trace-format %q", options.traceFormat).
			WithHint("Use text or json.")
	}

	scenario, err := loadScenario(options.configPath)
	if err != nil {
		return err
	}
	if options.frames != 0 {
		scenario.Frames = options.frames
		if err := scenario.Validate(); err != nil {
			return cli.Validation("invalid scenario after --frames %d: %w", options.frames, err)
		}
	}
	if options.snapshotPath != "" {
		scenario.SnapshotFile = options.snapshotPath
	}

	report, err := simulation.Run(ctx, scenario, logger.With("command", "simulate"))
	if err != nil {
		return cli.Internal("simulating %s: %w", scenario.Name, err)
	}

	if options.trace {
		if err := writeTrace(stdout, report.Frames, options.traceFormat); err != nil {
			return cli.Internal("writing trace: %w", err)
		}
	}
	if options.traceFormat != "json" || !options.trace {
		writeSummary(stdout, scenario, report)
	}

	if scenario.SnapshotFile != "" {
		if err := writeSnapshot(scenario.SnapshotFile, report); err != nil {
			return err
		}
		logger.Info("snapshot written", "path", scenario.SnapshotFile)
	}
	return nil
}

func loadScenario(path string) (*config.Scenario, error) {
	var scenario *config.Scenario
	var err error
	if path != "" {
		scenario, err = config.LoadFile(path)
	} else {
		scenario, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("loading scenario: %w", err).
			WithHint("Pass --config FILE or set GAMETIMER_SCENARIO to a scenario file.")
	}
	return scenario, nil
}

func writeTrace(w io.Writer, frames []simulation.Frame, format string) error {
	if format == "json" {
		encoder := json.NewEncoder(w)
		for _, frame := range frames {
			if err := encoder.Encode(frame); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FRAME\tWORLD\tΔWORLD\tCHARACTER\tΔCHARACTER\tHIT PAUSE\tROUND\tLERP")
	for _, frame := range frames {
		fmt.Fprintf(tw, "%d\t%.4f%s\t%.4f\t%.4f%s\t%.4f\t%.4f\t%s\t%.3f\n",
			frame.Number,
			frame.WorldTime, pausedMarker(frame.WorldPaused),
			frame.WorldDelta,
			frame.CharacterTime, pausedMarker(frame.CharacterPaused),
			frame.CharacterDelta,
			frame.HitPauseRemaining,
			gametime.FormatTime(frame.RoundRemaining),
			frame.RoundLerp,
		)
	}
	return tw.Flush()
}

func pausedMarker(paused bool) string {
	if paused {
		return "*"
	}
	return ""
}

func writeSummary(w io.Writer, scenario *config.Scenario, report *simulation.Report) {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "scenario\t%s (%d frames, %s input)\n", scenario.Name, scenario.Frames, scenario.Input)
	fmt.Fprintf(tw, "world\t%s\t%.4fs\n", report.World, report.World.CurrentTime())
	fmt.Fprintf(tw, "character\t%s\t%.4fs\n", report.Character, report.Character.CurrentTime())
	if report.RoundExpiredAt > 0 {
		fmt.Fprintf(tw, "round\t%s\texpired at frame %d\n", report.Round, report.RoundExpiredAt)
	} else {
		fmt.Fprintf(tw, "round\t%s\t%.4fs remaining\n", report.Round, report.Round.RemainingTime())
	}
	fmt.Fprintf(tw, "frame deltas\t%s\n", report.CharacterStats)
	fmt.Fprintf(tw, "checksum world\t%s\n", report.Checksums.World)
	fmt.Fprintf(tw, "checksum character\t%s\n", report.Checksums.Character)
	fmt.Fprintf(tw, "checksum round\t%s\n", report.Checksums.Round)
	tw.Flush()
}

func writeSnapshot(path string, report *simulation.Report) error {
	state, err := report.Snapshot()
	if err != nil {
		return cli.Internal("encoding snapshot: %w", err)
	}
	if err := snapshot.Write(path, state); err != nil {
		return cli.Internal("writing snapshot %s: %w", path, err)
	}
	return nil
}
