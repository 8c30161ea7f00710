// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// gametimer drives the game clock library from the command line:
// deterministic scenario replays, snapshot inspection, a live terminal
// clock viewer, and frame/time conversions.
package main

import (
	"io"
	"os"

	"github.com/bureau-foundation/gametimer/cmd/gametimer/cli"
	"github.com/bureau-foundation/gametimer/lib/version"
)

func main() {
	os.Exit(cli.ExitStatus(os.Stderr, run(os.Args[1:], os.Stdout)))
}

func run(args []string, stdout io.Writer) error {
	// The root command has no flag set, so --version is handled here.
	if len(args) > 0 && args[0] == "--version" {
		version.Print(stdout, "gametimer")
		return nil
	}
	return root(stdout).Execute(args)
}

func root(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "gametimer",
		Summary: "Game clock toolkit",
		Description: `gametimer drives hierarchical game clocks: a world clock fed by the host,
followers that inherit its pauses and speed, hit-pause clocks that freeze
for a few frames, and countdown timers.`,
		Subcommands: []*cli.Command{
			simulateCommand(stdout),
			watchCommand(stdout),
			inspectCommand(stdout),
			formatCommand(stdout),
			framesCommand(stdout),
			secondsCommand(stdout),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					if len(args) > 0 {
						return cli.Validation("unexpected argument: %s", args[0])
					}
					version.Print(stdout, "gametimer")
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Replay a scenario and print every frame",
				Command:     "gametimer simulate --config fight.yaml --trace",
			},
			{
				Description: "Watch live clocks with a 30 second round",
				Command:     "gametimer watch --countdown 30s",
			},
			{
				Description: "Format a duration as a clock readout",
				Command:     "gametimer format 3725",
			},
		},
	}
}
