// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bureau-foundation/gametimer/cmd/gametimer/cli"
	"github.com/bureau-foundation/gametimer/lib/gametime"
)

func formatCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "format",
		Summary: "Format seconds as M:SS or H:MM:SS",
		Usage:   "gametimer format SECONDS...",
		Examples: []cli.Example{
			{Command: "gametimer format 59.9 3725"},
		},
		Run: func(args []string) error {
			return eachArgument(args, "SECONDS", func(arg string) error {
				seconds, err := parseSeconds(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(stdout, gametime.FormatTime(seconds))
				return nil
			})
		},
	}
}

func framesCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "frames",
		Summary: "Convert seconds to whole 60 Hz frames",
		Usage:   "gametimer frames SECONDS...",
		Run: func(args []string) error {
			return eachArgument(args, "SECONDS", func(arg string) error {
				seconds, err := parseSeconds(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(stdout, gametime.SecondsToFrames(seconds))
				return nil
			})
		},
	}
}

func secondsCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "seconds",
		Summary: "Convert 60 Hz frames to seconds",
		Usage:   "gametimer seconds FRAMES...",
		Run: func(args []string) error {
			return eachArgument(args, "FRAMES", func(arg string) error {
				frames, err := strconv.Atoi(arg)
				if err != nil {
					return cli.Validation("invalid frame count %q: must be an integer", arg)
				}
				fmt.Fprintln(stdout, strconv.FormatFloat(gametime.FramesToSeconds(frames), 'f', -1, 64))
				return nil
			})
		},
	}
}

func eachArgument(args []string, name string, handle func(string) error) error {
	if len(args) == 0 {
		return cli.Validation("at least one %s argument is required", name)
	}
	for _, arg := range args {
		if err := handle(arg); err != nil {
			return err
		}
	}
	return nil
}

func parseSeconds(arg string) (float64, error) {
	seconds, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, cli.Validation("invalid seconds %q: must be a number", arg)
	}
	return seconds, nil
}
