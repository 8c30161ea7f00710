// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the gametimer binary: a
// tree of [Command] values with pflag flag sets, structured help,
// typo suggestions for unknown commands and flags, categorized
// [ToolError] values that map to exit codes, and the slog logger
// setup shared by all commands.
package cli
