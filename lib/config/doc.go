// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads simulation scenarios.
//
// A scenario is loaded from a single file named either by the
// GAMETIMER_SCENARIO environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no discovery and no automatic file
// search. Fields the file leaves out keep their [Default] values.
//
// YAML (.yaml, .yml) and JSON (.json, .jsonc) are both accepted. JSON
// files may carry comments and trailing commas.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No environment
// variable overrides a timing value, so a scenario file replays the
// same frames on every machine.
//
// Key exports:
//
//   - [Scenario] -- frames, input form, speeds, countdown, and events
//   - [Default] -- a ten second run with a ten second countdown
//   - [Load], [LoadFile], and [Parse] -- the entry points for loading
//
// This package depends on no other gametimer packages.
package config
