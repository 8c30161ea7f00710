// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ScenarioEnvironment names the environment variable read by [Load].
const ScenarioEnvironment = "GAMETIMER_SCENARIO"

// InputForm selects how a simulation drives its world clock.
type InputForm string

const (
	// InputElapsed feeds the world clock a fixed delta per frame.
	InputElapsed InputForm = "elapsed"

	// InputAbsolute feeds the world clock the absolute time of each
	// frame in seconds.
	InputAbsolute InputForm = "absolute"

	// InputFrames feeds the world clock the absolute frame number.
	InputFrames InputForm = "frames"
)

var inputForms = []InputForm{InputElapsed, InputAbsolute, InputFrames}

// Scenario describes a deterministic simulation of a world clock, a
// character clock subject to hit pauses, and a round countdown.
// Frame numbers are 1-based: frame 1 is the first update.
type Scenario struct {
	// Name labels the scenario in logs and reports.
	Name string `yaml:"name" json:"name"`

	// Frames is the number of frames to simulate.
	Frames int `yaml:"frames" json:"frames"`

	// Input selects the world clock's update form.
	Input InputForm `yaml:"input" json:"input"`

	// TimerSpeed is the world clock's initial speed.
	TimerSpeed float64 `yaml:"timer_speed" json:"timer_speed"`

	// CharacterSpeed is the character clock's speed relative to the
	// world.
	CharacterSpeed float64 `yaml:"character_speed" json:"character_speed"`

	Countdown CountdownConfig `yaml:"countdown" json:"countdown"`

	// HitPauses freeze the character clock at the given frames.
	HitPauses []HitPause `yaml:"hit_pauses" json:"hit_pauses"`

	// WorldPauses pause the world clock over inclusive frame ranges.
	WorldPauses []PauseWindow `yaml:"world_pauses" json:"world_pauses"`

	// SpeedChanges set the world clock's speed from a frame onward.
	SpeedChanges []SpeedChange `yaml:"speed_changes" json:"speed_changes"`

	// LogEvery logs progress every N frames at debug level. Zero
	// disables progress logging.
	LogEvery int `yaml:"log_every" json:"log_every"`

	// SnapshotFile, if set, receives the final clock states encoded
	// as CBOR. ${VAR} and ${VAR:-default} are expanded.
	SnapshotFile string `yaml:"snapshot_file" json:"snapshot_file"`
}

// CountdownConfig starts the round countdown.
type CountdownConfig struct {
	// Length in seconds. Zero leaves the countdown stopped.
	Length float64 `yaml:"length" json:"length"`

	// StartAt is the reading the countdown starts from.
	StartAt float64 `yaml:"start_at" json:"start_at"`
}

// HitPause schedules a hit pause of Duration seconds, added just
// before the update of Frame.
type HitPause struct {
	Frame    int     `yaml:"frame" json:"frame"`
	Duration float64 `yaml:"duration" json:"duration"`
}

// PauseWindow pauses the world clock from FromFrame through ToFrame.
type PauseWindow struct {
	FromFrame int `yaml:"from_frame" json:"from_frame"`
	ToFrame   int `yaml:"to_frame" json:"to_frame"`
}

// Contains reports whether frame falls inside the window.
func (w PauseWindow) Contains(frame int) bool {
	return frame >= w.FromFrame && frame <= w.ToFrame
}

// SpeedChange sets the world clock's speed just before the update of
// Frame.
type SpeedChange struct {
	Frame int     `yaml:"frame" json:"frame"`
	Speed float64 `yaml:"speed" json:"speed"`
}

// Default returns a ten second run at 60 frames per second with a
// ten second countdown and no events.
func Default() *Scenario {
	return &Scenario{
		Name:           "default",
		Frames:         600,
		Input:          InputElapsed,
		TimerSpeed:     1,
		CharacterSpeed: 1,
		Countdown: CountdownConfig{
			Length: 10,
		},
		LogEvery: 60,
	}
}

// Load reads the scenario file named by GAMETIMER_SCENARIO.
func Load() (*Scenario, error) {
	path := os.Getenv(ScenarioEnvironment)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to a scenario file or pass --config", ScenarioEnvironment)
	}
	return LoadFile(path)
}

// LoadFile reads a scenario from path. The format follows the file
// extension: .yaml and .yml are YAML, .json and .jsonc are JSON with
// comments and trailing commas allowed. Fields the file omits keep
// their [Default] values. The result is validated.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	scenario, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenario, nil
}

// Format is a scenario file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func formatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("scenario %s: unknown extension (want .yaml, .yml, .json, or .jsonc)", path)
	}
}

// Parse decodes a scenario over [Default], expands variables, and
// validates the result.
func Parse(data []byte, format Format) (*Scenario, error) {
	scenario := Default()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, scenario); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), scenario); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown scenario format %q", format)
	}

	scenario.expandVariables()

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return scenario, nil
}

func (s *Scenario) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	s.SnapshotFile = expandVars(s.SnapshotFile, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the scenario for errors. All problems are reported
// together.
func (s *Scenario) Validate() error {
	var errs []error

	if s.Frames <= 0 {
		errs = append(errs, fmt.Errorf("frames must be positive, got %d", s.Frames))
	}

	if !containsForm(inputForms, s.Input) {
		errs = append(errs, fmt.Errorf("input must be one of: %v", inputForms))
	}

	if !isFinite(s.TimerSpeed) {
		errs = append(errs, fmt.Errorf("timer_speed must be finite"))
	}
	if !isFinite(s.CharacterSpeed) {
		errs = append(errs, fmt.Errorf("character_speed must be finite"))
	}

	if !isFinite(s.Countdown.Length) || s.Countdown.Length < 0 {
		errs = append(errs, fmt.Errorf("countdown.length must be a non-negative number"))
	}
	if !isFinite(s.Countdown.StartAt) {
		errs = append(errs, fmt.Errorf("countdown.start_at must be finite"))
	}

	for i, pause := range s.HitPauses {
		if !s.inRange(pause.Frame) {
			errs = append(errs, fmt.Errorf("hit_pauses[%d].frame %d is outside 1..%d", i, pause.Frame, s.Frames))
		}
		if !isFinite(pause.Duration) || pause.Duration <= 0 {
			errs = append(errs, fmt.Errorf("hit_pauses[%d].duration must be positive", i))
		}
	}

	for i, window := range s.WorldPauses {
		if !s.inRange(window.FromFrame) || !s.inRange(window.ToFrame) {
			errs = append(errs, fmt.Errorf("world_pauses[%d] %d..%d is outside 1..%d", i, window.FromFrame, window.ToFrame, s.Frames))
		}
		if window.FromFrame > window.ToFrame {
			errs = append(errs, fmt.Errorf("world_pauses[%d].from_frame is after to_frame", i))
		}
	}

	for i, change := range s.SpeedChanges {
		if !s.inRange(change.Frame) {
			errs = append(errs, fmt.Errorf("speed_changes[%d].frame %d is outside 1..%d", i, change.Frame, s.Frames))
		}
		if !isFinite(change.Speed) {
			errs = append(errs, fmt.Errorf("speed_changes[%d].speed must be finite", i))
		}
	}

	if s.LogEvery < 0 {
		errs = append(errs, fmt.Errorf("log_every must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (s *Scenario) inRange(frame int) bool {
	return frame >= 1 && frame <= s.Frames
}

// WorldPausedAt reports whether any world pause window covers frame.
func (s *Scenario) WorldPausedAt(frame int) bool {
	for _, window := range s.WorldPauses {
		if window.Contains(frame) {
			return true
		}
	}
	return false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func containsForm(forms []InputForm, form InputForm) bool {
	for _, f := range forms {
		if f == form {
			return true
		}
	}
	return false
}
