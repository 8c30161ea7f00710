// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write scenario: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	scenario := Default()

	if scenario.Frames != 600 {
		t.Errorf("expected frames=600, got %d", scenario.Frames)
	}
	if scenario.Input != InputElapsed {
		t.Errorf("expected input=elapsed, got %s", scenario.Input)
	}
	if scenario.TimerSpeed != 1 || scenario.CharacterSpeed != 1 {
		t.Errorf("expected unit speeds, got timer=%v character=%v", scenario.TimerSpeed, scenario.CharacterSpeed)
	}
	if err := scenario.Validate(); err != nil {
		t.Errorf("default scenario should validate: %v", err)
	}
}

func TestLoad_RequiresScenarioEnvironment(t *testing.T) {
	t.Setenv(ScenarioEnvironment, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when GAMETIMER_SCENARIO not set, got nil")
	}
	if !strings.HasPrefix(err.Error(), "GAMETIMER_SCENARIO environment variable not set") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_WithScenarioEnvironment(t *testing.T) {
	path := writeScenario(t, "round.yaml", "name: round\nframes: 120\n")
	t.Setenv(ScenarioEnvironment, path)

	scenario, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if scenario.Name != "round" || scenario.Frames != 120 {
		t.Errorf("expected round/120, got %s/%d", scenario.Name, scenario.Frames)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeScenario(t, "fight.yml", `
name: fight
frames: 300
input: absolute
timer_speed: 0.5
character_speed: 2
countdown:
  length: 99
  start_at: 1
hit_pauses:
  - frame: 10
    duration: 0.25
world_pauses:
  - from_frame: 20
    to_frame: 40
speed_changes:
  - frame: 100
    speed: 1.5
log_every: 30
`)

	scenario, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if scenario.Name != "fight" {
		t.Errorf("expected name=fight, got %s", scenario.Name)
	}
	if scenario.Input != InputAbsolute {
		t.Errorf("expected input=absolute, got %s", scenario.Input)
	}
	if scenario.TimerSpeed != 0.5 || scenario.CharacterSpeed != 2 {
		t.Errorf("unexpected speeds: timer=%v character=%v", scenario.TimerSpeed, scenario.CharacterSpeed)
	}
	if scenario.Countdown.Length != 99 || scenario.Countdown.StartAt != 1 {
		t.Errorf("unexpected countdown: %+v", scenario.Countdown)
	}
	if len(scenario.HitPauses) != 1 || scenario.HitPauses[0] != (HitPause{Frame: 10, Duration: 0.25}) {
		t.Errorf("unexpected hit pauses: %+v", scenario.HitPauses)
	}
	if len(scenario.WorldPauses) != 1 || scenario.WorldPauses[0] != (PauseWindow{FromFrame: 20, ToFrame: 40}) {
		t.Errorf("unexpected world pauses: %+v", scenario.WorldPauses)
	}
	if len(scenario.SpeedChanges) != 1 || scenario.SpeedChanges[0] != (SpeedChange{Frame: 100, Speed: 1.5}) {
		t.Errorf("unexpected speed changes: %+v", scenario.SpeedChanges)
	}
	if scenario.LogEvery != 30 {
		t.Errorf("expected log_every=30, got %d", scenario.LogEvery)
	}
}

func TestLoadFileJSONC(t *testing.T) {
	path := writeScenario(t, "fight.jsonc", `{
	// Frame counts are 1-based.
	"frames": 90,
	"input": "frames",
	"hit_pauses": [
		{"frame": 3, "duration": 0.05}, /* landing */
	],
}`)

	scenario, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if scenario.Frames != 90 || scenario.Input != InputFrames {
		t.Errorf("unexpected scenario: frames=%d input=%s", scenario.Frames, scenario.Input)
	}
	if len(scenario.HitPauses) != 1 || scenario.HitPauses[0].Frame != 3 {
		t.Errorf("unexpected hit pauses: %+v", scenario.HitPauses)
	}
	// Omitted fields keep their defaults.
	if scenario.Countdown.Length != 10 || scenario.TimerSpeed != 1 {
		t.Errorf("defaults not preserved: %+v", scenario)
	}
}

func TestLoadFileUnknownExtension(t *testing.T) {
	path := writeScenario(t, "fight.toml", "frames = 10\n")

	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "unknown extension") {
		t.Fatalf("expected unknown extension error, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	if _, err := Parse([]byte("frames: [1"), FormatYAML); err == nil {
		t.Error("expected YAML error")
	}
	if _, err := Parse([]byte(`{"frames": "ten"}`), FormatJSON); err == nil {
		t.Error("expected JSON type error")
	}
	if _, err := Parse([]byte(`{}`), Format("toml")); err == nil {
		t.Error("expected unknown format error")
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("GAMETIMER_TEST_DIR", "/from/env")

	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{"${HOME}/snap.cbor", map[string]string{"HOME": "/home/player"}, "/home/player/snap.cbor"},
		{"${GAMETIMER_TEST_DIR}/snap.cbor", nil, "/from/env/snap.cbor"},
		{"${GAMETIMER_TEST_UNSET:-/tmp}/snap.cbor", nil, "/tmp/snap.cbor"},
		{"${GAMETIMER_TEST_UNSET}", nil, ""},
		{"no/vars/here", nil, "no/vars/here"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result := expandVars(test.input, test.vars)
			if result != test.expected {
				t.Errorf("expandVars(%q) = %q, want %q", test.input, result, test.expected)
			}
		})
	}
}

func TestSnapshotFileExpanded(t *testing.T) {
	t.Setenv("GAMETIMER_TEST_OUT", "/out")

	scenario, err := Parse([]byte("snapshot_file: ${GAMETIMER_TEST_OUT}/final.cbor\n"), FormatYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if scenario.SnapshotFile != "/out/final.cbor" {
		t.Errorf("expected /out/final.cbor, got %s", scenario.SnapshotFile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Scenario)
		wantErr string
	}{
		{"valid default", func(s *Scenario) {}, ""},
		{"zero frames", func(s *Scenario) { s.Frames = 0 }, "frames must be positive"},
		{"unknown input", func(s *Scenario) { s.Input = "wallclock" }, "input must be one of"},
		{"negative countdown", func(s *Scenario) { s.Countdown.Length = -1 }, "countdown.length"},
		{"hit pause out of range", func(s *Scenario) {
			s.HitPauses = []HitPause{{Frame: 601, Duration: 0.1}}
		}, "hit_pauses[0].frame"},
		{"hit pause without duration", func(s *Scenario) {
			s.HitPauses = []HitPause{{Frame: 1}}
		}, "hit_pauses[0].duration"},
		{"inverted world pause", func(s *Scenario) {
			s.WorldPauses = []PauseWindow{{FromFrame: 10, ToFrame: 5}}
		}, "from_frame is after to_frame"},
		{"speed change at frame zero", func(s *Scenario) {
			s.SpeedChanges = []SpeedChange{{Frame: 0, Speed: 2}}
		}, "speed_changes[0].frame"},
		{"negative log interval", func(s *Scenario) { s.LogEvery = -1 }, "log_every"},
		{"negative speed allowed", func(s *Scenario) { s.TimerSpeed = -1 }, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			scenario := Default()
			test.modify(scenario)
			err := scenario.Validate()

			if test.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("expected error containing %q, got %v", test.wantErr, err)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	scenario := Default()
	scenario.Frames = 0
	scenario.LogEvery = -1

	err := scenario.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"frames", "log_every"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestWorldPausedAt(t *testing.T) {
	scenario := Default()
	scenario.WorldPauses = []PauseWindow{{FromFrame: 5, ToFrame: 7}}

	for frame, want := range map[int]bool{4: false, 5: true, 7: true, 8: false} {
		if got := scenario.WorldPausedAt(frame); got != want {
			t.Errorf("WorldPausedAt(%d) = %v, want %v", frame, got, want)
		}
	}
}
