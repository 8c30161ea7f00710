// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/gametimer/cmd/gametimer/cli"
	"github.com/bureau-foundation/gametimer/lib/clock"
	"github.com/bureau-foundation/gametimer/lib/framestats"
	"github.com/bureau-foundation/gametimer/lib/gametime"
	"github.com/bureau-foundation/gametimer/lib/tui"
)

type watchOptions struct {
	countdown       time.Duration
	hitPause        time.Duration
	speed           float64
	framesPerSecond int
	logLevel        string
}

const (
	speedStep = 0.25
	maxSpeed  = 8
)

func watchCommand(stdout io.Writer) *cli.Command {
	var options watchOptions
	return &cli.Command{
		Name:    "watch",
		Summary: "Live terminal view of running clocks",
		Description: `Run a world clock against real time and show it alongside a hit-pause
character clock and a round countdown, both following the world.

Keys: space pauses the world, h adds a hit pause to the character,
+ and - change the world speed, r restarts the round, q quits.
Requires a terminal. A frame-delta summary is printed on exit.`,
		Usage: "gametimer watch [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("watch", pflag.ContinueOnError)
			flagSet.DurationVar(&options.countdown, "countdown", 30*time.Second, "round countdown length")
			flagSet.DurationVar(&options.hitPause, "hit-pause", 250*time.Millisecond, "hit pause length added by the h key")
			flagSet.Float64Var(&options.speed, "speed", 1, "initial world speed")
			flagSet.IntVar(&options.framesPerSecond, "fps", gametime.FramesPerSecond, "frames per second")
			flagSet.StringVar(&options.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if options.framesPerSecond <= 0 {
				return cli.Validation("--fps must be positive, got %d", options.framesPerSecond)
			}
			if options.countdown < 0 || options.hitPause < 0 {
				return cli.Validation("--countdown and --hit-pause must not be negative")
			}
			if !cli.IsTerminal(os.Stdin) || !cli.IsTerminal(os.Stdout) {
				return cli.Validation("watch requires a terminal").
					WithHint("Use 'gametimer simulate' for non-interactive runs.")
			}
			level, err := cli.ParseLevel(options.logLevel)
			if err != nil {
				return err
			}
			return runWatch(options, stdout, cli.NewCommandLogger(level))
		},
	}
}

func runWatch(options watchOptions, stdout io.Writer, logger *slog.Logger) error {
	model := newWatchModel(clock.Real(), options)
	defer model.ticker.Stop()

	logger.Info("watch starting", "countdown", options.countdown, "fps", options.framesPerSecond)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return cli.Internal("running viewer: %w", err)
	}
	if model.err != nil {
		return cli.Internal("sampling real time: %w", model.err)
	}

	fmt.Fprintf(stdout, "frame deltas: %s\n", model.stats.Summary())
	return nil
}

type watchKeyMap struct {
	Pause    key.Binding
	HitPause key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

func (keys watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Pause, keys.HitPause, keys.Faster, keys.Slower, keys.Restart, keys.Quit}
}

func (keys watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{keys.ShortHelp()}
}

var defaultWatchKeys = watchKeyMap{
	Pause: key.NewBinding(
		key.WithKeys(" ", "space", "p"),
		key.WithHelp("space", "pause world"),
	),
	HitPause: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "hit pause"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "slower"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart round"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// frameMsg is sent on every ticker tick.
type frameMsg time.Time

// watchModel owns the clock hierarchy: a sampler reading real time
// feeds a root clock, the world follows the root (so pausing the world
// does not stop the sampler), and the character and round follow the
// world.
type watchModel struct {
	clock   clock.Clock
	ticker  *clock.Ticker
	options watchOptions

	sampler   *gametime.Sampler
	root      *gametime.Clock
	world     *gametime.Clock
	character *gametime.HitPauseClock
	round     *gametime.CountdownTimer

	stats   *framestats.Recorder
	flashes *tui.FlashTracker

	keys     watchKeyMap
	help     help.Model
	progress progress.Model
	theme    tui.Theme
	width    int

	// err stops the program when a frame cannot be sampled.
	err error
}

func newWatchModel(source clock.Clock, options watchOptions) *watchModel {
	theme := tui.DefaultTheme
	model := &watchModel{
		clock:     source,
		ticker:    source.NewTicker(clock.FrameInterval(options.framesPerSecond)),
		options:   options,
		sampler:   gametime.NewSampler(source),
		root:      gametime.NewClock(),
		world:     gametime.NewClock(),
		character: gametime.NewHitPauseClock(),
		round:     gametime.NewCountdownTimer(),
		stats:     framestats.NewRecorder(),
		flashes:   tui.NewFlashTracker(),
		keys:      defaultWatchKeys,
		help:      help.New(),
		progress: progress.New(
			progress.WithGradient(string(theme.ProgressEmpty), string(theme.ProgressFull)),
			progress.WithoutPercentage(),
		),
		theme: theme,
		width: 72,
	}
	model.world.SetSpeed(options.speed)
	model.sampler.Start()
	model.round.Start(options.countdown.Seconds())
	return model
}

func (m *watchModel) Init() tea.Cmd {
	return m.waitForFrame()
}

func (m *watchModel) waitForFrame() tea.Cmd {
	ticks := m.ticker.C
	return func() tea.Msg {
		return frameMsg(<-ticks)
	}
}

// step advances every clock by one frame of sampled real time.
func (m *watchModel) step() error {
	if err := m.sampler.Update(); err != nil {
		return err
	}
	m.root.UpdateSource(m.sampler)
	m.world.UpdateFrom(m.root)
	m.character.UpdateFrom(m.world)
	m.round.UpdateFrom(m.world)
	m.stats.Record(m.character.TimeDelta())
	return nil
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if err := m.step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.waitForFrame()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		now := m.clock.Now()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.world.SetPaused(!m.world.Paused())
		case key.Matches(msg, m.keys.HitPause):
			m.character.AddHitPause(m.options.hitPause.Seconds())
			m.flashes.Ignite("character", tui.FlashHitPause, now)
		case key.Matches(msg, m.keys.Faster):
			m.world.SetSpeed(min(m.world.Speed()+speedStep, maxSpeed))
		case key.Matches(msg, m.keys.Slower):
			m.world.SetSpeed(max(m.world.Speed()-speedStep, 0))
		case key.Matches(msg, m.keys.Restart):
			m.round.Restart()
			m.flashes.Ignite("round", tui.FlashRestart, now)
		}
		return m, nil
	}
	return m, nil
}

func (m *watchModel) View() string {
	now := m.clock.Now()
	width := max(m.width, 20)

	header := lipgloss.NewStyle().
		Foreground(m.theme.HeaderForeground).
		Bold(true).
		Render(fmt.Sprintf("gametimer watch  speed %.2fx", m.world.Speed()))

	rows := []tui.ClockRow{
		{
			Label:   "world",
			State:   m.worldState(),
			Readout: m.world.String(),
			Detail:  fmt.Sprintf("%.3fs", m.world.CurrentTime()),
		},
		{
			Label:   "character",
			State:   m.characterState(),
			Readout: m.character.String(),
			Detail:  m.hitPauseDetail(),
		},
		{
			Label:   "round",
			State:   m.roundState(),
			Readout: m.round.String(),
		},
	}

	var view strings.Builder
	view.WriteString(header + "\n\n")
	for _, row := range rows {
		flash := m.flashes.Intensity(row.Label, now)
		view.WriteString(tui.RenderClockRow(m.theme, row, width, flash, m.flashes.Kind(row.Label)) + "\n")
	}

	m.progress.Width = width
	view.WriteString("\n" + m.progress.ViewAs(max(m.round.Lerp(), 0)) + "\n")
	view.WriteString(tui.RenderGauge(m.theme, width, m.hitPauseFraction(), m.theme.StateHitPause) + "\n\n")
	view.WriteString(m.help.View(m.keys))
	return view.String()
}

func (m *watchModel) worldState() tui.ClockState {
	if m.world.Paused() {
		return tui.StatePaused
	}
	return tui.StateRunning
}

func (m *watchModel) characterState() tui.ClockState {
	switch {
	case m.world.Paused():
		return tui.StatePaused
	case m.character.HitPauseRemaining() > 0:
		return tui.StateHitPause
	default:
		return tui.StateRunning
	}
}

func (m *watchModel) roundState() tui.ClockState {
	switch {
	case !m.round.HasTimeRemaining():
		return tui.StateExpired
	case m.world.Paused():
		return tui.StatePaused
	default:
		return tui.StateRunning
	}
}

func (m *watchModel) hitPauseDetail() string {
	if remaining := m.character.HitPauseRemaining(); remaining > 0 {
		return fmt.Sprintf("%.2fs left", remaining)
	}
	return ""
}

func (m *watchModel) hitPauseFraction() float64 {
	length := m.options.hitPause.Seconds()
	if length <= 0 {
		return 0
	}
	return m.character.HitPauseRemaining() / length
}
