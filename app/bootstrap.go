package app

import (
	"log/slog"

	"github.com/ayoisaiah/focusflow/controls"
	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/settings"
	"github.com/ayoisaiah/focusflow/stats"
	"github.com/ayoisaiah/focusflow/store"
	"github.com/ayoisaiah/focusflow/timer"
)

// Player is the audio cue player shared by the sequencer and settings.
type Player interface {
	timer.Audio
	settings.Mixer
}

// Components holds the objects that make up a running focusflow instance.
type Components struct {
	Store     *store.Store
	Settings  *settings.Settings
	Audio     Player
	Stats     *stats.Stats
	Sequencer *timer.Sequencer
	Controls  *controls.Model
}

// Deps are the collaborators Bootstrap does not construct itself.
type Deps struct {
	// NewAudio builds the player once settings are in place.
	NewAudio  func(st *store.Store) Player
	Scheduler timer.Scheduler
	Calls     <-chan func()
	Hook      timer.CompletionHook
	Displays  []timer.Display
}

// Bootstrap initialises persistence, settings, audio, statistics, the
// sequencer and the controls in that order, then restores the session that
// was active when focusflow last exited.
func Bootstrap(cfg *config.Config, st *store.Store, deps Deps) *Components {
	st.Init()

	prefs := settings.New(st)
	applyCLISettings(prefs, cfg.CLI)

	audio := deps.NewAudio(st)

	counters := stats.New(st)

	// read before timer.New, which clears the flag
	wasRunning := store.Get(st, store.KeyIsRunning, false)
	remaining := store.Get(st, store.KeyRemainingSeconds, 0)

	opts := []timer.Option{
		timer.WithRingRadius(cfg.Timer.RingRadius),
	}

	if deps.Hook != nil {
		opts = append(opts, timer.WithCompletionHook(deps.Hook))
	}

	seq := timer.New(st, prefs, audio, counters, deps.Scheduler, opts...)

	prefs.Bind(seq, audio)

	model := controls.New(seq, prefs, deps.Calls)

	seq.SetDisplay(append(timer.Displays{model}, deps.Displays...))
	counters.SetDisplay(model.SetSummary)

	c := &Components{
		Store:     st,
		Settings:  prefs,
		Audio:     audio,
		Stats:     counters,
		Sequencer: seq,
		Controls:  model,
	}

	c.restore(cfg.Timer.RestoreRemaining, wasRunning, remaining)

	return c
}

func (c *Components) restore(restoreRemaining, wasRunning bool, remaining int) {
	if restoreRemaining && c.Sequencer.Restore(remaining) {
		slog.Debug("restored remaining time", slog.Int("remaining", remaining))
	}

	if wasRunning {
		slog.Info("resuming timer", slog.String("session", c.Sequencer.Current().String()))
		c.Sequencer.Resume()
	}
}

// applyCLISettings saves settings given on the command line or in the
// first-run prompt.
func applyCLISettings(prefs *settings.Settings, cli config.CLIConfig) {
	if cli.Focus != "" {
		prefs.SetFocus(cli.Focus)
	}

	if cli.ShortBreak != "" {
		prefs.SetShortBreak(cli.ShortBreak)
	}

	if cli.LongBreak != "" {
		prefs.SetLongBreak(cli.LongBreak)
	}

	if cli.Volume != "" {
		prefs.SetVolumeInput(cli.Volume)
	}

	if cli.Mute != nil {
		prefs.SetMute(*cli.Mute)
	}

	if cli.AutoStart != nil {
		prefs.SetAutoStart(*cli.AutoStart)
	}
}
