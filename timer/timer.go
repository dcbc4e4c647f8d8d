// Package timer is the focusflow countdown sequencer. It owns the remaining
// time and the current session kind, advances once per tick while running,
// and moves to the next session kind when a session completes.
package timer

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/focusflow/internal/session"
	"github.com/ayoisaiah/focusflow/settings"
	"github.com/ayoisaiah/focusflow/store"
)

// TickInterval is the time between two ticks.
const TickInterval = time.Second

// Config supplies session lengths and the auto-start preference. It is
// read on every use.
type Config interface {
	Durations() settings.Durations
	AutoStart() bool
}

// Audio plays the session cues.
type Audio interface {
	PlayFocus()
	PauseFocus()
	PlayAlarm()
}

// Recorder records completed sessions and decides the break kind.
type Recorder interface {
	RecordSession(kind session.Kind, durationSeconds int)
	ShouldLongBreak() bool
}

// CompletionHook runs after a session completes and the next one is set.
type CompletionHook func(completed, next session.Kind)

// Sequencer is the countdown state machine.
type Sequencer struct {
	store     *store.Store
	config    Config
	audio     Audio
	stats     Recorder
	scheduler Scheduler
	display   Display
	hook      CompletionHook
	cancel    CancelFunc
	current   session.Kind
	ring      Ring
	duration  int
	remaining int
	running   bool
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithDisplay sets the display that receives a frame on every change.
func WithDisplay(d Display) Option {
	return func(s *Sequencer) {
		s.display = d
	}
}

// WithRingRadius sets the radius of the progress ring.
func WithRingRadius(r float64) Option {
	return func(s *Sequencer) {
		if r > 0 {
			s.ring.Radius = r
		}
	}
}

// WithCompletionHook registers fn to run after every completed session.
func WithCompletionHook(fn CompletionHook) Option {
	return func(s *Sequencer) {
		s.hook = fn
	}
}

// New creates the sequencer for the persisted current session, with the
// full duration remaining and the clock stopped.
func New(
	st *store.Store,
	cfg Config,
	audio Audio,
	stats Recorder,
	sched Scheduler,
	opts ...Option,
) *Sequencer {
	s := &Sequencer{
		store:     st,
		config:    cfg,
		audio:     audio,
		stats:     stats,
		scheduler: sched,
		ring:      Ring{Radius: DefaultRingRadius},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.current = session.Parse(store.Get(st, store.KeyCurrentSession, string(session.Focus)))
	s.duration = s.sessionDuration(s.current)
	s.remaining = s.duration

	s.render()

	st.Set(store.KeyIsRunning, false)

	return s
}

// SetDisplay replaces the display and renders the current state on it.
func (s *Sequencer) SetDisplay(d Display) {
	s.display = d
	s.render()
}

func (s *Sequencer) sessionDuration(kind session.Kind) int {
	secs := s.config.Durations().Seconds(kind)
	if secs <= 0 {
		// never configure a zero-length session
		secs = 60
	}

	return secs
}

// Start begins counting down. It is a no-op while running.
func (s *Sequencer) Start() {
	if s.running {
		return
	}

	s.running = true
	s.store.Set(store.KeyIsRunning, true)

	s.audio.PlayFocus()

	s.cancel = s.scheduler.Every(TickInterval, s.tick)

	slog.Debug("timer started",
		slog.String("session", s.current.String()),
		slog.Int("remaining", s.remaining),
	)

	s.render()
}

// Pause stops counting down. It is a no-op unless running.
func (s *Sequencer) Pause() {
	if !s.running {
		return
	}

	s.stopTicking()
	s.running = false

	s.store.Set(store.KeyIsRunning, false)
	s.store.Set(store.KeyRemainingSeconds, s.remaining)

	s.audio.PauseFocus()

	s.render()
}

func (s *Sequencer) stopTicking() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Toggle starts a stopped timer or pauses a running one.
func (s *Sequencer) Toggle() {
	if s.running {
		s.Pause()
		return
	}

	s.Start()
}

// Reset stops the timer and restores the full duration of the current
// session, re-read from settings.
func (s *Sequencer) Reset() {
	s.Pause()

	s.duration = s.sessionDuration(s.current)
	s.remaining = s.duration
	s.store.Set(store.KeyRemainingSeconds, s.remaining)

	s.render()
}

// Resume restarts a timer that was running before a restart.
func (s *Sequencer) Resume() {
	if s.remaining > 0 {
		s.Start()
	}
}

// Restore applies a persisted remaining time to the current session. Values
// outside (0, duration] are ignored.
func (s *Sequencer) Restore(remaining int) bool {
	if remaining <= 0 || remaining > s.duration {
		return false
	}

	s.remaining = remaining
	s.render()

	return true
}

// SetSession makes kind current with its full duration. It does not start
// the timer.
func (s *Sequencer) SetSession(kind session.Kind) {
	s.current = kind
	s.store.Set(store.KeyCurrentSession, string(kind))

	s.duration = s.sessionDuration(kind)
	s.remaining = s.duration
	s.store.Set(store.KeyRemainingSeconds, s.remaining)

	s.render()
}

// Refresh re-applies the current session after its duration changed.
func (s *Sequencer) Refresh() {
	s.SetSession(s.current)
}

// Persist saves the remaining time. It is called before the process exits.
func (s *Sequencer) Persist() {
	s.store.Set(store.KeyRemainingSeconds, s.remaining)
}

func (s *Sequencer) tick() {
	if s.remaining <= 0 {
		s.completeSession()
		return
	}

	s.remaining--
	s.render()

	if s.remaining == 0 {
		s.completeSession()
	}
}

func (s *Sequencer) completeSession() {
	s.Pause()

	s.remaining = 0
	s.render()

	completed := s.current

	s.audio.PlayAlarm()

	s.stats.RecordSession(completed, s.duration)

	slog.Info("session completed",
		slog.String("session", completed.String()),
		slog.Int("duration", s.duration),
	)

	s.switchSessionAuto()

	if s.hook != nil {
		s.hook(completed, s.current)
	}
}

func (s *Sequencer) switchSessionAuto() {
	next := session.Focus

	if s.current == session.Focus {
		next = session.ShortBreak

		if s.stats.ShouldLongBreak() {
			next = session.LongBreak
		}
	}

	s.SetSession(next)

	if s.config.AutoStart() {
		s.Start()
	}
}

func (s *Sequencer) render() {
	if s.display == nil {
		return
	}

	s.display.Render(s.Frame())
}

// Frame returns the current state as a display frame.
func (s *Sequencer) Frame() Frame {
	return s.ring.frame(s.current, s.remaining, s.duration, s.running)
}

// Running reports whether the timer is counting down.
func (s *Sequencer) Running() bool {
	return s.running
}

// Current returns the current session kind.
func (s *Sequencer) Current() session.Kind {
	return s.current
}

// Remaining returns the seconds left in the current session.
func (s *Sequencer) Remaining() int {
	return s.remaining
}

// Duration returns the length of the current session in seconds.
func (s *Sequencer) Duration() int {
	return s.duration
}
