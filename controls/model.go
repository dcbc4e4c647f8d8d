// Package controls is the focusflow terminal UI. It translates key presses
// into sequencer and settings calls and draws the state they report back.
package controls

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/focusflow/internal/session"
	"github.com/ayoisaiah/focusflow/settings"
	"github.com/ayoisaiah/focusflow/stats"
	"github.com/ayoisaiah/focusflow/timer"
)

// Sequencer is the part of the timer the controls drive.
type Sequencer interface {
	Toggle()
	Pause()
	Reset()
	SetSession(kind session.Kind)
	Running() bool
	Frame() timer.Frame
	Persist()
}

// Preferences is the part of the settings the settings panel edits.
type Preferences interface {
	Load() settings.Values
	SetFocus(input string) int
	SetShortBreak(input string) int
	SetLongBreak(input string) int
	SetVolumeInput(input string) float64
	SetMute(muted bool)
	SetAutoStart(enabled bool)
}

// callMsg carries a scheduled sequencer callback onto the UI goroutine.
type callMsg func()

// panelValues backs the settings form fields.
type panelValues struct {
	focus      string
	shortBreak string
	longBreak  string
	volume     string
	mute       bool
	autoStart  bool
}

// Model is the bubbletea model for the timer screen.
type Model struct {
	seq        Sequencer
	prefs      Preferences
	calls      <-chan func()
	form       *huh.Form
	values     *panelValues
	opened     panelValues
	help       help.Model
	progress   progress.Model
	keys       keymap
	summary    stats.Summary
	frame      timer.Frame
	hidden     bool
	fullscreen bool
	quitting   bool
}

// New returns the model. Scheduled callbacks received on calls run inside
// Update, serialised with key handling.
func New(seq Sequencer, prefs Preferences, calls <-chan func()) *Model {
	return &Model{
		seq:      seq,
		prefs:    prefs,
		calls:    calls,
		keys:     defaultKeymap,
		help:     help.New(),
		progress: progress.New(progress.WithSolidFill(string(sessionColors[session.Focus])), progress.WithoutPercentage()),
		frame:    seq.Frame(),
		hidden:   true,
	}
}

// Render implements timer.Display.
func (m *Model) Render(f timer.Frame) {
	m.frame = f
}

// SetSummary receives the statistics display.
func (m *Model) SetSummary(s stats.Summary) {
	m.summary = s
}

func waitForCall(calls <-chan func()) tea.Cmd {
	if calls == nil {
		return nil
	}

	return func() tea.Msg {
		fn, ok := <-calls
		if !ok {
			return nil
		}

		return callMsg(fn)
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForCall(m.calls)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callMsg:
		msg()

		return m, waitForCall(m.calls)

	case tea.KeyMsg:
		if !m.hidden {
			return m.updatePanel(msg)
		}

		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil
	}

	if !m.hidden && m.form != nil {
		return m.updateForm(msg)
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.togglePlay):
		m.seq.Toggle()

	case key.Matches(msg, m.keys.reset):
		m.seq.Reset()

	case key.Matches(msg, m.keys.focus):
		m.switchSession(session.Focus)

	case key.Matches(msg, m.keys.shortBreak):
		m.switchSession(session.ShortBreak)

	case key.Matches(msg, m.keys.longBreak):
		m.switchSession(session.LongBreak)

	case key.Matches(msg, m.keys.fullscreen):
		return m, m.toggleFullscreen()

	case key.Matches(msg, m.keys.settings):
		return m, m.toggleSettings()

	case key.Matches(msg, m.keys.mute):
		v := m.prefs.Load()
		m.prefs.SetMute(!v.Mute)
	}

	return m, nil
}

func (m *Model) switchSession(kind session.Kind) {
	if m.seq.Running() {
		m.seq.Pause()
	}

	m.seq.SetSession(kind)
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.seq.Persist()

	return tea.Batch(tea.ClearScreen, tea.Quit)
}

func (m *Model) toggleFullscreen() tea.Cmd {
	m.fullscreen = !m.fullscreen

	if m.fullscreen {
		return tea.EnterAltScreen
	}

	return tea.ExitAltScreen
}

// toggleSettings flips the visibility of the settings panel. Opening it
// loads the current settings into a fresh form.
func (m *Model) toggleSettings() tea.Cmd {
	m.hidden = !m.hidden

	if m.hidden {
		m.form = nil
		return nil
	}

	v := m.prefs.Load()
	m.values = &panelValues{
		focus:      strconv.Itoa(v.Focus),
		shortBreak: strconv.Itoa(v.ShortBreak),
		longBreak:  strconv.Itoa(v.LongBreak),
		volume:     strconv.FormatFloat(v.Volume, 'f', -1, 64),
		mute:       v.Mute,
		autoStart:  v.AutoStart,
	}
	m.opened = *m.values

	m.form = newSettingsForm(m.values)

	return m.form.Init()
}

func (m *Model) updatePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, m.quit()

	case key.Matches(msg, m.keys.esc):
		return m, m.toggleSettings()
	}

	if m.form == nil {
		return m, nil
	}

	return m.updateForm(msg)
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applySettings()

		return m, m.toggleSettings()
	case huh.StateAborted:
		return m, m.toggleSettings()
	}

	return m, cmd
}

// applySettings saves the panel fields that changed since the panel opened.
// A duration change resets the current session, so untouched durations are
// left alone.
func (m *Model) applySettings() {
	v, was := m.values, m.opened

	if v.focus != was.focus {
		m.prefs.SetFocus(v.focus)
	}

	if v.shortBreak != was.shortBreak {
		m.prefs.SetShortBreak(v.shortBreak)
	}

	if v.longBreak != was.longBreak {
		m.prefs.SetLongBreak(v.longBreak)
	}

	if v.volume != was.volume {
		m.prefs.SetVolumeInput(v.volume)
	}

	if v.mute != was.mute {
		m.prefs.SetMute(v.mute)
	}

	if v.autoStart != was.autoStart {
		m.prefs.SetAutoStart(v.autoStart)
	}
}

func newSettingsForm(v *panelValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Focus (minutes)").
				Description("1 to 420").
				Value(&v.focus),
			huh.NewInput().
				Title("Short break (minutes)").
				Description("1 to 60").
				Value(&v.shortBreak),
			huh.NewInput().
				Title("Long break (minutes)").
				Description("1 to 120").
				Value(&v.longBreak),
			huh.NewInput().
				Title("Volume").
				Description("0 to 1").
				Value(&v.volume),
			huh.NewConfirm().
				Title("Mute").
				Value(&v.mute),
			huh.NewConfirm().
				Title("Auto-start next session").
				Value(&v.autoStart),
		),
	).WithShowHelp(false)
}

// StartLabel is the label of the start/pause button.
func (m *Model) StartLabel() string {
	if m.seq.Running() {
		return "Pause"
	}

	return "Start"
}

// SettingsHidden reports whether the settings panel is hidden.
func (m *Model) SettingsHidden() bool {
	return m.hidden
}

// Fullscreen reports whether the alternate screen is in use.
func (m *Model) Fullscreen() bool {
	return m.fullscreen
}

// ActiveSession returns the session whose tab is highlighted.
func (m *Model) ActiveSession() session.Kind {
	return m.frame.Session
}
