// Package sound plays the focusflow audio cues: a looping focus track and a
// one-shot alarm.
package sound

import (
	"log/slog"

	"github.com/ayoisaiah/focusflow/settings"
	"github.com/ayoisaiah/focusflow/store"
)

// Sources names the sound files to play. Empty fields select the built-in
// tones.
type Sources struct {
	Focus string
	Alarm string
}

// Player owns both cues and the shared volume and mute state.
type Player struct {
	focus  Track
	alarm  Track
	volume float64
	muted  bool
}

// New returns a player over the given tracks, with volume and mute read
// from st.
func New(st *store.Store, focus, alarm Track) *Player {
	p := &Player{
		focus: focus,
		alarm: alarm,
	}

	s := settings.New(st)
	p.volume = s.Volume()
	p.muted = s.Muted()

	p.apply()

	return p
}

// Open initialises the audio device and loads src. Audio problems never
// fail the caller: a cue that cannot be loaded stays silent, and if the
// device is unavailable both cues are silent.
func Open(st *store.Store, src Sources) *Player {
	err := InitSpeaker()
	if err != nil {
		slog.Warn("audio unavailable", slog.Any("error", err))

		return New(st, nopTrack{}, nopTrack{})
	}

	return New(st, openTrack(src.Focus, true), openTrack(src.Alarm, false))
}

func openTrack(path string, loop bool) Track {
	fallback := AlarmTone
	if loop {
		fallback = FocusTone
	}

	buf, err := Load(path, fallback)
	if err != nil {
		slog.Warn("falling back to built-in sound",
			slog.String("path", path),
			slog.Any("error", err),
		)

		buf = fallback()
	}

	return NewSpeakerTrack(buf, loop)
}

// PlayFocus starts the focus track from the beginning. It does nothing
// while muted.
func (p *Player) PlayFocus() {
	if p.muted {
		return
	}

	p.focus.Play()
}

// PauseFocus pauses the focus track.
func (p *Player) PauseFocus() {
	p.focus.Pause()
}

// PlayAlarm plays the alarm once from the beginning. It does nothing while
// muted.
func (p *Player) PlayAlarm() {
	if p.muted {
		return
	}

	p.alarm.Play()
}

// SetVolume applies v to both tracks. Saving it is up to settings.
func (p *Player) SetVolume(v float64) {
	p.volume = v
	p.apply()
}

// SetMute applies the mute flag to both tracks.
func (p *Player) SetMute(muted bool) {
	p.muted = muted
	p.apply()
}

// Volume returns the current volume.
func (p *Player) Volume() float64 {
	return p.volume
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	return p.muted
}

func (p *Player) apply() {
	p.focus.Apply(p.volume, p.muted)
	p.alarm.Apply(p.volume, p.muted)
}
