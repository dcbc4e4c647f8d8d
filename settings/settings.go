// Package settings holds the user-configurable durations and audio
// preferences. Values live in the store and are read through on every access
// so changes made elsewhere take effect immediately.
package settings

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/ayoisaiah/focusflow/internal/session"
	"github.com/ayoisaiah/focusflow/store"
)

// Defaults.
const (
	DefaultFocus      = 25
	DefaultShortBreak = 5
	DefaultLongBreak  = 15
	DefaultVolume     = 0.5
	DefaultMute       = false
	DefaultAutoStart  = false
)

// Range is an inclusive bound on a duration in minutes.
type Range struct {
	Min int
	Max int
}

// Allowed minutes for each session kind.
var (
	FocusRange      = Range{Min: 1, Max: 420}
	ShortBreakRange = Range{Min: 1, Max: 60}
	LongBreakRange  = Range{Min: 1, Max: 120}
)

// Values is a snapshot of every setting.
type Values struct {
	Focus      int
	ShortBreak int
	LongBreak  int
	Volume     float64
	Mute       bool
	AutoStart  bool
}

// Durations are session lengths in minutes.
type Durations struct {
	Focus      int
	ShortBreak int
	LongBreak  int
}

// Seconds returns the length of kind in seconds.
func (d Durations) Seconds(kind session.Kind) int {
	switch kind {
	case session.ShortBreak:
		return d.ShortBreak * 60
	case session.LongBreak:
		return d.LongBreak * 60
	default:
		return d.Focus * 60
	}
}

// Refresher is notified after a duration changes.
type Refresher interface {
	Refresh()
}

// Mixer receives volume and mute changes.
type Mixer interface {
	SetVolume(v float64)
	SetMute(muted bool)
}

// Settings reads and writes user preferences.
type Settings struct {
	store     *store.Store
	refresher Refresher
	mixer     Mixer
}

// New returns settings backed by s.
func New(s *store.Store) *Settings {
	return &Settings{
		store: s,
	}
}

// Bind connects the components that react to settings changes. Either may
// be nil.
func (s *Settings) Bind(r Refresher, m Mixer) {
	s.refresher = r
	s.mixer = m
}

// Load returns the current value of every setting, with defaults for
// missing or corrupt entries.
func (s *Settings) Load() Values {
	d := s.Durations()

	return Values{
		Focus:      d.Focus,
		ShortBreak: d.ShortBreak,
		LongBreak:  d.LongBreak,
		Volume:     s.Volume(),
		Mute:       s.Muted(),
		AutoStart:  s.AutoStart(),
	}
}

// Durations returns the configured session lengths in minutes.
func (s *Settings) Durations() Durations {
	return Durations{
		Focus:      readMinutes(s.store, store.KeyFocus, DefaultFocus, FocusRange),
		ShortBreak: readMinutes(s.store, store.KeyShortBreak, DefaultShortBreak, ShortBreakRange),
		LongBreak:  readMinutes(s.store, store.KeyLongBreak, DefaultLongBreak, LongBreakRange),
	}
}

// readMinutes guards against stored values that are outside their range,
// e.g. edited by hand, so a session never gets a zero duration.
func readMinutes(st *store.Store, key string, def int, r Range) int {
	v := store.Get(st, key, def)
	if v < r.Min || v > r.Max {
		return def
	}

	return v
}

// Volume returns the audio volume in [0, 1].
func (s *Settings) Volume() float64 {
	v := store.Get(s.store, store.KeyVolume, DefaultVolume)
	if math.IsNaN(v) || v < 0 || v > 1 {
		return DefaultVolume
	}

	return v
}

// Muted reports whether audio is muted.
func (s *Settings) Muted() bool {
	return store.Get(s.store, store.KeyMute, DefaultMute)
}

// AutoStart reports whether the next session starts on its own.
func (s *Settings) AutoStart() bool {
	return store.Get(s.store, store.KeyAutoStart, DefaultAutoStart)
}

// SetFocus clamps input to FocusRange, saves it and returns the saved value.
func (s *Settings) SetFocus(input string) int {
	return s.setMinutes(store.KeyFocus, input, FocusRange)
}

// SetShortBreak clamps input to ShortBreakRange, saves it and returns the
// saved value.
func (s *Settings) SetShortBreak(input string) int {
	return s.setMinutes(store.KeyShortBreak, input, ShortBreakRange)
}

// SetLongBreak clamps input to LongBreakRange, saves it and returns the saved
// value.
func (s *Settings) SetLongBreak(input string) int {
	return s.setMinutes(store.KeyLongBreak, input, LongBreakRange)
}

func (s *Settings) setMinutes(key, input string, r Range) int {
	current := s.Durations()

	fallback := current.Focus

	switch key {
	case store.KeyShortBreak:
		fallback = current.ShortBreak
	case store.KeyLongBreak:
		fallback = current.LongBreak
	}

	v, ok := Clamp(input, r)
	if !ok {
		slog.Debug("ignoring non-numeric duration", slog.String("key", key), slog.String("input", input))

		v = fallback
	}

	s.store.Set(key, v)

	if s.refresher != nil {
		s.refresher.Refresh()
	}

	return v
}

// SetVolume clamps v to [0, 1], saves it and forwards it to the mixer.
func (s *Settings) SetVolume(v float64) float64 {
	if math.IsNaN(v) {
		v = s.Volume()
	}

	v = math.Min(math.Max(v, 0), 1)

	s.store.Set(store.KeyVolume, v)

	if s.mixer != nil {
		s.mixer.SetVolume(v)
	}

	return v
}

// SetVolumeInput parses input as a float before calling SetVolume.
// Unparseable input leaves the volume unchanged.
func (s *Settings) SetVolumeInput(input string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return s.Volume()
	}

	return s.SetVolume(v)
}

// SetMute saves the mute flag and forwards it to the mixer.
func (s *Settings) SetMute(muted bool) {
	s.store.Set(store.KeyMute, muted)

	if s.mixer != nil {
		s.mixer.SetMute(muted)
	}
}

// SetAutoStart saves the auto-start flag.
func (s *Settings) SetAutoStart(enabled bool) {
	s.store.Set(store.KeyAutoStart, enabled)
}

// Reset removes every saved setting so defaults apply.
func (s *Settings) Reset() {
	for _, k := range store.SettingsKeys {
		s.store.Remove(k)
	}
}

// Clamp parses the leading integer of input and clamps it to r. Leading
// whitespace and a sign are accepted, and anything after the digits is
// ignored ("2.5" is 2). ok is false when input has no leading digits.
func Clamp(input string, r Range) (v int, ok bool) {
	s := strings.TrimLeftFunc(input, unicode.IsSpace)

	neg := false

	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// more digits than an int holds
		n = math.MaxInt
	}

	if neg {
		n = -n
	}

	return min(max(n, r.Min), r.Max), true
}
