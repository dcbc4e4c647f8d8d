package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focusflow/settings"
	"github.com/ayoisaiah/focusflow/store"
)

type fakeTrack struct {
	plays  int
	pauses int
	volume float64
	muted  bool
}

func (f *fakeTrack) Play()  { f.plays++ }
func (f *fakeTrack) Pause() { f.pauses++ }

func (f *fakeTrack) Apply(volume float64, muted bool) {
	f.volume = volume
	f.muted = muted
}

func newPlayer(t *testing.T) (*Player, *fakeTrack, *fakeTrack, *store.Store) {
	t.Helper()

	st := store.New(store.NewMemory(), "focusflow:")
	focus, alarm := &fakeTrack{}, &fakeTrack{}

	return New(st, focus, alarm), focus, alarm, st
}

func TestNewAppliesStoredSettings(t *testing.T) {
	st := store.New(store.NewMemory(), "focusflow:")
	st.Set(store.KeyVolume, 0.8)
	st.Set(store.KeyMute, true)

	focus, alarm := &fakeTrack{}, &fakeTrack{}
	p := New(st, focus, alarm)

	assert.InDelta(t, 0.8, p.Volume(), 1e-9)
	assert.True(t, p.Muted())

	for _, tr := range []*fakeTrack{focus, alarm} {
		assert.InDelta(t, 0.8, tr.volume, 1e-9)
		assert.True(t, tr.muted)
	}
}

func TestDefaults(t *testing.T) {
	p, focus, _, _ := newPlayer(t)

	assert.InDelta(t, 0.5, p.Volume(), 1e-9)
	assert.False(t, p.Muted())
	assert.InDelta(t, 0.5, focus.volume, 1e-9)
}

func TestPlayback(t *testing.T) {
	p, focus, alarm, _ := newPlayer(t)

	p.PlayFocus()
	p.PauseFocus()
	p.PlayAlarm()
	p.PlayAlarm()

	assert.Equal(t, 1, focus.plays)
	assert.Equal(t, 1, focus.pauses)
	assert.Equal(t, 2, alarm.plays)
}

func TestMutedPlaybackIsSkipped(t *testing.T) {
	p, focus, alarm, st := newPlayer(t)

	p.SetMute(true)
	p.PlayFocus()
	p.PlayAlarm()
	p.PauseFocus()

	assert.Zero(t, focus.plays)
	assert.Zero(t, alarm.plays)
	assert.Equal(t, 1, focus.pauses)
	assert.True(t, alarm.muted)
	assert.False(t, store.Get(st, store.KeyMute, false), "settings own the saved flag")
}

func TestSetVolumeOnlyApplies(t *testing.T) {
	p, focus, alarm, st := newPlayer(t)

	p.SetVolume(0.25)

	assert.InDelta(t, 0.25, focus.volume, 1e-9)
	assert.InDelta(t, 0.25, alarm.volume, 1e-9)
	assert.Empty(t, st.Keys(store.KeyVolume), "settings own the saved volume")
}

func TestSettingsDriveThePlayer(t *testing.T) {
	p, focus, _, st := newPlayer(t)

	prefs := settings.New(st)
	prefs.Bind(nil, p)

	prefs.SetVolume(0.3)
	prefs.SetMute(true)

	assert.InDelta(t, 0.3, focus.volume, 1e-9)
	assert.True(t, focus.muted)
	assert.InDelta(t, 0.3, store.Get(st, store.KeyVolume, 0.0), 1e-9)
	assert.True(t, store.Get(st, store.KeyMute, false))
}
