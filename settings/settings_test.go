package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focusflow/internal/session"
	"github.com/ayoisaiah/focusflow/store"
)

type refreshCounter struct {
	n int
}

func (r *refreshCounter) Refresh() { r.n++ }

type fakeMixer struct {
	volume float64
	muted  bool
}

func (m *fakeMixer) SetVolume(v float64) { m.volume = v }
func (m *fakeMixer) SetMute(b bool)      { m.muted = b }

func newSettings(t *testing.T) (*Settings, *store.Store) {
	t.Helper()

	st := store.New(store.NewMemory(), "focusflow:")

	return New(st), st
}

func TestLoadDefaults(t *testing.T) {
	s, _ := newSettings(t)

	assert.Equal(t, Values{
		Focus:      25,
		ShortBreak: 5,
		LongBreak:  15,
		Volume:     0.5,
		Mute:       false,
		AutoStart:  false,
	}, s.Load())
}

func TestEachKeyDefaultsIndependently(t *testing.T) {
	s, st := newSettings(t)

	st.Set(store.KeyShortBreak, 10)
	st.Set(store.KeyFocus, "corrupt")
	st.Set(store.KeyMute, true)

	v := s.Load()

	assert.Equal(t, 25, v.Focus)
	assert.Equal(t, 10, v.ShortBreak)
	assert.Equal(t, 15, v.LongBreak)
	assert.True(t, v.Mute)
}

func TestClampLaw(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"9999", 420},
		{"0", 1},
		{"-5", 1},
		{"1", 1},
		{"420", 420},
		{"50", 50},
		{" 30", 30},
		{"2.5", 2},
		{"45min", 45},
		{"+7", 7},
		{"99999999999999999999999", 420},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			s, st := newSettings(t)

			got := s.SetFocus(tc.input)

			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, store.Get(st, store.KeyFocus, 0))
		})
	}
}

func TestBreakRanges(t *testing.T) {
	s, _ := newSettings(t)

	assert.Equal(t, 60, s.SetShortBreak("61"))
	assert.Equal(t, 1, s.SetShortBreak("0"))
	assert.Equal(t, 120, s.SetLongBreak("500"))
	assert.Equal(t, 1, s.SetLongBreak("-1"))
}

func TestNonNumericKeepsCurrentValue(t *testing.T) {
	s, _ := newSettings(t)

	s.SetFocus("50")

	assert.Equal(t, 50, s.SetFocus("abc"))
	assert.Equal(t, 5, s.SetShortBreak(""))
}

func TestDurationsAreReadThrough(t *testing.T) {
	s, st := newSettings(t)

	assert.Equal(t, 25, s.Durations().Focus)

	st.Set(store.KeyFocus, 40)

	d := s.Durations()
	assert.Equal(t, 40, d.Focus)
	assert.Equal(t, 40*60, d.Seconds(session.Focus))
	assert.Equal(t, 5*60, d.Seconds(session.ShortBreak))
	assert.Equal(t, 15*60, d.Seconds(session.LongBreak))
}

func TestOutOfRangeStoredDurationFallsBack(t *testing.T) {
	s, st := newSettings(t)

	st.Set(store.KeyFocus, 0)
	st.Set(store.KeyLongBreak, 1000)

	d := s.Durations()
	assert.Equal(t, DefaultFocus, d.Focus)
	assert.Equal(t, DefaultLongBreak, d.LongBreak)
}

func TestDurationChangeNotifiesRefresher(t *testing.T) {
	s, _ := newSettings(t)

	r := &refreshCounter{}
	s.Bind(r, nil)

	s.SetFocus("30")
	s.SetShortBreak("3")
	s.SetLongBreak("20")

	assert.Equal(t, 3, r.n)
}

func TestVolumeAndMuteReachMixer(t *testing.T) {
	s, st := newSettings(t)

	m := &fakeMixer{}
	s.Bind(nil, m)

	assert.InDelta(t, 1.0, s.SetVolume(1.7), 1e-9)
	assert.InDelta(t, 1.0, m.volume, 1e-9)

	assert.InDelta(t, 0.25, s.SetVolumeInput("0.25"), 1e-9)
	assert.InDelta(t, 0.25, store.Get(st, store.KeyVolume, 0.0), 1e-9)

	assert.InDelta(t, 0.25, s.SetVolumeInput("loud"), 1e-9)

	s.SetMute(true)
	assert.True(t, m.muted)
	assert.True(t, s.Muted())
}

func TestAutoStartAndReset(t *testing.T) {
	s, _ := newSettings(t)

	s.SetAutoStart(true)
	s.SetFocus("90")
	assert.True(t, s.AutoStart())

	s.Reset()

	assert.False(t, s.AutoStart())
	assert.Equal(t, DefaultFocus, s.Durations().Focus)
}
