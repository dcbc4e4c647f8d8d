package app

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusflow/internal/session"
	"github.com/ayoisaiah/focusflow/internal/testutil"
	"github.com/ayoisaiah/focusflow/store"
	"github.com/ayoisaiah/focusflow/timer"
)

type statsGolden struct {
	opts   statsOptions
	store  *store.Store
	t      *testing.T
	golden string
}

func (s statsGolden) Output() ([]byte, string) {
	var buf bytes.Buffer

	require.NoError(s.t, printStats(&buf, s.store, s.opts))

	return buf.Bytes(), s.golden
}

func statsFixture() *store.Store {
	st := newMemoryStore()
	st.Set(store.FocusDayKey("2026-10-13"), 3000)
	st.Set(store.FocusDayKey("2026-10-14"), 1500)
	st.Set(store.KeyTotalSessions, 3)

	return st
}

func fixedNow() time.Time {
	return time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)
}

func TestStatsJSON(t *testing.T) {
	cases := []statsGolden{
		{
			golden: "stats_history",
			opts:   statsOptions{now: fixedNow, History: true, JSON: true},
		},
		{
			golden: "stats_date",
			opts:   statsOptions{now: fixedNow, Date: "2026-10-13", JSON: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.golden, func(t *testing.T) {
			tc.t = t
			tc.store = statsFixture()

			testutil.CompareGoldenFile(t, tc)
		})
	}
}

func TestStatsTable(t *testing.T) {
	var buf bytes.Buffer

	err := printStats(&buf, statsFixture(), statsOptions{now: fixedNow, History: true})
	require.NoError(t, err)

	out := buf.String()

	assert.Contains(t, out, "2026-10-13")
	assert.Contains(t, out, "0h 50m")
	assert.Contains(t, out, "Completed sessions")
}

func TestStatsInvalidDate(t *testing.T) {
	var buf bytes.Buffer

	err := printStats(&buf, statsFixture(), statsOptions{now: fixedNow, Date: "not a date at all"})
	assert.Error(t, err)
}

func TestPrintStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	var buf bytes.Buffer

	require.NoError(t, printStatus(&buf, path))
	assert.Contains(t, buf.String(), "No timer is running")

	timer.NewStatusFile(path).Render(timer.Frame{
		Session:   session.ShortBreak,
		Remaining: 90,
		Duration:  300,
	})

	buf.Reset()

	require.NoError(t, printStatus(&buf, path))
	assert.Contains(t, buf.String(), "[Short break] (paused): 01:30")
}
