// Package stats tracks focus time per calendar day and the lifetime count of
// completed focus sessions
package stats

import (
	"strings"
	"time"

	"github.com/ayoisaiah/focusflow/internal/session"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
	"github.com/ayoisaiah/focusflow/store"
)

// SessionsBeforeLongBreak is the number of focus sessions in a cycle.
const SessionsBeforeLongBreak = 4

// Summary is the derived statistics shown to the user.
type Summary struct {
	Day          string `json:"day"`
	TodayText    string `json:"today_text"`
	TodaySeconds int    `json:"today_seconds"`
	Total        int    `json:"total_sessions"`
}

// Day is the focus time recorded on one calendar day.
type Day struct {
	Date    string `json:"date"`
	Text    string `json:"text"`
	Seconds int    `json:"seconds"`
}

// Stats records completed sessions.
type Stats struct {
	store   *store.Store
	now     func() time.Time
	display func(Summary)

	// mirror of the persisted counters so a store that stops accepting
	// writes does not reset them mid-session
	day   string
	today int
	total int
}

// Option configures Stats.
type Option func(*Stats)

// WithClock overrides the time source used to compute day keys.
func WithClock(now func() time.Time) Option {
	return func(s *Stats) {
		s.now = now
	}
}

// WithDisplay registers a function that receives the summary every time it
// changes.
func WithDisplay(fn func(Summary)) Option {
	return func(s *Stats) {
		s.display = fn
	}
}

// New loads the counters from st.
func New(st *store.Store, opts ...Option) *Stats {
	s := &Stats{
		store: st,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.day = timeutil.Day(s.now())
	s.today = store.Get(st, store.FocusDayKey(s.day), 0)
	s.total = store.Get(st, store.KeyTotalSessions, 0)

	s.render()

	return s
}

// SetDisplay replaces the display function and renders once.
func (s *Stats) SetDisplay(fn func(Summary)) {
	s.display = fn
	s.render()
}

func (s *Stats) render() {
	if s.display != nil {
		s.display(s.Summary())
	}
}

// RecordSession adds a completed session. Only focus sessions count.
func (s *Stats) RecordSession(kind session.Kind, durationSeconds int) {
	if kind != session.Focus {
		return
	}

	s.today = s.Today() + max(durationSeconds, 0)
	s.total++

	s.store.Set(store.FocusDayKey(s.day), s.today)
	s.store.Set(store.KeyTotalSessions, s.total)

	s.render()
}

// ShouldLongBreak reports whether the session count completes a cycle.
func (s *Stats) ShouldLongBreak() bool {
	return s.total > 0 && s.total%SessionsBeforeLongBreak == 0
}

// Today returns the focus seconds recorded for the current UTC day. The day
// key is recomputed on every call so the counter rolls over at midnight.
func (s *Stats) Today() int {
	day := timeutil.Day(s.now())
	if day != s.day {
		s.day = day
		s.today = store.Get(s.store, store.FocusDayKey(day), 0)
	}

	return s.today
}

// On returns the focus seconds recorded on the UTC day containing t.
func (s *Stats) On(t time.Time) int {
	day := timeutil.Day(t)
	if day == timeutil.Day(s.now()) {
		return s.Today()
	}

	return store.Get(s.store, store.FocusDayKey(day), 0)
}

// Total returns the lifetime count of completed focus sessions.
func (s *Stats) Total() int {
	return s.total
}

// Summary returns today's totals.
func (s *Stats) Summary() Summary {
	today := s.Today()

	return Summary{
		Day:          s.day,
		TodaySeconds: today,
		TodayText:    timeutil.HoursAndMins(today),
		Total:        s.total,
	}
}

// History returns every day with recorded focus time, oldest first.
func (s *Stats) History() []Day {
	keys := s.store.Keys(store.KeyFocusDayPrefix)

	days := make([]Day, 0, len(keys))

	for _, k := range keys {
		secs := store.Get(s.store, k, 0)

		days = append(days, Day{
			Date:    strings.TrimPrefix(k, store.KeyFocusDayPrefix),
			Seconds: secs,
			Text:    timeutil.HoursAndMins(secs),
		})
	}

	return days
}
