// Package timeutil provides utility functions for formatting and parsing
// time values.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// DayLayout is the layout of calendar day keys.
const DayLayout = "2006-01-02"

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in whole minutes and seconds.
func SecsToMinsAndSecs(secs int) (mins, s int) {
	if secs < 0 {
		secs = 0
	}

	return secs / secondsInAMinute, secs % secondsInAMinute
}

// Clock formats seconds as "MM:SS". Minutes grow past two digits for
// sessions longer than 99 minutes.
func Clock(secs int) string {
	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// HoursAndMins formats seconds as "{h}h {m}m" without padding.
func HoursAndMins(secs int) string {
	if secs < 0 {
		secs = 0
	}

	hrs := secs / secondsInAnHour
	mins := (secs % secondsInAnHour) / secondsInAMinute

	return fmt.Sprintf("%dh %dm", hrs, mins)
}

// Day returns the UTC calendar day of t formatted with DayLayout.
func Day(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// FromStr parses a natural language date ("yesterday", "3 days ago",
// "2026-10-01") relative to now. ISO dates name a UTC day, matching Day.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(DayLayout, s); err == nil {
		return t, nil
	}

	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errInvalidDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}
