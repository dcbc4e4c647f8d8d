package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/timeutil"
	"github.com/ayoisaiah/focusflow/internal/ui"
	"github.com/ayoisaiah/focusflow/stats"
	"github.com/ayoisaiah/focusflow/store"
	"github.com/ayoisaiah/focusflow/timer"
)

type statsOptions struct {
	now     func() time.Time
	Date    string
	History bool
	JSON    bool
}

// statsReport is the JSON form of the stats command.
type statsReport struct {
	stats.Summary
	History []stats.Day `json:"history,omitempty"`
}

func buildReport(st *store.Store, opts statsOptions) (*statsReport, error) {
	now := time.Now
	if opts.now != nil {
		now = opts.now
	}

	s := stats.New(st, stats.WithClock(now))

	r := &statsReport{
		Summary: s.Summary(),
	}

	if opts.Date != "" {
		t, err := timeutil.FromStr(opts.Date, now())
		if err != nil {
			return nil, err
		}

		secs := s.On(t)

		r.Day = timeutil.Day(t)
		r.TodaySeconds = secs
		r.TodayText = timeutil.HoursAndMins(secs)
	}

	if opts.History {
		r.History = s.History()
	}

	return r, nil
}

// printStats writes the statistics to w as a table, or as JSON.
func printStats(w io.Writer, st *store.Store, opts statsOptions) error {
	r, err := buildReport(st, opts)
	if err != nil {
		return err
	}

	if opts.JSON {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	if opts.History {
		data := [][]string{{"Date", "Focus time"}}

		for _, d := range r.History {
			data = append(data, []string{d.Date, d.Text})
		}

		ui.PrintTable(data, w)
	}

	ui.PrintTable([][]string{
		{"Day", "Focus time", "Completed sessions"},
		{r.Day, ui.Highlight(r.TodayText), fmt.Sprint(r.Total)},
	}, w)

	return nil
}

// printStatus writes the state of the timer recorded in the status file.
func printStatus(w io.Writer, path string) error {
	st, err := timer.ReadStatus(path)
	if err != nil {
		return err
	}

	if st == nil {
		pterm.Fprintln(w, "No timer is running")
		return nil
	}

	fmt.Fprintln(w, ui.Session(st.Session, st.Line(time.Now())))

	return nil
}
