package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/ayoisaiah/focusflow/internal/session"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
)

// Status is the snapshot of the sequencer written to the status file.
type Status struct {
	UpdatedAt time.Time    `json:"updated_at"`
	Session   session.Kind `json:"session"`
	Remaining int          `json:"remaining"`
	Duration  int          `json:"duration"`
	Running   bool         `json:"running"`
}

// StatusFile is a Display that mirrors every frame to a JSON file so other
// processes can report on the timer.
type StatusFile struct {
	now  func() time.Time
	path string
}

// NewStatusFile returns a StatusFile that writes to path.
func NewStatusFile(path string) *StatusFile {
	return &StatusFile{
		path: path,
		now:  time.Now,
	}
}

func (sf *StatusFile) Render(f Frame) {
	st := Status{
		Session:   f.Session,
		Remaining: f.Remaining,
		Duration:  f.Duration,
		Running:   f.Running,
		UpdatedAt: sf.now(),
	}

	b, err := json.Marshal(st)
	if err != nil {
		return
	}

	err = os.WriteFile(sf.path, b, 0o600)
	if err != nil {
		slog.Debug("unable to write status file", slog.Any("error", err))
	}
}

// Remove deletes the status file.
func (sf *StatusFile) Remove() {
	_ = os.Remove(sf.path)
}

// ReadStatus loads the status file. A missing file yields nil without error.
func ReadStatus(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var st Status

	err = json.Unmarshal(b, &st)
	if err != nil {
		return nil, errInvalidStatusFile.Wrap(err)
	}

	return &st, nil
}

// RemainingAt returns the seconds left at now, accounting for the time that
// passed since the status was written if the timer was running.
func (st *Status) RemainingAt(now time.Time) int {
	if !st.Running {
		return st.Remaining
	}

	elapsed := timeutil.Round(now.Sub(st.UpdatedAt).Seconds())

	return max(st.Remaining-elapsed, 0)
}

// Line formats the status for printing, e.g. "[Focus]: 12:34".
func (st *Status) Line(now time.Time) string {
	label := "[" + st.Session.Label() + "]"
	if !st.Running {
		label += " (paused)"
	}

	return fmt.Sprintf("%s: %s", label, timeutil.Clock(st.RemainingAt(now)))
}
