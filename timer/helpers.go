package timer

import (
	"math"

	"github.com/ayoisaiah/focusflow/internal/session"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
)

// DefaultRingRadius is the radius of the progress ring.
const DefaultRingRadius = 100

// Ring is the circular progress indicator.
type Ring struct {
	Radius float64
}

// Circumference returns the full stroke length of the ring.
func (r Ring) Circumference() float64 {
	return 2 * math.Pi * r.Radius
}

// Offset returns the stroke offset for the given remaining time. The ring
// depletes linearly: 0 when nothing has elapsed, the full circumference when
// nothing remains.
func (r Ring) Offset(remaining, duration int) float64 {
	if duration <= 0 {
		return 0
	}

	return r.Circumference() * (1 - float64(remaining)/float64(duration))
}

// Frame is everything a display needs to draw the sequencer.
type Frame struct {
	Session       session.Kind
	Clock         string
	Remaining     int
	Duration      int
	Offset        float64
	Circumference float64
	Running       bool
}

// Elapsed returns the fraction of the session that has elapsed.
func (f Frame) Elapsed() float64 {
	if f.Circumference == 0 {
		return 0
	}

	return f.Offset / f.Circumference
}

// Display draws frames.
type Display interface {
	Render(f Frame)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(f Frame)

func (fn DisplayFunc) Render(f Frame) {
	fn(f)
}

// Displays renders each frame on every display in order.
type Displays []Display

func (d Displays) Render(f Frame) {
	for _, v := range d {
		if v != nil {
			v.Render(f)
		}
	}
}

func (r Ring) frame(kind session.Kind, remaining, duration int, running bool) Frame {
	return Frame{
		Session:       kind,
		Clock:         timeutil.Clock(remaining),
		Remaining:     remaining,
		Duration:      duration,
		Offset:        r.Offset(remaining, duration),
		Circumference: r.Circumference(),
		Running:       running,
	}
}
