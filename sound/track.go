package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const bufferSize = 10

// Track is a single audio cue.
type Track interface {
	// Play starts the track from the beginning.
	Play()
	// Pause stops the track where it is.
	Pause()
	// Apply sets the effective volume and mute flag.
	Apply(volume float64, muted bool)
}

// InitSpeaker opens the audio device for Format.
func InitSpeaker() error {
	return speaker.Init(
		Format.SampleRate,
		Format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
}

// speakerTrack plays a buffer on the shared speaker.
type speakerTrack struct {
	buf    *beep.Buffer
	ctrl   *beep.Ctrl
	vol    *effects.Volume
	volume float64
	muted  bool
	loop   bool
}

// NewSpeakerTrack returns a Track that plays buf, looping it forever if loop
// is set. InitSpeaker must have succeeded.
func NewSpeakerTrack(buf *beep.Buffer, loop bool) Track {
	return &speakerTrack{
		buf:    buf,
		loop:   loop,
		volume: 1,
	}
}

func (t *speakerTrack) Play() {
	var s beep.Streamer = t.buf.Streamer(0, t.buf.Len())
	if t.loop {
		s = beep.Loop(-1, t.buf.Streamer(0, t.buf.Len()))
	}

	speaker.Lock()

	// the previous playback drains out of the mixer
	if t.ctrl != nil {
		t.ctrl.Streamer = nil
	}

	t.ctrl = &beep.Ctrl{Streamer: s}
	t.vol = &effects.Volume{
		Streamer: t.ctrl,
		Base:     2,
	}

	t.applyLocked()

	speaker.Unlock()

	speaker.Play(t.vol)
}

func (t *speakerTrack) Pause() {
	speaker.Lock()
	defer speaker.Unlock()

	if t.ctrl != nil {
		t.ctrl.Paused = true
	}
}

func (t *speakerTrack) Apply(volume float64, muted bool) {
	speaker.Lock()
	defer speaker.Unlock()

	t.volume = volume
	t.muted = muted

	t.applyLocked()
}

func (t *speakerTrack) applyLocked() {
	if t.vol == nil {
		return
	}

	t.vol.Silent = t.muted || t.volume <= 0
	if !t.vol.Silent {
		t.vol.Volume = math.Log2(t.volume)
	}
}

type nopTrack struct{}

func (nopTrack) Play()               {}
func (nopTrack) Pause()              {}
func (nopTrack) Apply(float64, bool) {}
