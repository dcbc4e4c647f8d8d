package sound

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Format is the format every cue is converted to before playback.
var Format = beep.Format{
	SampleRate:  beep.SampleRate(44100),
	NumChannels: 2,
	Precision:   2,
}

const resampleQuality = 4

// Extensions lists the supported sound file extensions.
var Extensions = []string{".mp3", ".ogg", ".flac", ".wav"}

// Supported reports whether path has a supported sound extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	for _, v := range Extensions {
		if ext == v {
			return true
		}
	}

	return false
}

// LoadFile decodes the sound file at path into a buffer in Format.
func LoadFile(path string) (*beep.Buffer, error) {
	if !Supported(path) {
		return nil, errUnsupportedFormat.Fmt(filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errOpenSound.Fmt(path).Wrap(err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	}

	if err != nil {
		_ = f.Close()
		return nil, errDecodeSound.Fmt(path).Wrap(err)
	}

	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != Format.SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, Format.SampleRate, stream)
	}

	buf := beep.NewBuffer(Format)
	buf.Append(s)

	return buf, nil
}

func tone(freq float64, d time.Duration) beep.Streamer {
	s, err := generators.SineTone(Format.SampleRate, freq)
	if err != nil {
		return beep.Silence(Format.SampleRate.N(d))
	}

	return beep.Take(Format.SampleRate.N(d), s)
}

func gap(d time.Duration) beep.Streamer {
	return beep.Silence(Format.SampleRate.N(d))
}

// quiet scales s to level, a fraction of full amplitude.
func quiet(s beep.Streamer, level float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: level - 1}
}

// FocusTone is the built-in looping focus track: a low two-note drone.
func FocusTone() *beep.Buffer {
	buf := beep.NewBuffer(Format)
	buf.Append(beep.Seq(
		quiet(tone(196, 2*time.Second), 0.15),
		quiet(tone(220, 2*time.Second), 0.15),
	))

	return buf
}

// AlarmTone is the built-in alarm: three short high beeps.
func AlarmTone() *beep.Buffer {
	buf := beep.NewBuffer(Format)
	buf.Append(beep.Seq(
		quiet(tone(880, 180*time.Millisecond), 0.6),
		gap(120*time.Millisecond),
		quiet(tone(880, 180*time.Millisecond), 0.6),
		gap(120*time.Millisecond),
		quiet(tone(1320, 400*time.Millisecond), 0.6),
	))

	return buf
}

// Load returns the buffer for path, or fallback when path is empty.
func Load(path string, fallback func() *beep.Buffer) (*beep.Buffer, error) {
	if path == "" {
		return fallback(), nil
	}

	return LoadFile(path)
}
