package sound

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	cases := map[string]bool{
		"rain.mp3":  true,
		"rain.OGG":  true,
		"rain.flac": true,
		"rain.wav":  true,
		"rain.aac":  false,
		"rain":      false,
	}

	for path, want := range cases {
		assert.Equal(t, want, Supported(path), path)
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile("rain.aac")
	assert.ErrorIs(t, err, errUnsupportedFormat)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorIs(t, err, errOpenSound)

	bad := filepath.Join(t.TempDir(), "bad.wav")
	require.NoError(t, os.WriteFile(bad, []byte("not a wav"), 0o600))

	_, err = LoadFile(bad)
	assert.ErrorIs(t, err, errDecodeSound)
}

func TestBuiltInTones(t *testing.T) {
	assert.Equal(t, Format.SampleRate.N(4*time.Second), FocusTone().Len())
	assert.Positive(t, AlarmTone().Len())

	buf, err := Load("", AlarmTone)
	require.NoError(t, err)
	assert.Equal(t, AlarmTone().Len(), buf.Len())
}

func TestWAVRoundTrip(t *testing.T) {
	src := AlarmTone()

	b, err := WAV(src)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "alarm.wav")
	require.NoError(t, os.WriteFile(path, b, 0o600))

	stream, format, err := wav.Decode(bytes.NewReader(b))
	require.NoError(t, err)

	defer stream.Close()

	assert.Equal(t, Format.SampleRate, format.SampleRate)
	assert.Equal(t, src.Len(), stream.Len())

	buf, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src.Len(), buf.Len())
}
