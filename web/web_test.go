package web

import (
	"bytes"
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusflow/offline"
)

func TestOriginServesManifest(t *testing.T) {
	o := NewOrigin()

	for _, entry := range Manifest {
		resp, err := o.Fetch(context.Background(), offline.Key(entry))
		require.NoError(t, err, entry)
		assert.Equal(t, http.StatusOK, resp.Status, entry)
		assert.NotEmpty(t, resp.Body, entry)
	}
}

func TestOriginRoot(t *testing.T) {
	resp, err := NewOrigin().Fetch(context.Background(), "/")
	require.NoError(t, err)

	assert.Contains(t, string(resp.Body), "<title>FocusFlow</title>")
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestOriginSounds(t *testing.T) {
	resp, err := NewOrigin().Fetch(context.Background(), alarmSound+"?v=2")
	require.NoError(t, err)

	assert.Equal(t, "audio/wav", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(resp.Body, []byte("RIFF")))
}

func TestOriginNotFound(t *testing.T) {
	resp, err := NewOrigin().Fetch(context.Background(), "/nope.js")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.Status)
}

func TestManifestInstalls(t *testing.T) {
	c, err := offline.Open(filepath.Join(t.TempDir(), "offline.db"), "focusflow-cache-v1", NewOrigin())
	require.NoError(t, err)

	defer c.Close()

	require.NoError(t, c.Install(context.Background(), Manifest))

	_, ok := c.Match("./assets/sounds/focus.wav")
	assert.True(t, ok)
}
