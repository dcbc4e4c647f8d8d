package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/offline"
	"github.com/ayoisaiah/focusflow/store"
	"github.com/ayoisaiah/focusflow/web"
)

func newDashboard(t *testing.T) *httptest.Server {
	t.Helper()

	st := newMemoryStore()
	st.Set(store.KeyTotalSessions, 7)

	origin, err := newOrigin(config.Default())
	require.NoError(t, err)

	cache, err := offline.Open(filepath.Join(t.TempDir(), "offline.db"), "test-cache", origin)
	require.NoError(t, err)

	t.Cleanup(func() { cache.Close() })

	require.NoError(t, cache.Install(t.Context(), web.Manifest))

	srv := httptest.NewServer(dashboardHandler(st, cache))
	t.Cleanup(srv.Close)

	return srv
}

func TestDashboardStatsAPI(t *testing.T) {
	srv := newDashboard(t)

	resp, err := http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	var body statsReport

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 7, body.Total)
}

func TestDashboardAssetsFromCache(t *testing.T) {
	srv := newDashboard(t)

	resp, err := http.Get(srv.URL + "/index.html")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hit", resp.Header.Get("X-Cache"))

	resp, err = http.Post(srv.URL+"/", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestNewOriginRejectsInvalidURL(t *testing.T) {
	cfg := config.Default()
	cfg.Offline.Origin = "://nope"

	_, err := newOrigin(cfg)
	assert.Error(t, err)
}
