package offline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type origin struct {
	mu     sync.Mutex
	assets map[string]string
	hits   map[string]int
	server *httptest.Server
}

func newOrigin(t *testing.T, assets map[string]string) *origin {
	t.Helper()

	o := &origin{assets: assets, hits: make(map[string]int)}

	o.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o.mu.Lock()
		defer o.mu.Unlock()

		o.hits[r.URL.Path]++

		body, ok := o.assets[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(o.server.Close)

	return o
}

func (o *origin) count(p string) int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.hits[p]
}

func openCache(t *testing.T, dbPath, name string, o *origin) *Cache {
	t.Helper()

	f, err := NewHTTPOrigin(o.server.URL)
	require.NoError(t, err)

	c, err := Open(dbPath, name, f)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	return c
}

var assets = map[string]string{
	"/":            "root",
	"/index.html":  "index",
	"/css/app.css": "css",
}

var manifest = []string{"./", "./index.html", "./css/app.css"}

func TestKey(t *testing.T) {
	cases := map[string]string{
		"./":            "/",
		".":             "/",
		"/":             "/",
		"./index.html":  "/index.html",
		"index.html":    "/index.html",
		"/css//app.css": "/css/app.css",
		"/a/?v=1":       "/a/?v=1",
		"/api/../x.js":  "/x.js",
	}

	for in, want := range cases {
		assert.Equal(t, want, Key(in), in)
	}
}

func TestInstallPrecachesManifest(t *testing.T) {
	o := newOrigin(t, assets)
	c := openCache(t, filepath.Join(t.TempDir(), "offline.db"), "focusflow-cache-v1", o)

	require.NoError(t, c.Install(context.Background(), manifest))

	for p, body := range assets {
		resp, ok := c.Match(p)
		require.True(t, ok, p)
		assert.Equal(t, body, string(resp.Body))
	}

	resp, hit, err := c.Fetch(context.Background(), "/index.html")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "index", string(resp.Body))
	assert.Equal(t, 1, o.count("/index.html"))
}

func TestInstallIsAllOrNothing(t *testing.T) {
	o := newOrigin(t, assets)
	c := openCache(t, filepath.Join(t.TempDir(), "offline.db"), "v1", o)

	err := c.Install(context.Background(), append(manifest, "./missing.js"))
	require.ErrorIs(t, err, errPrecache)
	assert.ErrorIs(t, err, errOriginStatus)

	_, ok := c.Match("/index.html")
	assert.False(t, ok)
}

func TestActivatePurgesOldGenerations(t *testing.T) {
	o := newOrigin(t, assets)
	dbPath := filepath.Join(t.TempDir(), "offline.db")

	old := openCache(t, dbPath, "focusflow-cache-v0", o)
	require.NoError(t, old.Install(context.Background(), manifest))
	require.NoError(t, old.Close())

	c := openCache(t, dbPath, "focusflow-cache-v1", o)
	require.NoError(t, c.Install(context.Background(), manifest))

	deleted, err := c.Activate()
	require.NoError(t, err)
	assert.Equal(t, []string{"focusflow-cache-v0"}, deleted)

	names, err := c.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"focusflow-cache-v1"}, names)
}

func TestFetchStoresMisses(t *testing.T) {
	o := newOrigin(t, assets)
	c := openCache(t, filepath.Join(t.TempDir(), "offline.db"), "v1", o)

	resp, hit, err := c.Fetch(context.Background(), "/css/app.css")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "css", string(resp.Body))

	resp, hit, err = c.Fetch(context.Background(), "/css/app.css")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "css", string(resp.Body))
	assert.Equal(t, 1, o.count("/css/app.css"))
}

func TestFetchDoesNotStoreErrors(t *testing.T) {
	o := newOrigin(t, assets)
	c := openCache(t, filepath.Join(t.TempDir(), "offline.db"), "v1", o)

	resp, _, err := c.Fetch(context.Background(), "/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)

	_, ok := c.Match("/nope")
	assert.False(t, ok)
}

func TestFetchOffline(t *testing.T) {
	o := newOrigin(t, assets)
	c := openCache(t, filepath.Join(t.TempDir(), "offline.db"), "v1", o)

	require.NoError(t, c.Install(context.Background(), manifest))

	o.server.Close()

	resp, hit, err := c.Fetch(context.Background(), "./index.html")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "index", string(resp.Body))

	_, _, err = c.Fetch(context.Background(), "/js/app.js")
	assert.ErrorIs(t, err, errNotCached)
}

func TestServeHTTP(t *testing.T) {
	o := newOrigin(t, assets)
	c := openCache(t, filepath.Join(t.TempDir(), "offline.db"), "v1", o)

	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "index", rec.Body.String())
	assert.Equal(t, "miss", rec.Header().Get("X-Cache"))
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", http.NoBody))
	assert.Equal(t, "hit", rec.Header().Get("X-Cache"))

	rec = httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/index.html", http.NoBody))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	o.server.Close()

	rec = httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", http.NoBody))
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestCacheLocked(t *testing.T) {
	o := newOrigin(t, assets)
	dbPath := filepath.Join(t.TempDir(), "offline.db")

	openCache(t, dbPath, "v1", o)

	f, err := NewHTTPOrigin(o.server.URL)
	require.NoError(t, err)

	_, err = Open(dbPath, "v1", f)
	assert.ErrorIs(t, err, errCacheLocked)
}

func TestNewHTTPOriginRejectsRelative(t *testing.T) {
	_, err := NewHTTPOrigin("assets/")
	assert.ErrorIs(t, err, errInvalidOrigin)
}
