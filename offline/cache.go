// Package offline is a cache-first asset cache. Assets are precached from a
// manifest on install, caches left by older versions are purged on
// activation, and every request is answered from the cache when possible,
// falling back to the origin and storing what it returns.
package offline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Cache is a named cache generation backed by a bolt database that may hold
// other generations too.
type Cache struct {
	db     *bolt.DB
	origin Fetcher
	name   string
}

// Open opens the cache database at dbPath and selects the generation name.
func Open(dbPath, name string, origin Fetcher) (*Cache, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errCacheLocked
		}

		return nil, errOpenCache.Fmt(dbPath).Wrap(err)
	}

	return &Cache{
		db:     db,
		name:   name,
		origin: origin,
	}, nil
}

// Name returns the cache generation name.
func (c *Cache) Name() string {
	return c.name
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key normalises a manifest entry or request path: "./" and "/" are the
// same asset, as are "./index.html" and "/index.html".
func Key(p string) string {
	if p == "." {
		p = "/"
	}

	p = strings.TrimPrefix(p, "./")

	query := ""
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p, query = p[:i], p[i:]
	}

	clean := path.Clean("/" + p)
	if strings.HasSuffix(p, "/") && clean != "/" {
		clean += "/"
	}

	return clean + query
}

// Install fetches every manifest entry and stores them together. If any
// entry fails nothing is stored.
func (c *Cache) Install(ctx context.Context, manifest []string) error {
	fetched := make(map[string]*Response, len(manifest))

	for _, entry := range manifest {
		k := Key(entry)

		resp, err := c.origin.Fetch(ctx, k)
		if err != nil {
			return errPrecache.Fmt(k).Wrap(err)
		}

		if !resp.OK() {
			return errPrecache.Fmt(k).Wrap(errOriginStatus.Fmt(resp.Status))
		}

		fetched[k] = resp
	}

	err := c.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(c.name))
		if err != nil {
			return err
		}

		for k, resp := range fetched {
			if err := putResponse(b, k, resp); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("offline cache installed",
		slog.String("cache", c.name),
		slog.Int("assets", len(fetched)),
	)

	return nil
}

// Activate deletes every cache generation other than the current one and
// returns the names it deleted.
func (c *Cache) Activate() ([]string, error) {
	var deleted []string

	err := c.db.Update(func(tx *bolt.Tx) error {
		var stale [][]byte

		err := tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			if string(name) != c.name {
				stale = append(stale, append([]byte(nil), name...))
			}

			return nil
		})
		if err != nil {
			return err
		}

		for _, name := range stale {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}

			deleted = append(deleted, string(name))
		}

		return nil
	})

	for _, name := range deleted {
		slog.Info("deleted stale offline cache", slog.String("cache", name))
	}

	return deleted, err
}

// Names lists the cache generations in the database.
func (c *Cache) Names() ([]string, error) {
	var names []string

	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			names = append(names, string(name))
			return nil
		})
	})

	return names, err
}

// Match returns the cached response for p in the current generation.
func (c *Cache) Match(p string) (*Response, bool) {
	var resp *Response

	_ = c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(c.name))
		if b == nil {
			return nil
		}

		v := b.Get([]byte(Key(p)))
		if v == nil {
			return nil
		}

		var r Response
		if err := json.Unmarshal(v, &r); err != nil {
			return nil
		}

		resp = &r

		return nil
	})

	return resp, resp != nil
}

// Put stores resp under p in the current generation.
func (c *Cache) Put(p string, resp *Response) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(c.name))
		if err != nil {
			return err
		}

		return putResponse(b, Key(p), resp)
	})
}

func putResponse(b *bolt.Bucket, k string, resp *Response) error {
	v, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	return b.Put([]byte(k), v)
}

// Fetch answers p cache-first. A miss goes to the origin and successful
// responses are stored. If the origin is unreachable an entry cached in the
// meantime is returned, otherwise the error.
func (c *Cache) Fetch(ctx context.Context, p string) (resp *Response, hit bool, err error) {
	if resp, ok := c.Match(p); ok {
		return resp, true, nil
	}

	resp, err = c.origin.Fetch(ctx, Key(p))
	if err != nil {
		if cached, ok := c.Match(p); ok {
			return cached, true, nil
		}

		return nil, false, errNotCached.Fmt(Key(p)).Wrap(err)
	}

	if resp.OK() {
		if err := c.Put(p, resp); err != nil {
			slog.Warn("unable to cache response",
				slog.String("path", p),
				slog.Any("error", err),
			)
		}
	}

	return resp, false, nil
}

func (c *Cache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)

		return
	}

	p := r.URL.Path
	if r.URL.RawQuery != "" {
		p += "?" + r.URL.RawQuery
	}

	resp, hit, err := c.Fetch(r.Context(), p)
	if err != nil {
		slog.Debug("offline cache miss", slog.String("path", p), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusGatewayTimeout), http.StatusGatewayTimeout)

		return
	}

	for k, v := range resp.Header {
		w.Header()[k] = v
	}

	w.Header().Set("X-Cache", "miss")
	if hit {
		w.Header().Set("X-Cache", "hit")
	}

	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.WriteHeader(resp.Status)

	if r.Method == http.MethodGet {
		_, _ = w.Write(resp.Body)
	}
}
