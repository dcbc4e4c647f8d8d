// Package store is the persistence adapter for focusflow. Values are JSON
// encoded and kept under a namespace prefix in a pluggable key-value backend.
// No operation surfaces an error to callers: reads fall back to a default and
// failed writes degrade the store to memory for the rest of the process.
package store

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
)

const writeCheckKey = "__test__"

// Backend is a raw key-value storage mechanism.
type Backend interface {
	// Get returns the value for key and whether it exists
	Get(key string) ([]byte, bool, error)
	// Put creates or overwrites the value for key
	Put(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error
	Delete(key string) error
	// Keys lists every key beginning with prefix
	Keys(prefix string) ([]string, error)
	// Close releases the backend
	Close() error
}

// Store is a namespaced JSON key-value store.
type Store struct {
	backend   Backend
	mem       *Memory
	removed   map[string]struct{}
	namespace string
	mu        sync.Mutex
	degraded  bool
}

// New wraps a backend. A nil backend yields a memory-only store.
func New(backend Backend, namespace string) *Store {
	s := &Store{
		backend:   backend,
		namespace: namespace,
		mem:       NewMemory(),
		removed:   make(map[string]struct{}),
	}

	if backend == nil {
		s.backend = s.mem
	}

	return s
}

// Init checks the backend once for writability. On failure a warning is
// printed and the store continues in memory.
func (s *Store) Init() bool {
	key := s.namespace + writeCheckKey

	err := s.backend.Put(key, []byte("1"))
	if err == nil {
		err = s.backend.Delete(key)
	}

	if err != nil {
		s.degrade(err)

		pterm.Warning.Println(
			"storage is not available: settings will not persist",
		)

		return false
	}

	return true
}

// Degraded reports whether the store fell back to memory.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.degraded
}

func (s *Store) degrade(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.degraded {
		slog.Warn("storage unavailable, continuing in memory", slog.Any("error", err))
	}

	s.degraded = true
}

func (s *Store) read(key string) ([]byte, bool) {
	k := s.namespace + key

	if s.Degraded() {
		if b, ok, _ := s.mem.Get(k); ok {
			return b, true
		}

		// removed while degraded, the backend copy is stale
		if s.isRemoved(k) {
			return nil, false
		}
	}

	b, ok, err := s.backend.Get(k)
	if err != nil {
		slog.Debug("storage read failed", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}

	return b, ok
}

// Set stores value under key. Failures are swallowed.
func (s *Store) Set(key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		slog.Debug("storage encode failed", slog.String("key", key), slog.Any("error", err))
		return
	}

	k := s.namespace + key

	if s.Degraded() {
		s.setRemoved(k, false)
		_ = s.mem.Put(k, b)

		return
	}

	err = s.backend.Put(k, b)
	if err != nil {
		s.degrade(err)
		_ = s.mem.Put(k, b)
	}
}

// Remove deletes key. Failures are swallowed.
func (s *Store) Remove(key string) {
	k := s.namespace + key

	_ = s.mem.Delete(k)

	if s.Degraded() {
		s.setRemoved(k, true)
		return
	}

	err := s.backend.Delete(k)
	if err != nil {
		s.degrade(err)
		s.setRemoved(k, true)
	}
}

func (s *Store) setRemoved(k string, removed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if removed {
		s.removed[k] = struct{}{}
		return
	}

	delete(s.removed, k)
}

func (s *Store) isRemoved(k string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.removed[k]

	return ok
}

// Keys returns the keys (without namespace) that start with prefix, in
// natural order.
func (s *Store) Keys(prefix string) []string {
	full := s.namespace + prefix

	seen := make(map[string]struct{})

	keys, err := s.backend.Keys(full)
	if err != nil {
		slog.Debug("storage listing failed", slog.Any("error", err))
	}

	if s.Degraded() {
		memKeys, _ := s.mem.Keys(full)
		keys = append(keys, memKeys...)
	}

	result := make([]string, 0, len(keys))

	for _, k := range keys {
		if _, ok, _ := s.mem.Get(k); !ok && s.isRemoved(k) {
			continue
		}

		k = strings.TrimPrefix(k, s.namespace)
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}

		result = append(result, k)
	}

	sort.Sort(natural.StringSlice(result))

	return result
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Get decodes the value stored under key into T. Missing, unreadable and
// malformed values yield def.
func Get[T any](s *Store, key string, def T) T {
	b, ok := s.read(key)
	if !ok {
		return def
	}

	var v T

	err := json.Unmarshal(b, &v)
	if err != nil {
		slog.Debug("malformed stored value", slog.String("key", key), slog.Any("error", err))
		return def
	}

	return v
}
