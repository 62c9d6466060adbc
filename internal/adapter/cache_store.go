package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	m "glotscan.dev/pkg/glotscan/internal/model"
	"glotscan.dev/pkg/glotscan/pkg/gobfile"
)

// CacheStore persists extraction results between scans.
type CacheStore interface {
	// Load returns the stored cache. A missing, corrupt or outdated store
	// yields an empty cache, never an error.
	Load(ctx context.Context) (*m.Cache, error)

	// Update loads the cache, hands it to fn and persists the result. Calls
	// are serialized for the whole read-modify-write, across processes
	// sharing the cache too. Nothing is written when fn fails.
	Update(ctx context.Context, fn func(cache *m.Cache) error) error

	// Path returns where the cache lives.
	Path() m.Path
}

// lockRetryDelay is how often a held cache lock is polled.
const lockRetryDelay = 50 * time.Millisecond

// LocalCacheStore keeps the cache in a single compressed gob file. A
// sibling "<path>.lock" file holds the advisory lock for writers.
type LocalCacheStore struct {
	path     m.Path
	compress bool
	mu       sync.Mutex
}

// NewLocalCacheStore returns a store writing to path.
func NewLocalCacheStore(path m.Path) *LocalCacheStore {
	return &LocalCacheStore{path: path, compress: true}
}

// Path implements CacheStore.
func (s *LocalCacheStore) Path() m.Path {
	return s.path
}

// Load implements CacheStore.
func (s *LocalCacheStore) Load(ctx context.Context) (*m.Cache, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(), nil
}

// Update implements CacheStore. A failure to persist is logged and does
// not fail the update: the next scan simply starts cold.
func (s *LocalCacheStore) Update(ctx context.Context, fn func(cache *m.Cache) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockFile(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	cache := s.load()

	if err := fn(cache); err != nil {
		return err
	}

	cache.Version = m.CacheVersion
	if err := gobfile.Save(string(s.path), *cache, gobfile.WithCompression(s.compress)); err != nil {
		slog.Warn("Failed to persist extraction cache", "path", s.path, "error", err)
		return nil
	}

	slog.Debug("Persisted extraction cache", "path", s.path, "records", len(cache.Records))

	return nil
}

// lockFile takes the inter-process lock, waiting until ctx is done.
func (s *LocalCacheStore) lockFile(ctx context.Context) (func(), error) {
	lockPath := string(s.path) + ".lock"

	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(lockPath)

	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock extraction cache %s: %w", lockPath, err)
	}

	if !locked {
		return nil, fmt.Errorf("lock extraction cache %s: %w", lockPath, ctx.Err())
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			slog.Warn("Failed to release extraction cache lock", "path", lockPath, "error", err)
		}
	}, nil
}

func (s *LocalCacheStore) load() *m.Cache {
	cache, err := gobfile.Load[m.Cache](string(s.path))

	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Debug("No extraction cache yet", "path", s.path)
		return m.NewCache()
	case err != nil:
		slog.Warn("Ignoring unreadable extraction cache", "path", s.path, "error", err)
		return m.NewCache()
	case cache.Version != m.CacheVersion:
		slog.Warn("Ignoring extraction cache from another version", "path", s.path,
			"version", cache.Version, "want", m.CacheVersion)

		return m.NewCache()
	}

	if cache.Records == nil {
		cache.Records = make(map[m.Path]m.CacheRecord)
	}

	return &cache
}
