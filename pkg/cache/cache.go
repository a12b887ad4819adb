// Package cache stores rendered export artifacts between runs.
//
// Rendering a frame through Graphviz is the slowest part of an export. The
// DOT text fully determines the picture, so artifacts are keyed by a hash of
// the DOT source plus the output format ([ArtifactKey]).
//
// Two implementations are provided:
//
//   - [FileCache]: JSON entries under the user cache directory, for the CLI
//   - [NullCache]: never stores anything, for --no-cache and tests
//
// [Fetch] wraps the get-or-compute pattern and reports hits, misses and
// writes to the hooks registered in
// [github.com/derian-c/MATH478-FinalProject/pkg/observability].
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/derian-c/MATH478-FinalProject/pkg/observability"
)

// AppName names the cache directory.
const AppName = "kruskalviz"

// DefaultTTL is how long rendered artifacts stay valid.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close() error
}

// ArtifactKey returns the key of a rendered artifact.
func ArtifactKey(dot, format string) string {
	return hashKey("artifact", Hash([]byte(dot)), format)
}

// Fetch returns the value under key, computing and storing it on a miss.
// The bool reports a cache hit. keyType labels the hook events.
// Failing to store a computed value is not an error.
func Fetch(ctx context.Context, c Cache, key, keyType string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, bool, error) {
	hooks := observability.Cache()
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		hooks.OnCacheHit(ctx, keyType)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, keyType)

	data, err := compute()
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, data, ttl); err == nil {
		hooks.OnCacheSet(ctx, keyType, len(data))
	}
	return data, false, nil
}

// DefaultDir returns the cache directory using the XDG standard
// (~/.cache/kruskalviz).
func DefaultDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
