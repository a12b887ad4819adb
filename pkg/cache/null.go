package cache

import (
	"context"
	"time"
)

// NullCache stores nothing. Export uses it for --no-cache, so every Fetch
// recomputes.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

func NewNullCache() *NullCache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }
