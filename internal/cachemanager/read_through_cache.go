package cachemanager

import (
	"context"
	"fmt"
	"time"
)

// Loader computes the value for input on a cache miss.
type Loader[I any, V any] func(ctx context.Context, input I) (V, error)

// ReadThroughCache fronts a CacheManager with a Loader. Failed loads are not
// stored, so the next Get retries them.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache   CacheManager[K, V]
	load    Loader[I, V]
	sliding bool
}

// NewReadThroughCache wraps cache. A nil cache disables memoization and every
// Get calls load. With sliding set, a hit pushes the entry's expiry out by
// the ttl passed to Get.
func NewReadThroughCache[K comparable, V any, I any](cache CacheManager[K, V], load Loader[I, V], sliding bool) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{cache: cache, load: load, sliding: sliding}
}

// Get returns the value cached under key, loading it from input on a miss.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.cache == nil {
		return r.load(ctx, input)
	}
	if value, ok := r.lookup(ctx, key, ttl); ok {
		return value, nil
	}

	value, err := r.load(ctx, input)
	if err != nil {
		return value, fmt.Errorf("loading %v: %w", key, err)
	}
	r.cache.Set(ctx, key, value, ttl)
	return value, nil
}

func (r *ReadThroughCache[K, V, I]) lookup(ctx context.Context, key K, ttl time.Duration) (V, bool) {
	if r.sliding {
		return r.cache.GetWithRefresh(ctx, key, ttl)
	}
	return r.cache.Get(ctx, key)
}

// Invalidate drops everything cached.
func (r *ReadThroughCache[K, V, I]) Invalidate(ctx context.Context) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Flush(ctx)
}
