package cache

import (
	"context"
	"time"

	pkgcache "portfolio-backend/pkg/cache"
)

// noopCache satisfies the cache contract without storing anything. Used
// by one-shot commands that talk to the database directly.
type noopCache struct{}

func NewNoop() pkgcache.Cache {
	return noopCache{}
}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (noopCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func (noopCache) DeletePattern(ctx context.Context, pattern string) error {
	return nil
}

func (noopCache) Ping(ctx context.Context) error {
	return nil
}
