package cache

import (
	"context"
	"time"
)

// NoopCache is a cache that never hits. Used when no cache backend is
// configured: every lookup is a miss and every store succeeds silently.
type NoopCache struct{}

// NewNoopCache creates a new no-op cache instance.
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

// GetCompletion always reports a miss.
func (c *NoopCache) GetCompletion(ctx context.Context, key string) (string, error) {
	return "", nil
}

// SetCompletion does nothing and always succeeds.
func (c *NoopCache) SetCompletion(ctx context.Context, key, completion string, ttl time.Duration) error {
	return nil
}

// Close does nothing and always succeeds.
func (c *NoopCache) Close() error {
	return nil
}
