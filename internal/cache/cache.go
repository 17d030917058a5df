package cache

import (
	"context"
	"time"
)

// Cache stores LLM completion text keyed by a prompt digest so repeated
// runs over the same material skip the upstream call.
type Cache interface {
	// GetCompletion returns the cached completion for key, or "" on a miss.
	GetCompletion(ctx context.Context, key string) (string, error)

	// SetCompletion stores a completion with TTL.
	SetCompletion(ctx context.Context, key, completion string, ttl time.Duration) error

	// Close releases the underlying connection.
	Close() error
}
