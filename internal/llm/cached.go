package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"studygen/internal/cache"
)

// CachedClient wraps a Client with a completion cache. Cache failures are
// logged and ignored; they never fail the completion itself.
type CachedClient struct {
	inner Client
	cache cache.Cache
	model string
	ttl   time.Duration
	log   *slog.Logger
}

// NewCachedClient decorates inner with completion caching. The model name
// participates in the cache key so a model switch invalidates old entries.
func NewCachedClient(inner Client, c cache.Cache, model string, ttl time.Duration, log *slog.Logger) *CachedClient {
	return &CachedClient{
		inner: inner,
		cache: c,
		model: model,
		ttl:   ttl,
		log:   log,
	}
}

func (c *CachedClient) Complete(ctx context.Context, systemPrompt, userPrompt string, userLimit int) (string, error) {
	key := completionKey(c.model, systemPrompt, Truncate(userPrompt, userLimit))

	if cached, err := c.cache.GetCompletion(ctx, key); err != nil {
		c.log.Warn("completion cache read failed", "err", err)
	} else if cached != "" {
		c.log.Debug("completion cache hit", "key", key)
		return cached, nil
	}

	out, err := c.inner.Complete(ctx, systemPrompt, userPrompt, userLimit)
	if err != nil {
		return "", err
	}
	if err := c.cache.SetCompletion(ctx, key, out, c.ttl); err != nil {
		c.log.Warn("completion cache write failed", "err", err)
	}
	return out, nil
}

// completionKey digests the full request identity. The NUL separators keep
// distinct (system, user) pairs from colliding on concatenation.
func completionKey(model, system, user string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%s", model, system, user)
	return hex.EncodeToString(h.Sum(nil))
}
