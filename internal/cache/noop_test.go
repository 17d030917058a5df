package cache

import (
	"context"
	"testing"
	"time"
)

func TestNoopCacheAlwaysMisses(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()

	if err := c.SetCompletion(ctx, "key", "value", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := c.GetCompletion(ctx, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected miss, got %q", got)
	}
	if err := c.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}
