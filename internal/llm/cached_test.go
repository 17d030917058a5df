package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"studygen/internal/cache"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCachedClientMissThenStore(t *testing.T) {
	inner := new(MockClient)
	inner.On("Complete", mock.Anything, "system", "user", 100).
		Return("completion text", nil).Once()

	c := new(cache.MockCache)
	c.On("GetCompletion", mock.Anything, mock.Anything).Return("", nil).Once()
	c.On("SetCompletion", mock.Anything, mock.Anything, "completion text", time.Hour).Return(nil).Once()

	client := NewCachedClient(inner, c, "test-model", time.Hour, testLogger())
	out, err := client.Complete(context.Background(), "system", "user", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "completion text" {
		t.Errorf("unexpected completion: %q", out)
	}

	inner.AssertExpectations(t)
	c.AssertExpectations(t)
}

func TestCachedClientHitSkipsUpstream(t *testing.T) {
	inner := new(MockClient)

	c := new(cache.MockCache)
	c.On("GetCompletion", mock.Anything, mock.Anything).Return("cached text", nil).Once()

	client := NewCachedClient(inner, c, "test-model", time.Hour, testLogger())
	out, err := client.Complete(context.Background(), "system", "user", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "cached text" {
		t.Errorf("expected cached completion, got %q", out)
	}
	inner.AssertNumberOfCalls(t, "Complete", 0)
}

func TestCachedClientCacheFailureIsNotFatal(t *testing.T) {
	inner := new(MockClient)
	inner.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("fresh text", nil).Once()

	c := new(cache.MockCache)
	c.On("GetCompletion", mock.Anything, mock.Anything).Return("", errors.New("redis down")).Once()
	c.On("SetCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

	client := NewCachedClient(inner, c, "test-model", time.Hour, testLogger())
	out, err := client.Complete(context.Background(), "system", "user", 0)
	if err != nil {
		t.Fatalf("cache failure must not fail the completion: %v", err)
	}
	if out != "fresh text" {
		t.Errorf("unexpected completion: %q", out)
	}
}

func TestCachedClientUpstreamErrorNotCached(t *testing.T) {
	upstreamErr := errors.New("boom")
	inner := new(MockClient)
	inner.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", upstreamErr).Once()

	c := new(cache.MockCache)
	c.On("GetCompletion", mock.Anything, mock.Anything).Return("", nil).Once()

	client := NewCachedClient(inner, c, "test-model", time.Hour, testLogger())
	if _, err := client.Complete(context.Background(), "system", "user", 0); !errors.Is(err, upstreamErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	c.AssertNotCalled(t, "SetCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCompletionKeyDistinguishesInputs(t *testing.T) {
	base := completionKey("m", "sys", "user")
	tests := []struct {
		name string
		key  string
	}{
		{"different model", completionKey("m2", "sys", "user")},
		{"different system", completionKey("m", "sys2", "user")},
		{"different user", completionKey("m", "sys", "user2")},
		{"shifted boundary", completionKey("m", "sysu", "ser")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.key == base {
				t.Error("expected distinct cache keys")
			}
		})
	}
}
