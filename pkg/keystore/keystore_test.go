package keystore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestMemoryStoreSetGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "user-1", Keys{"openai": "sk-1", "gptzero": ""}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := s.Get(ctx, "user-1", "openai"); got != "sk-1" {
		t.Fatalf("expected stored key, got %q", got)
	}
	// Empty values are not stored.
	if got, _ := s.Get(ctx, "user-1", "gptzero"); got != "" {
		t.Fatalf("expected no key, got %q", got)
	}
	// Other scopes stay isolated.
	if got, _ := s.Get(ctx, "anon", "openai"); got != "" {
		t.Fatalf("scope leak: %q", got)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	s.ttl = -time.Second // already expired
	ctx := context.Background()

	_ = s.Set(ctx, "user-1", Keys{"anthropic": "sk-2"})
	if got, _ := s.Get(ctx, "user-1", "anthropic"); got != "" {
		t.Fatalf("expected expired entry, got %q", got)
	}
}

func TestRedisStoreSetGet(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(mr.Addr(), "")
	ctx := context.Background()

	if err := s.Set(ctx, "user-2", Keys{"deepseek": "sk-3"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, err := s.Get(ctx, "user-2", "deepseek"); err != nil || got != "sk-3" {
		t.Fatalf("get: %q %v", got, err)
	}
	if got, err := s.Get(ctx, "user-2", "openai"); err != nil || got != "" {
		t.Fatalf("expected empty for unset provider, got %q %v", got, err)
	}

	mr.FastForward(DefaultTTL + time.Minute)
	if got, _ := s.Get(ctx, "user-2", "deepseek"); got != "" {
		t.Fatalf("expected expiry, got %q", got)
	}
}
