// Package keystore holds caller-supplied provider API keys, scoped per user
// (or "anon" for signed-out sessions). Keys expire so stale credentials do
// not linger server-side.
package keystore

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL bounds how long a caller-supplied key is retained.
const DefaultTTL = 12 * time.Hour

// Keys maps provider identifier (openai, anthropic, deepseek, perplexity,
// gptzero) to an API key. Empty values are skipped on Set.
type Keys map[string]string

type Store interface {
	Set(ctx context.Context, scope string, keys Keys) error
	// Get returns the stored key for a provider, or "" when none is set.
	Get(ctx context.Context, scope, provider string) (string, error)
}

type memoryEntry struct {
	keys   Keys
	expiry time.Time
}

// MemoryStore is the fallback when no redis is configured. Suitable for a
// single-process deployment only.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), ttl: DefaultTTL}
}

func (s *MemoryStore) Set(_ context.Context, scope string, keys Keys) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.entries[scope]
	if entry.keys == nil || time.Now().After(entry.expiry) {
		entry.keys = make(Keys)
	}
	for provider, key := range keys {
		if key != "" {
			entry.keys[provider] = key
		}
	}
	entry.expiry = time.Now().Add(s.ttl)
	s.entries[scope] = entry
	return nil
}

func (s *MemoryStore) Get(_ context.Context, scope, provider string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[scope]
	if !ok {
		return "", nil
	}
	if time.Now().After(entry.expiry) {
		delete(s.entries, scope)
		return "", nil
	}
	return entry.keys[provider], nil
}
