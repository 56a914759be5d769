// Package cache provides the search-result caches: a process-local TTL
// map and a SQLite-backed store that survives restarts. Both satisfy
// search.Cache.
package cache

import (
	"sync"
	"time"

	"ratefinder/core/types"
)

type entry struct {
	result    *types.SearchResult
	expiresAt time.Time
}

// Memory is an in-memory TTL cache. Expired entries are dropped on
// access.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry)}
}

// Get returns the cached result for a key if present and unexpired. The
// result is a copy; callers never share a struct with the cache or with
// each other.
func (m *Memory) Get(key string) (*types.SearchResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(m.entries, key)
		return nil, false
	}
	result := *e.result
	return &result, true
}

// Set stores a copy of the result under a key with the given TTL.
func (m *Memory) Set(key string, result *types.SearchResult, ttl time.Duration) {
	stored := *result

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{result: &stored, expiresAt: time.Now().Add(ttl)}
}

// Delete removes a key.
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Clear drops every entry.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]entry)
}

// Len returns the number of entries, including any not yet evicted.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
