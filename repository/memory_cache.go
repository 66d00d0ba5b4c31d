package repository

import (
	"sync"
	"time"
)

type memoryCacheEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// MemoryCache is a process-local CacheRepository, used when no Redis
// address is configured and in tests.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryCacheEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]memoryCacheEntry),
	}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(key string, value string, ttl time.Duration) error {
	entry := memoryCacheEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.data[key] = entry
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, for tests.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
