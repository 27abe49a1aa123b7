package cache

import (
	"sync"
	"time"
)

// TTLCache is a tiny in-memory TTL key store. Values are not stored; only key
// existence within TTL is tracked. The API uses it to hold revoked admin
// tokens until they would have expired anyway. It is process-local and NOT
// suitable for distributed deployments.
type TTLCache struct {
	mu   sync.Mutex
	data map[string]time.Time // key -> expiry time
}

// NewTTLCache creates a new empty TTL cache.
func NewTTLCache() *TTLCache {
	return &TTLCache{
		data: make(map[string]time.Time),
	}
}

// Has reports whether key is present and not expired.
// It lazily prunes expired entries on access.
func (c *TTLCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	exp, ok := c.data[key]
	if !ok {
		return false
	}

	if time.Now().After(exp) {
		delete(c.data, key)
		return false
	}

	return true
}

// Mark stores the key with a time-to-live.
func (c *TTLCache) Mark(key string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = time.Now().Add(ttl)
}

// Purge drops every expired entry.
func (c *TTLCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, exp := range c.data {
		if now.After(exp) {
			delete(c.data, key)
		}
	}
}
