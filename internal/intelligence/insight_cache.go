package intelligence

import (
	"strings"
	"sync"
)

// InsightCache memoizes destination briefs for the lifetime of the
// process. It is never persisted and never expires entries; losing it
// on restart is by contract harmless. Concurrent misses for the same
// key are not deduplicated: results are idempotent and a duplicate
// write stores the same value.
type InsightCache struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewInsightCache creates an empty process-scoped cache.
func NewInsightCache() *InsightCache {
	return &InsightCache{entries: make(map[string]string)}
}

// insightKey normalizes the (country, nationality) pair.
func insightKey(country, nationality string) string {
	return strings.ToLower(country) + "-" + strings.ToLower(nationality)
}

// Get returns the cached brief for the key, if present.
func (c *InsightCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a brief under the key. Last writer wins.
func (c *InsightCache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Len returns the number of cached entries.
func (c *InsightCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
