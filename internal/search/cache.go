package search

import (
	"context"
	"sync"
)

// Cache memoizes grounded-search results per Key. Entries read by the
// streaming endpoint stay until a terminal action takes them; there is no
// TTL, so the map grows for the life of the process.
//
// The mutex only protects the map. It is not held while fetching, so two
// concurrent misses on the same key both reach the provider.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*Result
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*Result)}
}

// GetOrFetch returns the stored result for key, calling fetch exactly once on
// a miss. Failed fetches are not stored.
func (c *Cache) GetOrFetch(ctx context.Context, key Key, fetch func(context.Context) (*Result, error)) (*Result, error) {
	if res, ok := c.get(key); ok {
		return res, nil
	}

	res, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = res
	c.mu.Unlock()
	return res, nil
}

// Take removes and returns the entry for key.
func (c *Cache) Take(key Key) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, ok := c.entries[key]
	if ok {
		delete(c.entries, key)
	}
	return res, ok
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) get(key Key) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.entries[key]
	return res, ok
}
