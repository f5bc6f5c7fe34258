package productapi

import "sync"

const tagProduct = "Product"

// tagCache stores responses keyed by request identity and groups them under
// invalidation tags, so a mutation can mark a whole family of reads stale.
type tagCache struct {
	mu      sync.Mutex
	entries map[string]any
	tags    map[string]map[string]struct{}
}

func newTagCache() *tagCache {
	return &tagCache{
		entries: make(map[string]any),
		tags:    make(map[string]map[string]struct{}),
	}
}

func (c *tagCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok
}

func (c *tagCache) put(key string, value any, tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	for _, tag := range tags {
		if c.tags[tag] == nil {
			c.tags[tag] = make(map[string]struct{})
		}
		c.tags[tag][key] = struct{}{}
	}
}

func (c *tagCache) invalidate(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.tags[tag] {
		delete(c.entries, key)
	}
	delete(c.tags, tag)
}
