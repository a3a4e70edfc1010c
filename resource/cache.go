package resource

import "github.com/gogpu/nodeimg/internal/cache"

// DefaultCacheCapacity is the number of decoded images kept by a Cache
// created with a non-positive capacity.
const DefaultCacheCapacity = 128

// CacheStats is a snapshot of cache counters.
type CacheStats = cache.Stats

// Cache is a bounded, least-recently-used store of fetched images keyed by
// FetchTask. It is safe for concurrent use and outlives single renders.
type Cache struct {
	lru *cache.LRU[FetchTask, *Image]
}

// NewCache returns a cache holding at most capacity images.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{lru: cache.NewLRU[FetchTask, *Image](capacity)}
}

// Get returns the cached image for t and marks it recently used.
func (c *Cache) Get(t FetchTask) (*Image, bool) { return c.lru.Get(t) }

// Insert stores img under t, evicting the least recently used entry when
// the cache is full.
func (c *Cache) Insert(t FetchTask, img *Image) { c.lru.Add(t, img) }

// Contains reports whether t is cached without touching its recency.
func (c *Cache) Contains(t FetchTask) bool {
	_, ok := c.lru.Peek(t)
	return ok
}

func (c *Cache) Remove(t FetchTask) bool { return c.lru.Remove(t) }
func (c *Cache) Purge()                  { c.lru.Purge() }
func (c *Cache) Len() int                { return c.lru.Len() }
func (c *Cache) Stats() CacheStats       { return c.lru.Stats() }
