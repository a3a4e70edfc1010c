// Package cache provides the bounded caches shared across render calls.
//
// # LRU[K, V]
//
// A strict least-recently-used cache guarded by a single mutex. It backs the
// decoded image cache: capacity is exact, every Get refreshes recency and the
// least recently used entry is evicted when an Add exceeds capacity.
//
//	c := cache.NewLRU[string, *Image](128)
//	c.Add("https://example.com/a.png", img)
//	img, ok := c.Get("https://example.com/a.png")
//
// # Sharded[K, V]
//
// A sharded LRU for hot, read-mostly data touched from many goroutines at once
// (glyph outlines during parallel animation rendering). 16 shards, each with
// its own lock and LRU list.
//
// # Thread Safety
//
// Both caches are safe for concurrent use and must not be copied after creation.
// No lock is ever held while a caller-supplied function runs, except in
// Sharded.GetOrCreate, whose create function must be cheap.
package cache
