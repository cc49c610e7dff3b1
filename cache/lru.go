// Package cache provides the bounded LRU cache backing the process-wide
// texture registry.
package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is the capacity used when none is given.
const DefaultCapacity = 256

// LRU is a thread-safe, bounded cache with least-recently-used eviction.
//
// The capacity is a strict global bound: inserting into a full cache
// evicts the least recently used entry first. All operations are safe for
// concurrent use; a single mutex serializes lookup-or-insert so that two
// goroutines asking for the same key never both create it.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[K, V]
	lru      *lruList[K]
	capacity int

	// Statistics (atomic for lock-free reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// entry holds a cached value with its LRU node.
type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	HitRate   float64
	Evictions uint64
}

// New creates an LRU cache with the given capacity.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		entries:  make(map[K]*entry[K, V]),
		lru:      newLRUList[K](),
		capacity: capacity,
	}
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
// On a hit the entry becomes the most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.lru.MoveToFront(e.node)
	value := e.value
	c.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value in the cache, evicting the least recently used
// entries if the cache is over capacity afterwards.
//
// The value is stored as-is (not copied). Callers should not modify it
// after caching.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		existing.value = value
		c.lru.MoveToFront(existing.node)
		return
	}
	c.insert(key, value)
}

// GetOrCreate returns the cached value for key, calling create to build
// it on a miss. The create function runs with the cache lock held, so a
// given key is only ever built once; keep it reasonably fast.
//
// If create fails, nothing is inserted and the error is returned: the
// cache never stores a poisoned entry.
func (c *LRU[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value, nil
	}

	c.misses.Add(1)
	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(key, value)
	return value, nil
}

// insert adds a new entry and evicts past capacity. Caller holds the lock.
func (c *LRU[K, V]) insert(key K, value V) {
	for c.lru.Len() >= c.capacity {
		oldest, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
		c.evictions.Add(1)
	}

	node := c.lru.PushFront(key)
	c.entries[key] = &entry[K, V]{value: value, node: node}
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *LRU[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.Remove(e.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*entry[K, V])
	c.lru.Clear()
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns current cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *LRU[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
