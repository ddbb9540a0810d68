package textcache

import (
	"image"
	"sync"
	"sync/atomic"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 1024

// Key identifies one measurement.
type Key struct {
	Text      string
	Face      int
	Scale     float64
	Thickness int
}

// Metrics is a measured text extent.
type Metrics struct {
	Size     image.Point
	Baseline int
}

// Cache is an LRU cache of text measurements.
type Cache struct {
	mu       sync.Mutex
	entries  map[Key]*node
	lru      lruList
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a cache holding at most capacity measurements.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		entries:  make(map[Key]*node, capacity),
		capacity: capacity,
	}
}

// Get returns the measurement for key and marks it recently used.
func (c *Cache) Get(key Key) (Metrics, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return Metrics{}, false
	}
	c.lru.moveToFront(n)
	c.hits.Add(1)
	return n.metrics, true
}

// GetOrCompute returns the cached measurement for key, computing and
// storing it on a miss. Errors from compute are returned and not cached.
// compute runs without the lock held, so concurrent misses on the same
// key may compute it more than once.
func (c *Cache) GetOrCompute(key Key, compute func() (Metrics, error)) (Metrics, error) {
	if m, ok := c.Get(key); ok {
		return m, nil
	}
	m, err := compute()
	if err != nil {
		return Metrics{}, err
	}
	c.Set(key, m)
	return m, nil
}

// Set stores m under key, evicting the least recently used entry when the
// cache is full.
func (c *Cache) Set(key Key, m Metrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.entries[key]; ok {
		n.metrics = m
		c.lru.moveToFront(n)
		return
	}
	for c.lru.len >= c.capacity {
		old := c.lru.removeOldest()
		if old == nil {
			break
		}
		delete(c.entries, old.key)
		c.evictions.Add(1)
	}
	n := &node{key: key, metrics: m}
	c.lru.pushFront(n)
	c.entries[key] = n
}

// Clear drops every entry. Statistics are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]*node, c.capacity)
	c.lru = lruList{}
}

// Len returns the number of cached measurements.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats reports cache usage.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits over lookups, or zero before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
