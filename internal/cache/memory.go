package cache

import "sync"

// Memory is a generic thread-safe LRU cache with a soft limit.
// When the cache exceeds softLimit, the least recently used 25% are evicted.
//
// Memory is safe for concurrent use.
// Memory must not be copied after creation (has mutex).
type Memory[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*lruNode[K, V]
	lru       lruList[K, V]
	softLimit int

	hits, misses, evictions uint64
}

// NewMemory creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited.
func NewMemory[K comparable, V any](softLimit int) *Memory[K, V] {
	return &Memory[K, V]{
		entries:   make(map[K]*lruNode[K, V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value from the cache and marks it recently used.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Memory[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}

	c.hits++
	c.lru.MoveToFront(node)
	return node.value, true
}

// Set stores a value in the cache, replacing any previous value for key.
// If the cache exceeds softLimit after insertion, old entries are evicted.
func (c *Memory[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.entries[key]; ok {
		node.value = value
		c.lru.MoveToFront(node)
		return
	}

	c.entries[key] = c.lru.PushFront(key, value)

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Memory[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.Remove(node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries from the cache. Counters are kept.
func (c *Memory[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*lruNode[K, V])
	c.lru = lruList[K, V]{}
}

// Len returns the number of entries in the cache.
func (c *Memory[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the soft limit of the cache.
func (c *Memory[K, V]) Capacity() int {
	return c.softLimit
}

// Stats returns cache statistics.
func (c *Memory[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.softLimit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// evictOldest drops least recently used entries until the cache holds 75%
// of its soft limit. Caller must hold c.mu.
func (c *Memory[K, V]) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	for len(c.entries) > target {
		key, ok := c.lru.RemoveOldest()
		if !ok {
			return
		}
		delete(c.entries, key)
		c.evictions++
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the soft limit.
	Capacity int
	// Hits is the number of successful lookups.
	Hits uint64
	// Misses is the number of failed lookups.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries dropped to stay under the limit.
	Evictions uint64
}

// lruNode is a node in a doubly-linked LRU list.
type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  *lruNode[K, V]
	next  *lruNode[K, V]
}

// lruList is a doubly-linked list ordered by recency: head is the most
// recently used entry, tail the least. Not thread-safe.
type lruList[K comparable, V any] struct {
	head *lruNode[K, V]
	tail *lruNode[K, V]
}

// PushFront inserts a new node at the head and returns it.
func (l *lruList[K, V]) PushFront(key K, value V) *lruNode[K, V] {
	node := &lruNode[K, V]{key: key, value: value}
	l.link(node)
	return node
}

// MoveToFront moves an existing node to the head.
func (l *lruList[K, V]) MoveToFront(node *lruNode[K, V]) {
	if node == l.head {
		return
	}
	l.unlink(node)
	l.link(node)
}

// Remove unlinks node from the list.
func (l *lruList[K, V]) Remove(node *lruNode[K, V]) {
	l.unlink(node)
}

// RemoveOldest unlinks the tail and returns its key.
// Returns false if the list is empty.
func (l *lruList[K, V]) RemoveOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	node := l.tail
	l.unlink(node)
	return node.key, true
}

func (l *lruList[K, V]) link(node *lruNode[K, V]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
}

func (l *lruList[K, V]) unlink(node *lruNode[K, V]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
}
