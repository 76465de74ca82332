// Package cache provides a small thread-safe LRU cache shared by the session
// store and the geocoding decorator.
package cache

import "sync"

// LRU is a fixed-capacity, thread-safe least-recently-used cache.
type LRU[V any] struct {
	maxEntries int
	onEvict    func(key string, value V)

	mu      sync.Mutex
	entries map[string]*entry[V]
	head    *entry[V] // most recently used
	tail    *entry[V] // least recently used
}

type entry[V any] struct {
	key   string
	value V
	prev  *entry[V]
	next  *entry[V]
}

// NewLRU creates a cache holding at most maxEntries values. Values below 1
// are treated as 1. onEvict, when non-nil, is called with the lock held for
// each entry pushed out by a Put.
func NewLRU[V any](maxEntries int, onEvict func(key string, value V)) *LRU[V] {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &LRU[V]{
		maxEntries: maxEntries,
		onEvict:    onEvict,
		entries:    make(map[string]*entry[V]),
	}
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(e)
	return e.value, true
}

// Put inserts or replaces the value for key.
func (c *LRU[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry[V]{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

// Len reports the number of cached entries.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *LRU[V]) moveToFront(e *entry[V]) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *LRU[V]) addToFront(e *entry[V]) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *LRU[V]) remove(e *entry[V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *LRU[V]) evictTail() {
	victim := c.tail
	if victim == nil {
		return
	}
	delete(c.entries, victim.key)
	c.remove(victim)
	if c.onEvict != nil {
		c.onEvict(victim.key, victim.value)
	}
}
