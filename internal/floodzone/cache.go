package floodzone

import (
	"sync"

	"github.com/storm-buster/jal-setu/internal/domain"
)

// CacheKey identifies one generated response. The domain is finite
// (regions × scenarios), but the cache still enforces a capacity bound so
// adding regions or scenarios later cannot grow it without limit.
type CacheKey struct {
	Region   domain.Region
	Scenario domain.Scenario
}

// Cache is a thread-safe LRU cache of generated flood-zone responses.
// Values are treated as immutable after insertion: Get returns the same
// pointer to every caller and nothing may mutate it.
type Cache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[CacheKey]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   CacheKey
	value *domain.FloodZoneResponse
	prev  *entry
	next  *entry
}

// NewCache creates an LRU cache bounded to maxEntries responses.
func NewCache(maxEntries int) *Cache {
	return &Cache{
		maxEntries: maxEntries,
		entries:    make(map[CacheKey]*entry),
	}
}

// Get returns the cached response for key, marking it most recently used.
func (c *Cache) Get(key CacheKey) (*domain.FloodZoneResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

// Put stores a response, evicting the least recently used entry once the
// capacity bound is exceeded. Concurrent puts for the same key are safe;
// the last write wins and the stored value stays consistent.
func (c *Cache) Put(key CacheKey, value *domain.FloodZoneResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

// Len returns the number of cached responses.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *Cache) addToFront(e *entry) {
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

func (c *Cache) remove(e *entry) {
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

func (c *Cache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
