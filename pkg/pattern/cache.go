package pattern

import (
	"sync"

	"github.com/campuslink/textguard/pkg/dict"
)

// Cache memoizes compiled matchers keyed by root word. Entries are
// write-once: the dictionaries never change at runtime, so a compiled
// matcher is reused for the process lifetime and never invalidated.
//
// The cache is owned by whoever constructs the scanner and passed by
// reference; there is no ambient global state.
type Cache struct {
	mu      sync.RWMutex
	subs    dict.SubstitutionTable
	entries map[string]*Matcher
}

// NewCache creates an empty cache bound to one substitution table.
func NewCache(subs dict.SubstitutionTable) *Cache {
	return &Cache{
		subs:    subs,
		entries: make(map[string]*Matcher),
	}
}

// Get returns the matcher for root, compiling it on first use. Concurrent
// first-time callers may both compile; compilation is pure, so whichever
// result lands in the map is equivalent.
func (c *Cache) Get(root string) *Matcher {
	c.mu.RLock()
	m, ok := c.entries[root]
	c.mu.RUnlock()
	if ok {
		return m
	}

	m = Compile(root, c.subs)

	c.mu.Lock()
	if prev, ok := c.entries[root]; ok {
		m = prev
	} else {
		c.entries[root] = m
	}
	c.mu.Unlock()
	return m
}

// Len returns the number of compiled entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
