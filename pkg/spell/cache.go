package spell

import (
	"sync"
)

// ResultCache is a bounded FIFO map from a lowercase query to its ranked
// suggestions. When full, the entry inserted earliest is evicted, never
// the least recently used one. Hits do no order bookkeeping at all.
type ResultCache struct {
	entries  map[string][]Suggestion
	order    []string
	capacity int
	hits     int
	misses   int
	mu       sync.Mutex
}

// NewResultCache creates a cache holding at most capacity entries.
func NewResultCache(capacity int) *ResultCache {
	if capacity < 1 {
		capacity = defaultCacheSize
	}
	return &ResultCache{
		entries:  make(map[string][]Suggestion, capacity),
		capacity: capacity,
	}
}

// Get returns the cached suggestions for word, if any.
func (rc *ResultCache) Get(word string) ([]Suggestion, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	cached, ok := rc.entries[word]
	if ok {
		rc.hits++
	} else {
		rc.misses++
	}
	return cached, ok
}

// Put stores suggestions under word, evicting the oldest entry first
// when the cache is full. Re-putting an existing key replaces the value
// in place without consuming a new order slot.
func (rc *ResultCache) Put(word string, suggestions []Suggestion) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if _, exists := rc.entries[word]; exists {
		rc.entries[word] = suggestions
		return
	}
	if len(rc.order) >= rc.capacity {
		oldest := rc.order[0]
		rc.order = rc.order[1:]
		delete(rc.entries, oldest)
	}
	rc.entries[word] = suggestions
	rc.order = append(rc.order, word)
}

// Len returns the current entry count.
func (rc *ResultCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.entries)
}

// Clear drops every entry. Hit and miss counters survive, they are
// lifetime stats.
func (rc *ResultCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries = make(map[string][]Suggestion, rc.capacity)
	rc.order = nil
}

// Stats reports cache counters.
func (rc *ResultCache) Stats() map[string]int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return map[string]int{
		"cacheEntries":  len(rc.entries),
		"cacheCapacity": rc.capacity,
		"cacheHits":     rc.hits,
		"cacheMisses":   rc.misses,
	}
}
