package spell

import (
	"fmt"
	"testing"
)

func suggestionsFor(word string) []Suggestion {
	return []Suggestion{{Word: word, Distance: 1, Confidence: 0.5}}
}

func TestCachePutGet(t *testing.T) {
	cache := NewResultCache(10)

	if _, ok := cache.Get("helo"); ok {
		t.Error("Fresh cache should miss")
	}

	cache.Put("helo", suggestionsFor("hello"))
	cached, ok := cache.Get("helo")
	if !ok {
		t.Fatal("Expected a hit after Put")
	}
	if len(cached) != 1 || cached[0].Word != "hello" {
		t.Errorf("Cached value mangled: %v", cached)
	}
}

// eviction follows insertion order, a recent Get must not save an entry.
// That is what separates this FIFO from an LRU.
func TestCacheFIFOEviction(t *testing.T) {
	cache := NewResultCache(3)
	cache.Put("a", suggestionsFor("a"))
	cache.Put("b", suggestionsFor("b"))
	cache.Put("c", suggestionsFor("c"))

	// touch the oldest entry, an LRU would now evict "b" instead
	if _, ok := cache.Get("a"); !ok {
		t.Fatal("'a' should still be cached")
	}

	cache.Put("d", suggestionsFor("d"))

	if _, ok := cache.Get("a"); ok {
		t.Error("'a' was inserted first and must be evicted first")
	}
	for _, w := range []string{"b", "c", "d"} {
		if _, ok := cache.Get(w); !ok {
			t.Errorf("%q should survive the eviction", w)
		}
	}
	if cache.Len() != 3 {
		t.Errorf("Cache must stay at capacity 3, got %d", cache.Len())
	}
}

// storing under a known key swaps the value without burning a slot
func TestCacheReplaceInPlace(t *testing.T) {
	cache := NewResultCache(2)
	cache.Put("x", suggestionsFor("one"))
	cache.Put("y", suggestionsFor("two"))

	cache.Put("x", suggestionsFor("three"))
	if cache.Len() != 2 {
		t.Errorf("Replacing 'x' must not grow the cache, got %d entries", cache.Len())
	}
	cached, _ := cache.Get("x")
	if len(cached) != 1 || cached[0].Word != "three" {
		t.Errorf("Expected the replaced value, got %v", cached)
	}

	// "x" keeps its original slot at the front of the queue
	cache.Put("z", suggestionsFor("four"))
	if _, ok := cache.Get("x"); ok {
		t.Error("'x' still holds the oldest slot and must be evicted")
	}
	if _, ok := cache.Get("y"); !ok {
		t.Error("'y' should survive")
	}
}

func TestCacheBound(t *testing.T) {
	cache := NewResultCache(5)
	for i := 0; i < 50; i++ {
		cache.Put(fmt.Sprintf("word%d", i), suggestionsFor("w"))
	}
	if cache.Len() != 5 {
		t.Errorf("Cache exceeded its bound: %d entries", cache.Len())
	}
}

// hit and miss counters are lifetime stats and must survive Clear
func TestCacheCounters(t *testing.T) {
	cache := NewResultCache(10)

	cache.Get("missing")
	cache.Get("missing")
	cache.Put("helo", suggestionsFor("hello"))
	cache.Get("helo")
	cache.Get("helo")
	cache.Get("helo")

	stats := cache.Stats()
	if stats["cacheHits"] != 3 {
		t.Errorf("Expected 3 hits, got %d", stats["cacheHits"])
	}
	if stats["cacheMisses"] != 2 {
		t.Errorf("Expected 2 misses, got %d", stats["cacheMisses"])
	}
	if stats["cacheCapacity"] != 10 {
		t.Errorf("Expected capacity 10, got %d", stats["cacheCapacity"])
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Clear should empty the cache, got %d entries", cache.Len())
	}
	stats = cache.Stats()
	if stats["cacheEntries"] != 0 {
		t.Errorf("Expected 0 entries after Clear, got %d", stats["cacheEntries"])
	}
	if stats["cacheHits"] != 3 || stats["cacheMisses"] != 2 {
		t.Errorf("Counters must survive Clear, got hits=%d misses=%d", stats["cacheHits"], stats["cacheMisses"])
	}

	// cleared keys insert fresh again
	cache.Put("helo", suggestionsFor("hello"))
	if _, ok := cache.Get("helo"); !ok {
		t.Error("Cache should accept entries after Clear")
	}
}

func TestCacheDefaultCapacity(t *testing.T) {
	cache := NewResultCache(0)
	if got := cache.Stats()["cacheCapacity"]; got != defaultCacheSize {
		t.Errorf("Expected default capacity %d, got %d", defaultCacheSize, got)
	}
}
