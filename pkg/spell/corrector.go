package spell

import (
	"math"
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/spellserve/spellserve/pkg/dictionary"
)

const (
	defaultDictionarySize  = 10000
	defaultMaxEditDistance = 2
	defaultCacheSize       = 1000

	maxSuggestions = 5

	freqWeight = 0.7
	distWeight = 0.3
)

// Suggestion is one ranked correction candidate.
type Suggestion struct {
	Word       string
	Distance   float64
	Confidence float64
}

// BuildListener receives the one-shot lifecycle signals while a
// Corrector is assembled. DictionaryLoaded always fires before
// IndexBuilt, each exactly once.
type BuildListener interface {
	DictionaryLoaded(words int)
	IndexBuilt(nodes int)
}

type noopListener struct{}

func (noopListener) DictionaryLoaded(int) {}
func (noopListener) IndexBuilt(int)       {}

// Options configures a Corrector. Zero values select the defaults.
type Options struct {
	DictionarySize  int
	MaxEditDistance int
	CacheSize       int
	Algorithm       string
	Listener        BuildListener
}

// Corrector owns the dictionary, the BK-tree index, the completion trie
// and the result cache. Everything except the cache is immutable once
// New returns, so a Corrector is safe for concurrent readers as long as
// the cache keeps its own lock (it does).
type Corrector struct {
	dict    *dictionary.Dictionary
	tree    *Tree
	trie    *patricia.Trie
	cache   *ResultCache
	maxDist float64
}

// New ingests the ranked word source into a dictionary, then builds the
// search index from the dictionary in rank order. The listener signals
// fire exactly once each, dictionary first.
func New(src dictionary.Source, opts Options) *Corrector {
	size := opts.DictionarySize
	if size < 1 {
		size = defaultDictionarySize
	}
	maxDist := opts.MaxEditDistance
	if maxDist < 1 {
		maxDist = defaultMaxEditDistance
	}
	cacheSize := opts.CacheSize
	if cacheSize < 1 {
		cacheSize = defaultCacheSize
	}
	listener := opts.Listener
	if listener == nil {
		listener = noopListener{}
	}

	dict := dictionary.Load(src, size)
	listener.DictionaryLoaded(dict.Len())

	tree := NewTree(MetricFor(opts.Algorithm))
	trie := patricia.NewTrie()
	for _, entry := range dict.Entries() {
		tree.Insert(entry.Word, entry.Score)
		trie.Insert(patricia.Prefix(entry.Word), entry.Score)
	}
	listener.IndexBuilt(tree.Len())

	return &Corrector{
		dict:    dict,
		tree:    tree,
		trie:    trie,
		cache:   NewResultCache(cacheSize),
		maxDist: float64(maxDist),
	}
}

// Corrections returns up to five suggestions for a single token, most
// confident first. Lookup order: cache, exact dictionary hit, index
// search. Exact hits come back as {word, 0, 1.0} and skip the cache.
func (c *Corrector) Corrections(word string) []Suggestion {
	query := strings.ToLower(word)

	if cached, ok := c.cache.Get(query); ok {
		return cached
	}
	if _, ok := c.dict.Score(query); ok {
		return []Suggestion{{Word: query, Distance: 0, Confidence: 1.0}}
	}

	matches := c.tree.Search(query, c.maxDist)
	ranked := c.rank(query, matches)
	c.cache.Put(query, ranked)
	return ranked
}

// rank blends corpus frequency with string proximity and keeps the top
// five. distScore is left unclamped: a distance beyond the longer
// string's length drives it negative, which only pushes the candidate
// further down.
func (c *Corrector) rank(query string, matches []Match) []Suggestion {
	if len(matches) == 0 {
		return nil
	}

	maxFreq := c.dict.MaxScore()
	suggestions := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		var freqScore float64
		if maxFreq > 0 {
			freqScore = math.Log(1+m.Freq) / math.Log(1+maxFreq)
		}
		longest := len(query)
		if len(m.Word) > longest {
			longest = len(m.Word)
		}
		distScore := 1 - m.Distance/float64(longest)

		suggestions = append(suggestions, Suggestion{
			Word:       m.Word,
			Distance:   m.Distance,
			Confidence: freqWeight*freqScore + distWeight*distScore,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		return suggestions[i].Word < suggestions[j].Word
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// ClearCache drops every cached result.
func (c *Corrector) ClearCache() {
	c.cache.Clear()
}

// Stats returns counters about the dictionary, the index and the cache.
func (c *Corrector) Stats() map[string]int {
	stats := map[string]int{
		"dictWords":    c.dict.Len(),
		"indexNodes":   c.tree.Len(),
		"indexDropped": c.tree.Dropped(),
	}
	for k, v := range c.cache.Stats() {
		stats[k] = v
	}
	return stats
}
