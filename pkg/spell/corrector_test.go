package spell

import (
	"errors"
	"testing"

	"github.com/spellserve/spellserve/pkg/dictionary"
)

// four real words, "hello" most frequent
var testWords = dictionary.StaticSource{"hello", "world", "words", "help"}

type failingSource struct{}

func (failingSource) RankedWords(int) ([]string, error) {
	return nil, errors.New("source is down")
}

func TestCorrectionsExactHit(t *testing.T) {
	corrector := New(testWords, Options{})

	testCases := []struct {
		input       string
		description string
	}{
		{"hello", "Exact match"},
		{"Hello", "Case insensitive match"},
		{"WORLD", "Uppercase word"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			suggestions := corrector.Corrections(tc.input)
			if len(suggestions) != 1 {
				t.Fatalf("Exact hit should return one suggestion, got %d", len(suggestions))
			}
			s := suggestions[0]
			if s.Distance != 0 {
				t.Errorf("Exact hit distance: expected 0, got %v", s.Distance)
			}
			if s.Confidence != 1.0 {
				t.Errorf("Exact hit confidence: expected 1.0, got %v", s.Confidence)
			}
		})
	}

	// exact hits bypass the cache entirely
	if entries := corrector.Stats()["cacheEntries"]; entries != 0 {
		t.Errorf("Exact hits must not be cached, found %d entries", entries)
	}
}

func TestCorrectionsRanking(t *testing.T) {
	corrector := New(testWords, Options{})

	suggestions := corrector.Corrections("helo")
	if len(suggestions) != 2 {
		t.Fatalf("Expected hello and help as candidates, got %v", suggestions)
	}

	// "hello" is further away (1.5 vs 1.0) but far more frequent, the
	// 0.7 frequency weight has to put it on top
	if suggestions[0].Word != "hello" {
		t.Errorf("Expected 'hello' first, got %q", suggestions[0].Word)
	}
	if suggestions[0].Distance != 1.5 {
		t.Errorf("Distance for 'hello': expected 1.5, got %v", suggestions[0].Distance)
	}
	if suggestions[1].Word != "help" {
		t.Errorf("Expected 'help' second, got %q", suggestions[1].Word)
	}
	if suggestions[1].Distance != 1.0 {
		t.Errorf("Distance for 'help': expected 1.0, got %v", suggestions[1].Distance)
	}

	if suggestions[0].Confidence <= suggestions[1].Confidence {
		t.Errorf("Confidences out of order: %v then %v",
			suggestions[0].Confidence, suggestions[1].Confidence)
	}
	if c := suggestions[0].Confidence; c < 0.8 || c > 0.9 {
		t.Errorf("Confidence for 'hello' out of expected band: %v", c)
	}
}

func TestCorrectionsBeyondMaxDistance(t *testing.T) {
	corrector := New(testWords, Options{})

	// no dictionary word sits within distance 2 of this
	if suggestions := corrector.Corrections("qqqqqq"); len(suggestions) != 0 {
		t.Errorf("Expected no suggestions, got %v", suggestions)
	}
}

// ten candidates all at distance 1, the result must trim to five and
// follow frequency order exactly
func TestCorrectionsLimit(t *testing.T) {
	source := dictionary.StaticSource{
		"get", "set", "let", "bet", "met",
		"net", "pet", "vet", "wet", "jet",
	}
	corrector := New(source, Options{MaxEditDistance: 1})

	suggestions := corrector.Corrections("cet")
	if len(suggestions) != 5 {
		t.Fatalf("Expected 5 suggestions, got %d", len(suggestions))
	}

	wantOrder := []string{"get", "set", "let", "bet", "met"}
	for i, want := range wantOrder {
		if suggestions[i].Word != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, suggestions[i].Word)
		}
	}
	for i := 1; i < len(suggestions); i++ {
		if suggestions[i-1].Confidence <= suggestions[i].Confidence {
			t.Errorf("Confidence not strictly descending at %d: %v", i, suggestions)
		}
	}
}

func TestCorrectionsEmptyDictionary(t *testing.T) {
	corrector := New(dictionary.StaticSource{}, Options{})

	if suggestions := corrector.Corrections("hello"); len(suggestions) != 0 {
		t.Errorf("Empty dictionary should yield nothing, got %v", suggestions)
	}
	if words := corrector.Stats()["dictWords"]; words != 0 {
		t.Errorf("Expected an empty dictionary, got %d words", words)
	}
}

// a broken source degrades to an empty engine instead of failing
func TestCorrectionsSourceError(t *testing.T) {
	corrector := New(failingSource{}, Options{})

	if suggestions := corrector.Corrections("hello"); len(suggestions) != 0 {
		t.Errorf("Expected no suggestions from a failed source, got %v", suggestions)
	}
	if nodes := corrector.Stats()["indexNodes"]; nodes != 0 {
		t.Errorf("Expected an empty index, got %d nodes", nodes)
	}
}

func TestCorrectionsCached(t *testing.T) {
	corrector := New(testWords, Options{})

	first := corrector.Corrections("helo")
	second := corrector.Corrections("helo")

	if len(first) != len(second) {
		t.Fatalf("Cached result differs: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Cached result differs at %d: %v vs %v", i, first[i], second[i])
		}
	}

	stats := corrector.Stats()
	if stats["cacheEntries"] != 1 {
		t.Errorf("Expected one cached query, got %d", stats["cacheEntries"])
	}
	if stats["cacheHits"] < 1 {
		t.Errorf("Second lookup should hit the cache, hits=%d", stats["cacheHits"])
	}

	corrector.ClearCache()
	if corrector.Stats()["cacheEntries"] != 0 {
		t.Error("ClearCache should drop the entry")
	}
}

type recordingListener struct {
	events []string
	words  int
	nodes  int
}

func (r *recordingListener) DictionaryLoaded(words int) {
	r.events = append(r.events, "dictionary")
	r.words = words
}

func (r *recordingListener) IndexBuilt(nodes int) {
	r.events = append(r.events, "index")
	r.nodes = nodes
}

// the two build signals fire once each, dictionary first, and carry the
// same counts the engine reports afterwards
func TestBuildListener(t *testing.T) {
	listener := &recordingListener{}
	corrector := New(testWords, Options{Listener: listener})

	if len(listener.events) != 2 || listener.events[0] != "dictionary" || listener.events[1] != "index" {
		t.Fatalf("Expected [dictionary index], got %v", listener.events)
	}

	stats := corrector.Stats()
	if listener.words != stats["dictWords"] {
		t.Errorf("Listener words=%d, stats report %d", listener.words, stats["dictWords"])
	}
	if listener.nodes != stats["indexNodes"] {
		t.Errorf("Listener nodes=%d, stats report %d", listener.nodes, stats["indexNodes"])
	}
	if listener.words == 0 || listener.nodes == 0 {
		t.Errorf("Counts should be nonzero, got words=%d nodes=%d", listener.words, listener.nodes)
	}
}

func TestCompletions(t *testing.T) {
	corrector := New(testWords, Options{})

	completions := corrector.Completions("hel", 10)
	if len(completions) != 2 {
		t.Fatalf("Expected hello and help, got %v", completions)
	}
	if completions[0].Word != "hello" || completions[1].Word != "help" {
		t.Errorf("Expected frequency order [hello help], got %v", completions)
	}
	if completions[0].Score <= completions[1].Score {
		t.Errorf("Scores out of order: %v", completions)
	}
}

// a full word never suggests itself back
func TestCompletionsExcludeExact(t *testing.T) {
	corrector := New(testWords, Options{})

	if completions := corrector.Completions("hello", 10); len(completions) != 0 {
		t.Errorf("Expected no completions for a full word, got %v", completions)
	}
}

func TestCompletionsLimit(t *testing.T) {
	corrector := New(testWords, Options{})

	completions := corrector.Completions("wor", 1)
	if len(completions) != 1 {
		t.Fatalf("Expected the limit to trim to 1, got %v", completions)
	}
	// "world" outranks "words" in the source
	if completions[0].Word != "world" {
		t.Errorf("Expected 'world', got %q", completions[0].Word)
	}
}

// the boost overlay supplies technical terms the source never listed
func TestCompletionsBoostTerms(t *testing.T) {
	corrector := New(testWords, Options{})

	completions := corrector.Completions("git", 5)
	if len(completions) != 1 || completions[0].Word != "github" {
		t.Fatalf("Expected the boosted 'github', got %v", completions)
	}
	if completions[0].Score <= 4 {
		t.Errorf("Boost score should exceed the top source score, got %v", completions[0].Score)
	}
}

func TestStatsKeys(t *testing.T) {
	corrector := New(testWords, Options{})

	stats := corrector.Stats()
	for _, key := range []string{
		"dictWords", "indexNodes", "indexDropped",
		"cacheEntries", "cacheCapacity", "cacheHits", "cacheMisses",
	} {
		if _, ok := stats[key]; !ok {
			t.Errorf("Stats missing %q: %v", key, stats)
		}
	}
	if stats["indexDropped"] != 0 {
		t.Errorf("Distinct words should never drop, got %d", stats["indexDropped"])
	}
}

func BenchmarkCorrections(b *testing.B) {
	corrector := New(dictionary.DefaultSource{}, Options{})
	inputs := []string{"helo", "wrld", "funcion", "algoritm", "chche"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		corrector.Corrections(inputs[i%len(inputs)])
	}
}

func BenchmarkCorrectionsUncached(b *testing.B) {
	corrector := New(dictionary.DefaultSource{}, Options{CacheSize: 1})
	inputs := []string{"helo", "wrld", "funcion", "algoritm", "chche"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		corrector.Corrections(inputs[i%len(inputs)])
	}
}
