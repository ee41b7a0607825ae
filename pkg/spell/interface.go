// Package spell is the core, providing the BK-tree walks, confidence ranking and result caching for single token corrections.
package spell

// ICorrector defines the interface for correction engines
type ICorrector interface {
	// Corrections returns ranked suggestions for a misspelled word
	Corrections(word string) []Suggestion

	// Completions returns dictionary words starting with prefix, most frequent first
	Completions(prefix string, limit int) []Completion

	// Stats returns counters about the dictionary, index and cache
	Stats() map[string]int

	// ClearCache drops every cached result
	ClearCache()
}
