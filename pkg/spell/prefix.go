package spell

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Completion is one prefix completion candidate.
type Completion struct {
	Word  string
	Score float64
}

// Completions returns dictionary words beginning with prefix, most
// frequent first, truncated to limit. The prefix itself is excluded so
// typing a full word never suggests it back.
func (c *Corrector) Completions(prefix string, limit int) []Completion {
	lowerPrefix := strings.ToLower(prefix)

	var completions []Completion
	err := c.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == lowerPrefix {
			return nil
		}
		score, ok := item.(float64)
		if !ok {
			log.Errorf("Unknown item type %T for word %s", item, p)
			return nil
		}
		completions = append(completions, Completion{Word: word, Score: score})
		return nil
	})
	if err != nil {
		log.Errorf("Visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(completions, func(i, j int) bool {
		if completions[i].Score != completions[j].Score {
			return completions[i].Score > completions[j].Score
		}
		return completions[i].Word < completions[j].Word
	})
	if limit > 0 && len(completions) > limit {
		completions = completions[:limit]
	}
	return completions
}
