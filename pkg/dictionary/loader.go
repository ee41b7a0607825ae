// Package dictionary builds the frequency ranked word map the engine
// searches over. Words come from a Source in popularity order; the
// loader assigns descending positional scores and overlays the fixed
// boost list on top.
package dictionary

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Entry pairs a dictionary word with its frequency score.
type Entry struct {
	Word  string
	Score float64
}

// Dictionary maps words to frequency scores. Entries keep their load
// order: source rank order first, then boost terms the source was
// missing. Immutable once Load returns.
type Dictionary struct {
	entries  []Entry
	scores   map[string]float64
	maxScore float64
}

// Load ingests up to size ranked words from src. Word i gets score N-i
// where N is the number of words supplied; boost terms get
// BoostFactor*N instead, overriding their positional score. Tokens that
// are not two or more lowercase ASCII letters after case folding are
// skipped. A failing source degrades to an empty dictionary with a
// warning, never an error.
func Load(src Source, size int) *Dictionary {
	d := &Dictionary{scores: make(map[string]float64)}

	words, err := src.RankedWords(size)
	if err != nil {
		log.Warnf("Word source failed: %v. Continuing with an empty dictionary.", err)
		return d
	}
	if len(words) == 0 {
		return d
	}

	total := float64(len(words))
	boostScore := BoostFactor * total

	rank := 0
	skipped := 0
	for _, raw := range words {
		word := strings.ToLower(strings.TrimSpace(raw))
		if !validWord(word) {
			skipped++
			continue
		}
		if _, seen := d.scores[word]; seen {
			skipped++
			continue
		}
		score := total - float64(rank)
		if boostSet.Contains(word) {
			score = boostScore
		}
		d.add(word, score)
		rank++
	}
	for _, term := range boostTerms {
		if _, seen := d.scores[term]; seen {
			continue
		}
		d.add(term, boostScore)
	}

	if skipped > 0 {
		log.Debugf("Skipped %d invalid or duplicate source words", skipped)
	}
	return d
}

func (d *Dictionary) add(word string, score float64) {
	d.entries = append(d.entries, Entry{Word: word, Score: score})
	d.scores[word] = score
	if score > d.maxScore {
		d.maxScore = score
	}
}

// validWord enforces the entry invariant: at least two characters, all
// lowercase ASCII letters.
func validWord(word string) bool {
	if len(word) < 2 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

// Score returns the frequency score for word, if present.
func (d *Dictionary) Score(word string) (float64, bool) {
	score, ok := d.scores[word]
	return score, ok
}

// Entries returns the loaded entries in load order. Callers must treat
// the slice as read-only.
func (d *Dictionary) Entries() []Entry {
	return d.entries
}

// Len returns the number of loaded words.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// MaxScore returns the largest score assigned at load time. Ranking
// normalizes frequency against it.
func (d *Dictionary) MaxScore() float64 {
	return d.maxScore
}
