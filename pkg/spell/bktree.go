package spell

import (
	"github.com/charmbracelet/log"
)

// Match is a raw index hit before ranking.
type Match struct {
	Word     string
	Distance float64
	Freq     float64
}

// node children are keyed by the exact distance computed at insertion
// time. Keys always come from the same deterministic metric, so plain
// float equality on the map key is safe.
type node struct {
	word     string
	freq     float64
	children map[float64]*node
}

// Tree is a BK-tree over dictionary words. The first inserted word
// becomes the root; every other node hangs under exactly one parent at
// the branch key equal to its distance to that parent. Built once,
// read-only afterwards.
type Tree struct {
	root    *node
	metric  MetricFunc
	size    int
	dropped int
}

// NewTree returns an empty tree keyed by metric. A nil metric selects
// the default sift scan.
func NewTree(metric MetricFunc) *Tree {
	if metric == nil {
		metric = Distance
	}
	return &Tree{metric: metric}
}

// Insert walks from the root to the insertion point, descending through
// the child at the exact computed distance until none exists. A word at
// distance 0 to any visited node is dropped as a duplicate collision
// and reported with a false return.
func (t *Tree) Insert(word string, freq float64) bool {
	if t.root == nil {
		t.root = &node{word: word, freq: freq}
		t.size++
		return true
	}

	cur := t.root
	for {
		d := t.metric(cur.word, word)
		if d == 0 {
			t.dropped++
			log.Debugf("Dropped '%s': zero distance to '%s'", word, cur.word)
			return false
		}
		child, ok := cur.children[d]
		if !ok {
			if cur.children == nil {
				cur.children = make(map[float64]*node)
			}
			cur.children[d] = &node{word: word, freq: freq}
			t.size++
			return true
		}
		cur = child
	}
}

// Search collects every word within maxDistance of query. Traversal is a
// breadth-first queue walk; a child is enqueued only when its branch key
// lies in [d-maxDistance, d+maxDistance], the usual BK pruning rule.
// With the approximate metric that rule is a heuristic, so recall is
// best-effort. An empty tree yields an empty result.
func (t *Tree) Search(query string, maxDistance float64) []Match {
	if t.root == nil {
		return nil
	}

	var matches []Match
	queue := []*node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		d := t.metric(n.word, query)
		if d <= maxDistance {
			matches = append(matches, Match{Word: n.word, Distance: d, Freq: n.freq})
		}
		for key, child := range n.children {
			if key >= d-maxDistance && key <= d+maxDistance {
				queue = append(queue, child)
			}
		}
	}
	return matches
}

// Len returns the number of stored nodes, root included.
func (t *Tree) Len() int {
	return t.size
}

// Dropped returns how many insertions were discarded as duplicates.
func (t *Tree) Dropped() int {
	return t.dropped
}
