package spell

import (
	"github.com/charmbracelet/log"
	"github.com/hbollon/go-edlib"
)

// maxOffset bounds the realignment lookahead window in Distance.
const maxOffset = 5

// MetricFunc computes a dissimilarity between two strings.
// The index keys children by the exact values a metric produces, so a
// metric must be deterministic for the lifetime of a tree.
type MetricFunc func(a, b string) float64

// Distance is a fast approximate string distance (a sift style scan).
// A single left to right pass counts aligned characters; on a mismatch it
// looks up to maxOffset positions ahead in either string for a character
// that realigns with the other string's cursor. The result is
// (len(a)+len(b))/2 - matched, so half steps are possible and the value
// is not necessarily an integer.
//
// This is not a true metric: the triangle inequality is not guaranteed.
func Distance(a, b string) float64 {
	if len(a) == 0 {
		return float64(len(b))
	}
	if len(b) == 0 {
		return float64(len(a))
	}

	var c, offset1, offset2, lcs int
	for c+offset1 < len(a) && c+offset2 < len(b) {
		if a[c+offset1] == b[c+offset2] {
			lcs++
		} else {
			offset1 = 0
			offset2 = 0
			for i := 0; i < maxOffset; i++ {
				if c+i < len(a) && a[c+i] == b[c] {
					offset1 = i
					break
				}
				if c+i < len(b) && a[c] == b[c+i] {
					offset2 = i
					break
				}
			}
		}
		c++
	}
	return float64(len(a)+len(b))/2 - float64(lcs)
}

// MetricFor maps a distance_algorithm config value to its metric.
// The exact metrics come from go-edlib and make the BK-tree pruning
// exhaustive instead of best-effort, at the cost of slower comparisons.
// Unknown names fall back to the default sift scan.
func MetricFor(name string) MetricFunc {
	switch name {
	case "", "sift":
		return Distance
	case "levenshtein":
		return func(a, b string) float64 {
			return float64(edlib.LevenshteinDistance(a, b))
		}
	case "damerau":
		return func(a, b string) float64 {
			return float64(edlib.DamerauLevenshteinDistance(a, b))
		}
	case "osa":
		return func(a, b string) float64 {
			return float64(edlib.OSADamerauLevenshteinDistance(a, b))
		}
	default:
		log.Warnf("Unknown distance algorithm '%s', using sift", name)
		return Distance
	}
}
