package dictionary

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// BoostFactor scales the top source score for boost terms, letting
// technical vocabulary outrank common words of the same edit distance.
const BoostFactor = 1.2

// boostTerms is the fixed technical vocabulary overlaid on every loaded
// dictionary. Terms missing from the source are appended after it, in
// this order.
var boostTerms = []string{
	"algorithm", "async", "await", "boolean", "cache", "compile",
	"debug", "function", "git", "github", "javascript", "json",
	"kernel", "linux", "mutex", "python", "query", "regex",
	"runtime", "server", "string", "syntax", "thread", "typescript",
	"variable",
}

var boostSet = mapset.NewSet(boostTerms...)

// IsBoostTerm reports whether word is on the fixed boost list.
func IsBoostTerm(word string) bool {
	return boostSet.Contains(word)
}
