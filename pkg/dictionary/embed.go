package dictionary

import (
	"bytes"
	_ "embed"
)

//go:embed data/ranked.txt
var defaultWordList []byte

// DefaultSource serves the compact embedded English ranking, so the
// binary and the tests work without an external word list.
type DefaultSource struct{}

func (DefaultSource) RankedWords(limit int) ([]string, error) {
	return readRanked(bytes.NewReader(defaultWordList), limit)
}
