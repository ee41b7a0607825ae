package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source supplies ranked words to the loader.
type Source interface {
	// RankedWords returns up to limit words in descending popularity
	// order, most frequent first.
	RankedWords(limit int) ([]string, error)
}

// FileSource reads a ranked word list from disk: one word per line,
// most frequent first. A second whitespace separated column (a corpus
// count) is tolerated and ignored, position already encodes the rank.
// Blank lines and '#' comments are skipped.
type FileSource struct {
	Path string
}

func (s FileSource) RankedWords(limit int) ([]string, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer file.Close()
	return readRanked(file, limit)
}

// StaticSource serves a fixed in-memory ranking.
type StaticSource []string

func (s StaticSource) RankedWords(limit int) ([]string, error) {
	if limit > 0 && len(s) > limit {
		return s[:limit], nil
	}
	return s, nil
}

// readRanked pulls up to limit word lines from r.
func readRanked(r io.Reader, limit int) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)[0])
		if limit > 0 && len(words) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return words, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}
