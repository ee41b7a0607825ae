// Package cli handles cmd line input and corrections for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spellserve/spellserve/internal/utils"
	"github.com/spellserve/spellserve/pkg/dictionary"
	"github.com/spellserve/spellserve/pkg/spell"
)

var (
	wordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	boostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// InputHandler processes user input from stdin, providing
// corrections. It accepts flags to control behavior such as
// maximum word length, suggestion limits, and filtering options.
type InputHandler struct {
	corrector    spell.ICorrector
	maxWordLen   int
	suggestLimit int
	requestCount int
	noFilter     bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(corrector spell.ICorrector, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		corrector:    corrector,
		maxWordLen:   maxLength,
		suggestLimit: limit,
		noFilter:     noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and passes
// the trimmed input to handleWord() or, for lines starting with a slash,
// to handleCommand(). Loop terminates on /exit or a stdin read error.
func (h *InputHandler) Start() error {
	log.Print("SpellServe CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to check its spelling (/help for commands, Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if !h.handleCommand(line) {
				return nil
			}
			continue
		}
		h.handleWord(line)
	}
}

// handleCommand runs a slash command. Returns false when the loop should stop.
func (h *InputHandler) handleCommand(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case "/help":
		h.showHelp()
	case "/check":
		if arg == "" {
			log.Errorf("Usage: /check <word>")
			return true
		}
		h.handleWord(arg)
	case "/complete":
		if arg == "" {
			log.Errorf("Usage: /complete <prefix>")
			return true
		}
		h.handleComplete(arg)
	case "/stats":
		h.showStats()
	case "/clear":
		h.corrector.ClearCache()
		log.Print("Cache cleared")
	case "/exit":
		return false
	default:
		log.Errorf("Unknown command: %s (try /help)", cmd)
	}
	return true
}

// handleWord processes a single word to generate corrections.
// It validates the word's length and content, then asks the corrector
// for suggestions. Results are formatted and printed to the log.
func (h *InputHandler) handleWord(word string) {
	h.requestCount++

	if len(word) > h.maxWordLen {
		log.Errorf("Word too long: %s", word)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidInput(word) {
			log.Warnf("No corrections for '%s' (filtered out)", word)
			return
		}
	} else {
		log.Debug("Input filtering disabled - allowing all inputs")
	}

	start := time.Now()
	suggestions := h.corrector.Corrections(word)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	if len(suggestions) == 0 {
		log.Warnf("No corrections found for '%s'", word)
		return
	}

	if suggestions[0].Distance == 0 {
		log.Printf("'%s' is spelled correctly", wordStyle.Render(suggestions[0].Word))
		return
	}

	if h.suggestLimit > 0 && len(suggestions) > h.suggestLimit {
		suggestions = suggestions[:h.suggestLimit]
	}

	log.Printf("Found %d corrections for '%s':", len(suggestions), word)
	for i, s := range suggestions {
		clWord := wordStyle.Render(s.Word)
		if dictionary.IsBoostTerm(s.Word) {
			clWord = boostStyle.Render(s.Word)
		}
		log.Printf("%2d. %-40s (dist: %.1f, conf: %s)", i+1, clWord, s.Distance, formatConfidence(s.Confidence))
	}
}

// handleComplete lists dictionary words starting with the given prefix.
func (h *InputHandler) handleComplete(prefix string) {
	h.requestCount++

	if len(prefix) > h.maxWordLen {
		log.Errorf("Prefix too long: %s", prefix)
		return
	}

	start := time.Now()
	completions := h.corrector.Completions(prefix, h.suggestLimit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(completions) == 0 {
		log.Warnf("No completions found for prefix '%s'", prefix)
		return
	}

	log.Printf("Found %d completions for prefix '%s':", len(completions), prefix)
	for i, c := range completions {
		fmtScore := utils.FormatWithCommas(int(c.Score))
		log.Printf("%2d. %-40s (score: %8s)", i+1, wordStyle.Render(c.Word), fmtScore)
	}
}

// showStats prints engine counters in a stable order.
func (h *InputHandler) showStats() {
	stats := h.corrector.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	log.Printf("Engine stats after %d requests:", h.requestCount)
	for _, k := range keys {
		log.Printf("  %-16s %s", k, utils.FormatWithCommas(stats[k]))
	}
}

func (h *InputHandler) showHelp() {
	log.Print("/check <word>      check spelling of a word")
	log.Print("/complete <prefix> list words starting with a prefix")
	log.Print("/stats             show engine counters")
	log.Print("/clear             drop cached results")
	log.Print("/exit              leave the CLI")
	log.Print("typing a bare word is the same as /check")
}

// formatConfidence renders a confidence score as a percentage
func formatConfidence(c float64) string {
	return fmt.Sprintf("%3.0f%%", c*100)
}
