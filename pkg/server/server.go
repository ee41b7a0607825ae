package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spellserve/spellserve/pkg/config"
	"github.com/spellserve/spellserve/pkg/spell"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for spelling corrections
type Server struct {
	corrector spell.ICorrector
	cfg       *config.Config
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
}

// NewServer creates a correction server using stdin/stdout for IPC
func NewServer(corrector spell.ICorrector, cfg *config.Config) *Server {
	return NewServerWithIO(corrector, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a correction server on custom streams.
func NewServerWithIO(corrector spell.ICorrector, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		corrector: corrector,
		cfg:       cfg,
		dec:       msgpack.NewDecoder(r),
		enc:       msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting server.")

	// Signal that the server is ready
	s.sendResponse(StatusResponse{Status: "ready"})

	// incoming requests stdin
	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			// a corrupt msgpack stream cannot be resynced, bail out
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches an incoming request by op
func (s *Server) handleRequest(req Request) {
	switch req.Op {
	case "correct":
		s.handleCorrect(req)
	case "complete":
		s.handleComplete(req)
	case "stats":
		s.handleStats(req)
	case "clear":
		s.corrector.ClearCache()
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	case "ping":
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
	}
}

// sendResponse encodes the given response as msgpack onto the output stream.
func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(RequestError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

// handleCorrect processes a correction request. It validates the word,
// asks the corrector for ranked suggestions and sends them back with
// timing info. An optional limit trims the list, which the engine
// already caps at its own maximum.
func (s *Server) handleCorrect(req Request) {
	word := req.Word

	if word == "" {
		s.sendError(req.ID, "Missing 'w' parameter", 400)
		log.Debug("Word is empty in request")
		return
	}

	if len(word) > s.cfg.Server.MaxWordLen {
		s.sendError(req.ID, fmt.Sprintf("Word exceeds maximum length of %d characters", s.cfg.Server.MaxWordLen), 400)
		log.Debug("Word is too long in request")
		return
	}

	start := time.Now()
	suggestions := s.corrector.Corrections(word)
	elapsed := time.Since(start)

	limit := req.Limit
	if limit < 1 || limit > len(suggestions) {
		limit = len(suggestions)
	}

	result := make([]ResponseSuggestion, 0, limit)
	for _, sg := range suggestions[:limit] {
		result = append(result, ResponseSuggestion{
			Word:       sg.Word,
			Distance:   sg.Distance,
			Confidence: sg.Confidence,
		})
	}

	s.sendResponse(CorrectionResponse{
		ID:          req.ID,
		Suggestions: result,
		Count:       len(result),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleComplete processes a prefix completion request. Limit defaults
// to 10 and is capped by the configured maximum.
func (s *Server) handleComplete(req Request) {
	prefix := req.Word

	if prefix == "" {
		s.sendError(req.ID, "Missing 'w' parameter", 400)
		log.Debug("Prefix is empty in request")
		return
	}

	if len(prefix) > s.cfg.Server.MaxWordLen {
		s.sendError(req.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.cfg.Server.MaxWordLen), 400)
		log.Debug("Prefix is too long in request")
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	completions := s.corrector.Completions(prefix, limit)
	elapsed := time.Since(start)

	result := make([]CompletionSuggestion, 0, len(completions))
	for _, c := range completions {
		result = append(result, CompletionSuggestion{
			Word:  c.Word,
			Score: c.Score,
		})
	}

	s.sendResponse(CompletionResponse{
		ID:          req.ID,
		Suggestions: result,
		Count:       len(result),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleStats reports dictionary, index and cache counters.
func (s *Server) handleStats(req Request) {
	s.sendResponse(StatsResponse{
		ID:    req.ID,
		Stats: s.corrector.Stats(),
	})
}
