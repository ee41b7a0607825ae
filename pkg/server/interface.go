/*
Package server implements msgpack IPC for spelling correction services.

The server package provides a minimal interface for word correction and prefix
completion using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports correction requests,
prefix completions, engine statistics and cache management ops.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout.
Each message contains an ID field, an op field and other fields based on the
operation type.

Correction requests use mainly this structure:

	{"id": "req_001", "op": "correct", "w": "helo", "l": 5}

The server responds with suggestions ranked by confidence:

	{"id": "req_001", "s": [{"w": "hello", "d": 1.5, "cf": 0.85}, {"w": "help", "d": 1.0, "cf": 0.50}], "c": 2, "t": 145}

Completion requests share the same envelope with op "complete":

	{"id": "req_002", "op": "complete", "w": "hel", "l": 10}

Cache and engine management ops take no extra fields:

	{"id": "adm_001", "op": "stats"}
	{"id": "adm_002", "op": "clear"}

Response structures include status information and error details when an op fails.

# Message Types

Request carries every incoming op. It includes a word string and an optional
limit for result count.
CorrectionResponse contains suggestion arrays with word strings, raw distances
and confidence scores, plus timing data in microseconds.
CompletionResponse carries prefix matches with their dictionary scores.
StatsResponse reports dictionary, index and cache counters.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing
latency by ~40 to 70% in most cases.

you can find more about the lookup behavior and ranking in `pkg/spell`
*/
package server

// Request - minimal request envelope for all ops
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Word  string `msgpack:"w,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// ResponseSuggestion - minimal correction entry
type ResponseSuggestion struct {
	Word       string  `msgpack:"w"`
	Distance   float64 `msgpack:"d"`
	Confidence float64 `msgpack:"cf"`
}

// CorrectionResponse - correction response
type CorrectionResponse struct {
	ID          string               `msgpack:"id"`
	Suggestions []ResponseSuggestion `msgpack:"s"`
	Count       int                  `msgpack:"c"`
	TimeTaken   int64                `msgpack:"t"`
}

// CompletionSuggestion - minimal completion entry
type CompletionSuggestion struct {
	Word  string  `msgpack:"w"`
	Score float64 `msgpack:"r"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// StatsResponse - engine counters response
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// StatusResponse - status signal, also sent once on startup
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// RequestError holds basic error information for failed requests
type RequestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
