package server

import (
	"encoding/json"

	"vardecl/internal/diagfmt"
)

// Message is what clients send over /ws.
type Message struct {
	Type    string          `json:"type"` // "check", "tokenize", "ping"
	Payload json.RawMessage `json:"payload,omitempty"`
}

// SourcePayload carries the declaration text of check and tokenize requests.
type SourcePayload struct {
	Name   string `json:"name,omitempty"`
	Source string `json:"source"`
}

// Response is what the server sends back for every message.
type Response struct {
	Type    string `json:"type"` // "result", "tokens", "pong", "error"
	ID      string `json:"id"`
	Payload any    `json:"payload,omitempty"`
}

// ResultPayload answers a check request.
type ResultPayload struct {
	Accepted bool                 `json:"accepted"`
	Symbols  []diagfmt.SymbolJSON `json:"symbols,omitempty"`
	Error    *ErrorPayload        `json:"error,omitempty"`
}

// ErrorPayload describes a rejection. Before/Lexeme/After cut the source
// around the offending lexeme.
type ErrorPayload struct {
	Kind     string          `json:"kind"`
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Position uint32          `json:"position"`
	Length   uint32          `json:"length"`
	Before   string          `json:"before"`
	Lexeme   string          `json:"lexeme"`
	After    string          `json:"after"`
	Related  *RelatedPayload `json:"related,omitempty"`
}

type RelatedPayload struct {
	Position uint32 `json:"position"`
	Length   uint32 `json:"length"`
}

// ProblemPayload reports a malformed request.
type ProblemPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
