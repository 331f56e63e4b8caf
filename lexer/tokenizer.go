// Package lexer implements the streaming scanner for a C-family schema
// description language: it turns a chunked byte source into a sequence of
// tagged Token values with precise line/column spans, and provides the
// companion literal-decoding routines that turn a token's literal text into
// its semantic value.
package lexer

import (
	"strings"

	"github.com/lukeod/lextok/diag"
	"github.com/lukeod/lextok/source"
	"github.com/lukeod/lextok/token"
)

// Tokenizer is the scanner state machine. It is not safe for concurrent use.
type Tokenizer struct {
	cur  *cursor
	sink diag.Sink
	opts Options

	current  token.Token
	previous token.Token

	text strings.Builder
}

// New constructs a Tokenizer. initial is an optional in-memory byte span
// consumed before stream; stream is an optional chunked source consumed
// after it. At least one of initial or stream should be non-empty/non-nil,
// though a Tokenizer over no bytes at all is a valid (immediately
// exhausted) one.
//
// diag.Sink receives every diagnostic the scanner and sub-consumers emit;
// it must not be nil.
func New(initial []byte, stream source.ChunkSource, sink diag.Sink, opts ...Option) *Tokenizer {
	var sources []source.ChunkSource
	if len(initial) > 0 {
		sources = append(sources, source.NewBytesSource(initial))
	}
	if stream != nil {
		sources = append(sources, stream)
	}

	var combined source.ChunkSource
	switch len(sources) {
	case 0:
		combined = source.NewBytesSource(nil)
	case 1:
		combined = sources[0]
	default:
		combined = source.Chain(sources...)
	}

	t := &Tokenizer{
		cur:  newCursor(combined),
		sink: sink,
		opts: NewOptions(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.current = token.Token{Type: token.START, Line: t.cur.line, Column: t.cur.column, EndColumn: t.cur.column}
	return t
}

// Fini tears the tokenizer down, returning any unread suffix of the final
// chunk to the underlying stream source.
func (t *Tokenizer) Fini() {
	t.cur.tearDown()
}

// Current returns the token produced by the most recent Next call (or the
// START token before the first call).
func (t *Tokenizer) Current() token.Token { return t.current }

// Previous returns the value Current held immediately before the most
// recent Next call.
func (t *Tokenizer) Previous() token.Token { return t.previous }

// Err returns the first hard read error encountered from the underlying
// source, if any. Ordinary EOF is not an error.
func (t *Tokenizer) Err() error { return t.cur.err }

// TokenizeAll drains Next into a slice of every token up to and including
// END. Diagnostics recorded during the drain are not returned; they stay on
// the Sink passed to New. It is a convenience for callers that don't need
// streaming behavior -- tests and cmd/tokendump both use it instead of
// hand-rolling the loop.
func (t *Tokenizer) TokenizeAll() []token.Token {
	var tokens []token.Token
	for {
		more := t.Next()
		tokens = append(tokens, t.Current())
		if !more {
			return tokens
		}
	}
}
