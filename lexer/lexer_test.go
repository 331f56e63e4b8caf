package lexer

import (
	"strings"

	"github.com/lukeod/lextok/diag"
	"github.com/lukeod/lextok/source"
	"github.com/lukeod/lextok/token"
)

// lexAll tokenizes text with the given options and returns the resulting
// tokens (including the final END) along with every diagnostic recorded.
func lexAll(text string, opts ...Option) ([]token.Token, []diag.Diagnostic) {
	sink := &diag.CollectingSink{}
	tok := New([]byte(text), nil, sink, opts...)
	tokens := tok.TokenizeAll()
	tok.Fini()
	return tokens, sink.Diagnostics
}

// lexAllChunked is like lexAll but feeds text through a ReaderSource in
// small chunks, exercising cross-chunk-boundary behavior (refill, BackUp,
// recording across a refill).
func lexAllChunked(text string, chunkSize int, opts ...Option) ([]token.Token, []diag.Diagnostic) {
	sink := &diag.CollectingSink{}
	stream := source.NewReaderSource(strings.NewReader(text), chunkSize)
	tok := New(nil, stream, sink, opts...)
	tokens := tok.TokenizeAll()
	tok.Fini()
	return tokens, sink.Diagnostics
}
