// Package source defines the chunked, zero-copy byte source the tokenizer
// reads from, plus two small collaborator implementations: one for an
// in-memory byte slice and one wrapping an io.Reader.
package source

// ChunkSource is a pull-style chunked byte source. Next returns a pointer
// into the source's own buffer for the next readable window; an empty chunk
// with a nil error means EOF. BackUp ungets the last n bytes of the most
// recently returned chunk, so a caller that read past a point it no longer
// needs (the tokenizer's Fini, handing back an unconsumed suffix) can return
// them to the source for whoever reads next.
//
// A ChunkSource is used by exactly one tokenizer at a time; it is not safe
// for concurrent use.
type ChunkSource interface {
	// Next returns the next chunk of the stream. A zero-length chunk with a
	// nil error signals EOF. Once EOF or a non-nil error has been returned,
	// subsequent calls must keep returning EOF.
	Next() ([]byte, error)

	// BackUp ungets the last n bytes of the chunk most recently returned by
	// Next, so that they are returned again (as a prefix of some future
	// chunk) by a subsequent Next call. n must not exceed the length of that
	// chunk; implementations may clamp rather than panic.
	BackUp(n int)
}
