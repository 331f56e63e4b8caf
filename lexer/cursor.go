package lexer

import (
	"strings"

	"github.com/lukeod/lextok/source"
)

const tabWidth = 8

// cursor is the buffered stream reader: it owns the one-byte lookahead, the
// current buffer window, the read-error latch, and the line/column counters.
// It refills from a source.ChunkSource on exhaustion, and optionally
// duplicates consumed bytes into a recording target across refills.
type cursor struct {
	src source.ChunkSource

	buf []byte
	pos int

	cur byte
	eof bool
	err error

	line   int
	column int

	recording   bool
	recordTo    *strings.Builder
	recordStart int
}

func newCursor(src source.ChunkSource) *cursor {
	c := &cursor{src: src}
	c.refresh()
	return c
}

// nextChar consumes the current byte, advances the position and line/column
// counters (honoring tab stops), and refills the buffer if it has been
// exhausted. It is a no-op once eof is latched.
func (c *cursor) nextChar() {
	if c.eof {
		return
	}
	b := c.cur
	c.pos++
	switch b {
	case '\n':
		c.line++
		c.column = 0
	case '\t':
		c.column = (c.column/tabWidth + 1) * tabWidth
	default:
		c.column++
	}
	if c.pos >= len(c.buf) {
		c.refresh()
		return
	}
	c.cur = c.buf[c.pos]
}

// refresh flushes any live recording up to the end of the current buffer,
// then pulls the next chunk from the source. Once eof is latched, refresh is
// a no-op (read_error stays latched).
func (c *cursor) refresh() {
	if c.eof {
		return
	}
	if c.recording && c.recordTo != nil && c.recordStart < len(c.buf) {
		c.recordTo.Write(c.buf[c.recordStart:len(c.buf)])
	}
	c.recordStart = 0

	chunk, err := c.src.Next()
	if err != nil {
		c.err = err
		c.eof = true
		c.buf, c.pos, c.cur = nil, 0, 0
		return
	}
	if len(chunk) == 0 {
		c.eof = true
		c.buf, c.pos, c.cur = nil, 0, 0
		return
	}
	c.buf = chunk
	c.pos = 0
	c.cur = chunk[0]
}

// startRecord begins duplicating every byte consumed from this point onward
// into target, until stopRecord is called. Recording surviving a refill is
// handled by refresh flushing buf[recordStart:] before swapping buffers.
func (c *cursor) startRecord(target *strings.Builder) {
	c.recording = true
	c.recordTo = target
	c.recordStart = c.pos
}

// stopRecord flushes whatever has been consumed since the live recordStart
// (within the current buffer) and ends recording.
func (c *cursor) stopRecord() {
	if c.recording && c.recordTo != nil {
		end := c.pos
		if end > len(c.buf) {
			end = len(c.buf)
		}
		if c.recordStart < end {
			c.recordTo.Write(c.buf[c.recordStart:end])
		}
	}
	c.recording = false
	c.recordTo = nil
}

// tearDown returns any unread suffix of the current buffer to the source, so
// a caller that resumes reading the same stream picks up at byte accuracy.
func (c *cursor) tearDown() {
	if !c.eof && c.pos < len(c.buf) {
		c.src.BackUp(len(c.buf) - c.pos)
	}
}
