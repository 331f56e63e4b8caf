package lexer

import (
	"strings"

	"github.com/lukeod/lextok/token"
)

type commentKind int

const (
	commentNone commentKind = iota
	commentLine
	commentBlock
	commentSlashNotComment
)

// tryConsumeCommentStart peeks (and, if a comment is found, consumes) the
// comment-opening sequence for the configured comment style. In C++ mode, a
// '/' not followed by '/' or '*' is not a comment at all: it pre-fills
// Current with the '/' as a SYMBOL token and returns commentSlashNotComment,
// so the caller can return it directly without a second dispatch.
func (t *Tokenizer) tryConsumeCommentStart() commentKind {
	if t.cur.eof {
		return commentNone
	}

	if t.opts.CommentStyle == CommentStyleShell {
		if t.cur.cur == '#' {
			t.cur.nextChar()
			return commentLine
		}
		return commentNone
	}

	if t.cur.cur != '/' {
		return commentNone
	}

	slashLine, slashColumn := t.cur.line, t.cur.column
	t.cur.nextChar() // consume '/'

	switch {
	case !t.cur.eof && t.cur.cur == '/':
		t.cur.nextChar()
		return commentLine
	case !t.cur.eof && t.cur.cur == '*':
		t.cur.nextChar()
		return commentBlock
	default:
		t.current = token.Token{
			Type:      token.SYMBOL,
			Line:      slashLine,
			Column:    slashColumn,
			EndColumn: t.cur.column,
			Text:      "/",
		}
		return commentSlashNotComment
	}
}

// consumeLineComment consumes through the end of the line (and the
// terminating newline, if present), optionally appending the consumed
// content -- excluding the terminating newline -- to record.
func (t *Tokenizer) consumeLineComment(record *strings.Builder) {
	for !t.cur.eof && t.cur.cur != '\n' {
		if record != nil {
			record.WriteByte(t.cur.cur)
		}
		t.cur.nextChar()
	}
	if !t.cur.eof && t.cur.cur == '\n' {
		t.cur.nextChar()
	}
}

// consumeBlockComment consumes through the closing "*/". A nested "/*" is
// diagnosed but not treated as an error boundary: only the '/' is consumed,
// so an immediately following '/' still lets that '*' close the outer
// comment. Reaching EOF first is diagnosed with both the EOF position and
// the position the comment opened at.
//
// When record is non-nil, interior content is appended with the closing
// "*/" excluded, and recording pauses across each embedded newline just
// long enough to skip the following line's leading whitespace and a single
// leading '*', so that "boxed" block comments don't carry that decoration
// into the recorded text.
func (t *Tokenizer) consumeBlockComment(record *strings.Builder) {
	startLine := t.cur.line
	startColumn := t.cur.column - 2 // the comment's opening '/' was 2 columns back

	atLineStart := false
	for {
		if t.cur.eof {
			t.sink.AddError(t.cur.line, t.cur.column, "End-of-file inside block comment.")
			t.sink.AddError(startLine, startColumn, "  Comment started here.")
			return
		}

		if t.cur.cur == '*' {
			t.cur.nextChar()
			if !t.cur.eof && t.cur.cur == '/' {
				t.cur.nextChar()
				return
			}
			if atLineStart {
				// A decorative leading '*' in a boxed comment: drop it from
				// the recorded content, but only the first one per line.
				atLineStart = false
			} else if record != nil {
				record.WriteByte('*')
			}
			continue
		}

		if t.cur.cur == '/' {
			slashLine, slashColumn := t.cur.line, t.cur.column
			t.cur.nextChar()
			if !t.cur.eof && t.cur.cur == '*' {
				t.sink.AddError(slashLine, slashColumn, "\"/*\" inside block comment. Block comments cannot be nested.")
				continue // leave the '*' as current; it gets reprocessed above
			}
			if record != nil {
				record.WriteByte('/')
			}
			atLineStart = false
			continue
		}

		if t.cur.cur == '\n' {
			if record != nil {
				record.WriteByte('\n')
			}
			t.cur.nextChar()
			atLineStart = true
			continue
		}

		if atLineStart && token.IsWhitespaceNoNewline(t.cur.cur) {
			t.cur.nextChar()
			continue
		}
		atLineStart = false

		if record != nil {
			record.WriteByte(t.cur.cur)
		}
		t.cur.nextChar()
	}
}
