package lexer

import "github.com/lukeod/lextok/token"

// Next advances to the next token, returning true, or reports exhaustion by
// setting Current to an END token with empty text and returning false.
func (t *Tokenizer) Next() bool {
	t.previous = t.current

	for {
		startLine, startColumn := t.cur.line, t.cur.column

		t.text.Reset()
		t.cur.startRecord(&t.text)

		if typ, consumed, reportable := t.tryConsumeWhitespaceOrNewline(); consumed {
			t.cur.stopRecord()
			if reportable {
				t.current = token.Token{
					Type:      typ,
					Line:      startLine,
					Column:    startColumn,
					EndColumn: t.cur.column,
					Text:      t.text.String(),
				}
				return true
			}
			continue
		}
		t.cur.stopRecord()

		switch t.tryConsumeCommentStart() {
		case commentLine:
			t.consumeLineComment(nil)
			continue
		case commentBlock:
			t.consumeBlockComment(nil)
			continue
		case commentSlashNotComment:
			// t.current was pre-filled by tryConsumeCommentStart.
			return true
		}

		if t.cur.eof {
			break
		}

		if !t.cur.eof && (token.IsUnprintable(t.cur.cur) || t.cur.cur == 0) {
			t.sink.AddError(t.cur.line, t.cur.column, "Invalid control characters encountered in text.")
			for !t.cur.eof && (token.IsUnprintable(t.cur.cur) || t.cur.cur == 0) {
				t.cur.nextChar()
			}
			continue
		}

		startLine, startColumn = t.cur.line, t.cur.column
		t.text.Reset()
		t.cur.startRecord(&t.text)

		typ := t.scanToken(startLine, startColumn)

		t.cur.stopRecord()
		t.current = token.Token{
			Type:      typ,
			Line:      startLine,
			Column:    startColumn,
			EndColumn: t.cur.column,
			Text:      t.text.String(),
		}
		return true
	}

	t.current = token.Token{Type: token.END, Line: t.cur.line, Column: t.cur.column, EndColumn: t.cur.column}
	return false
}

// scanToken dispatches on the current byte to consume one real (non-space,
// non-comment) token body and returns its type. The caller has already
// marked the token start and begun recording.
func (t *Tokenizer) scanToken(startLine, startColumn int) token.Type {
	switch {
	case token.IsLetterOrUnderscore(t.cur.cur):
		for !t.cur.eof && token.IsAlnumOrUnderscore(t.cur.cur) {
			t.cur.nextChar()
		}
		return token.IDENTIFIER

	case t.cur.cur == '0':
		t.cur.nextChar()
		return t.consumeNumber(true, false)

	case t.cur.cur == '.':
		dotColumn := t.cur.column
		t.cur.nextChar()
		if !t.cur.eof && token.IsDigit(t.cur.cur) {
			if t.previous.Type == token.IDENTIFIER && t.previous.Line == startLine && t.previous.EndColumn == dotColumn {
				t.sink.AddError(startLine, t.cur.column-2, "Need space between identifier and decimal point.")
			}
			return t.consumeNumber(false, true)
		}
		return token.SYMBOL

	case token.IsDigit(t.cur.cur):
		return t.consumeNumber(false, false)

	case t.cur.cur == '"' || t.cur.cur == '\'':
		delim := t.cur.cur
		t.cur.nextChar()
		t.consumeString(delim)
		return token.STRING

	default:
		if t.cur.cur&0x80 != 0 {
			t.sink.AddError(t.cur.line, t.cur.column, "Interpreting non ascii codepoint %d.", int(t.cur.cur))
		}
		t.cur.nextChar()
		return token.SYMBOL
	}
}

// tryConsumeWhitespaceOrNewline consumes a run of whitespace starting at the
// current byte, per the report_whitespace/report_newlines configuration. It
// returns consumed=false if the current byte isn't whitespace at all.
// reportable indicates whether the caller should emit a token (vs. just
// `continue`-ing the scan loop having silently consumed the run).
func (t *Tokenizer) tryConsumeWhitespaceOrNewline() (typ token.Type, consumed bool, reportable bool) {
	if t.cur.eof || !token.IsWhitespace(t.cur.cur) {
		return 0, false, false
	}

	switch {
	case t.opts.ReportNewlines:
		if t.cur.cur == '\n' {
			t.cur.nextChar()
			return token.NEWLINE, true, true
		}
		for !t.cur.eof && token.IsWhitespaceNoNewline(t.cur.cur) {
			t.cur.nextChar()
		}
		return token.WHITESPACE, true, true

	case t.opts.ReportWhitespace:
		for !t.cur.eof && token.IsWhitespace(t.cur.cur) {
			t.cur.nextChar()
		}
		return token.WHITESPACE, true, true

	default:
		for !t.cur.eof && token.IsWhitespace(t.cur.cur) {
			t.cur.nextChar()
		}
		return 0, true, false
	}
}
