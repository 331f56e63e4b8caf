package lexer

import "github.com/lukeod/lextok/token"

// consumeString consumes a string literal body up to and including the
// closing delimiter (the opening delimiter has already been consumed by the
// caller). It is tolerant: every malformed escape is diagnosed but scanning
// continues so downstream diagnostics aren't cut short.
func (t *Tokenizer) consumeString(delimiter byte) {
	for {
		if t.cur.eof {
			t.sink.AddError(t.cur.line, t.cur.column, "Unexpected end of string.")
			return
		}

		switch t.cur.cur {
		case 0:
			t.sink.AddError(t.cur.line, t.cur.column, "Unexpected end of string.")
			return

		case '\n':
			if !t.opts.AllowMultilineStrings {
				t.sink.AddError(t.cur.line, t.cur.column, "String literals cannot cross line boundaries.")
				return
			}
			t.cur.nextChar()

		case '\\':
			t.cur.nextChar()
			if t.cur.eof {
				t.sink.AddError(t.cur.line, t.cur.column, "Unexpected end of string.")
				return
			}
			t.consumeStringEscape()

		default:
			if t.cur.cur == delimiter {
				t.cur.nextChar()
				return
			}
			t.cur.nextChar()
		}
	}
}

// consumeStringEscape consumes the escape body following a '\\' that the
// caller has already consumed (the cursor is positioned at the escape
// letter).
func (t *Tokenizer) consumeStringEscape() {
	esc := t.cur.cur

	switch {
	case token.IsSimpleEscapeLetter(esc):
		t.cur.nextChar()

	case token.IsOctalDigit(esc):
		// Consume the first octal digit; up to two more are absorbed
		// naturally by the main loop's default byte-at-a-time consumption.
		t.cur.nextChar()

	case esc == 'x':
		t.cur.nextChar()
		if t.cur.eof || !token.IsHexDigit(t.cur.cur) {
			t.sink.AddError(t.cur.line, t.cur.column, "\"\\x\" must be followed by at least one hex digit.")
			return
		}
		// Consume the required digit; a second is absorbed naturally.
		t.cur.nextChar()

	case esc == 'u':
		t.cur.nextChar()
		digits := 0
		for digits < 4 && !t.cur.eof && token.IsHexDigit(t.cur.cur) {
			t.cur.nextChar()
			digits++
		}
		if digits < 4 {
			t.sink.AddError(t.cur.line, t.cur.column, "\"\\u\" must be followed by 4 hex digits.")
		}

	case esc == 'U':
		t.cur.nextChar()
		t.consumeUnicodeEscapeU()

	default:
		t.sink.AddError(t.cur.line, t.cur.column, "Invalid escape sequence in string literal.")
		t.cur.nextChar()
	}
}

// consumeUnicodeEscapeU consumes the 8 constrained hex digits of a "\U"
// escape: 000000xx..0010xxxx.
func (t *Tokenizer) consumeUnicodeEscapeU() {
	allowed := [8]func(byte) bool{
		func(b byte) bool { return b == '0' },
		func(b byte) bool { return b == '0' },
		func(b byte) bool { return b == '0' || b == '1' },
		token.IsHexDigit, token.IsHexDigit, token.IsHexDigit, token.IsHexDigit, token.IsHexDigit,
	}
	for _, ok := range allowed {
		if t.cur.eof || !ok(t.cur.cur) {
			t.sink.AddError(t.cur.line, t.cur.column, "\"\\U\" must be followed by 8 hex digits in the range 000000xx to 0010xxxx.")
			return
		}
		t.cur.nextChar()
	}
}
