package lexer

import "github.com/lukeod/lextok/token"

// consumeNumber consumes the remainder of a number literal (the leading
// digit(s) that led to classifying it as a number have already been
// consumed by the caller) and classifies it as INTEGER or FLOAT.
func (t *Tokenizer) consumeNumber(startedWithZero, startedWithDot bool) token.Type {
	isFloat := false

	switch {
	case startedWithZero && !t.cur.eof && (t.cur.cur == 'x' || t.cur.cur == 'X'):
		t.cur.nextChar()
		digits := 0
		for !t.cur.eof && token.IsHexDigit(t.cur.cur) {
			t.cur.nextChar()
			digits++
		}
		if digits == 0 {
			t.sink.AddError(t.cur.line, t.cur.column, "\"0x\" must be followed by hex digits.")
		}

	case startedWithZero && !t.cur.eof && token.IsDigit(t.cur.cur):
		for !t.cur.eof && token.IsOctalDigit(t.cur.cur) {
			t.cur.nextChar()
		}
		if !t.cur.eof && token.IsDigit(t.cur.cur) {
			t.sink.AddError(t.cur.line, t.cur.column, "Numbers starting with leading zero must be in octal.")
			for !t.cur.eof && token.IsDigit(t.cur.cur) {
				t.cur.nextChar()
			}
		}

	default:
		if startedWithDot {
			isFloat = true
			for !t.cur.eof && token.IsDigit(t.cur.cur) {
				t.cur.nextChar()
			}
		} else {
			for !t.cur.eof && token.IsDigit(t.cur.cur) {
				t.cur.nextChar()
			}
			if !t.cur.eof && t.cur.cur == '.' {
				isFloat = true
				t.cur.nextChar()
				for !t.cur.eof && token.IsDigit(t.cur.cur) {
					t.cur.nextChar()
				}
			}
		}

		if !t.cur.eof && (t.cur.cur == 'e' || t.cur.cur == 'E') {
			isFloat = true
			t.cur.nextChar()
			if !t.cur.eof && (t.cur.cur == '-' || t.cur.cur == '+') {
				t.cur.nextChar()
			}
			digits := 0
			for !t.cur.eof && token.IsDigit(t.cur.cur) {
				t.cur.nextChar()
				digits++
			}
			if digits == 0 {
				t.sink.AddError(t.cur.line, t.cur.column, "\"e\" must be followed by exponent.")
			}
		}

		if t.opts.AllowFAfterFloat && !t.cur.eof && (t.cur.cur == 'f' || t.cur.cur == 'F') {
			isFloat = true
			t.cur.nextChar()
		}
	}

	switch {
	case !t.cur.eof && token.IsLetterOrUnderscore(t.cur.cur):
		if t.opts.RequireSpaceAfterNumber {
			t.sink.AddError(t.cur.line, t.cur.column, "Need space between number and identifier.")
		}
	case !t.cur.eof && t.cur.cur == '.':
		if isFloat {
			t.sink.AddError(t.cur.line, t.cur.column, "Already saw decimal point or exponent; can't have another one.")
		} else {
			t.sink.AddError(t.cur.line, t.cur.column, "Hex and octal numbers must be integers.")
		}
	}

	if isFloat {
		return token.FLOAT
	}
	return token.INTEGER
}
