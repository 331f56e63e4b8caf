package lexer

import (
	"io"
	"sync"

	participlelexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/lukeod/lextok/diag"
	"github.com/lukeod/lextok/source"
	"github.com/lukeod/lextok/token"
)

// These are the participle TokenType constants that participleType maps each
// token.Type to, and that a downstream grammar built on this package would
// switch on. EOF is
// represented by participle's own reserved lexer.EOF value, same as any
// hand-written participle lexer.
const (
	participleIdentifier participlelexer.TokenType = iota + 1
	participleInteger
	participleFloat
	participleString
	participleSymbol
	participleWhitespace
	participleNewline
)

var participleSymbols = map[string]participlelexer.TokenType{
	"EOF":        participlelexer.EOF,
	"Identifier": participleIdentifier,
	"Integer":    participleInteger,
	"Float":      participleFloat,
	"String":     participleString,
	"Symbol":     participleSymbol,
	"Whitespace": participleWhitespace,
	"Newline":    participleNewline,
}

func participleType(t token.Type) participlelexer.TokenType {
	switch t {
	case token.IDENTIFIER:
		return participleIdentifier
	case token.INTEGER:
		return participleInteger
	case token.FLOAT:
		return participleFloat
	case token.STRING:
		return participleString
	case token.SYMBOL:
		return participleSymbol
	case token.WHITESPACE:
		return participleWhitespace
	case token.NEWLINE:
		return participleNewline
	default:
		return participlelexer.EOF
	}
}

// Definition adapts this package's Tokenizer to participle/v2's
// lexer.Definition, so a grammar built with participle can consume this
// scanner without its own lexer implementation. Diagnostics recorded by the
// underlying Tokenizer (malformed numbers, unterminated strings, and so on)
// are collected on a diag.CollectingSink reachable via the returned Lexer's
// Diagnostics method; they are not surfaced as participle parse errors,
// since this package's lexical errors are non-fatal by design.
type Definition struct {
	Options []Option
}

var _ participlelexer.Definition = (*Definition)(nil)

func (d *Definition) Lex(filename string, r io.Reader) (participlelexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexBytes(filename, data)
}

func (d *Definition) LexString(filename string, input string) (participlelexer.Lexer, error) {
	return d.LexBytes(filename, []byte(input))
}

func (d *Definition) LexBytes(filename string, input []byte) (participlelexer.Lexer, error) {
	sink := &diag.CollectingSink{}
	t := New(nil, source.NewBytesSource(input), sink, d.Options...)
	return &adapterLexer{filename: filename, tok: t, sink: sink}, nil
}

var symbolsOnce sync.Once
var cachedSymbols map[string]participlelexer.TokenType

func (d *Definition) Symbols() map[string]participlelexer.TokenType {
	symbolsOnce.Do(func() {
		cachedSymbols = make(map[string]participlelexer.TokenType, len(participleSymbols))
		for name, tt := range participleSymbols {
			cachedSymbols[name] = tt
		}
	})
	return cachedSymbols
}

// adapterLexer implements participle/v2's lexer.Lexer interface over a
// single *Tokenizer run.
type adapterLexer struct {
	filename string
	tok      *Tokenizer
	sink     *diag.CollectingSink
	offset   int
}

var _ participlelexer.Lexer = (*adapterLexer)(nil)

func (l *adapterLexer) Next() (participlelexer.Token, error) {
	for {
		if !l.tok.Next() {
			cur := l.tok.Current()
			return participlelexer.Token{
				Type: participlelexer.EOF,
				Pos:  l.position(cur.Line, cur.Column),
			}, nil
		}
		cur := l.tok.Current()
		// START/END never reach here from a fresh Tokenizer loop; every other
		// type maps directly. Skip nothing: whitespace/newline tokens are only
		// ever produced when the caller opted into ReportWhitespace/Newlines,
		// in which case the downstream grammar presumably wants to see them.
		tok := participlelexer.Token{
			Type:  participleType(cur.Type),
			Value: cur.Text,
			Pos:   l.position(cur.Line, cur.Column),
		}
		l.offset += len(cur.Text)
		return tok, nil
	}
}

func (l *adapterLexer) position(line, column int) participlelexer.Position {
	return participlelexer.Position{
		Filename: l.filename,
		Offset:   l.offset,
		Line:     line,
		Column:   column,
	}
}

// Diagnostics returns every diagnostic the underlying Tokenizer recorded
// while this Lexer was driven.
func (l *adapterLexer) Diagnostics() []diag.Diagnostic {
	return l.sink.Diagnostics
}
