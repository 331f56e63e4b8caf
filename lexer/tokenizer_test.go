package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/lextok/diag"
	"github.com/lukeod/lextok/source"
	"github.com/lukeod/lextok/token"
)

func TestTokenizerStartsAtStart(t *testing.T) {
	tok := New([]byte("x"), nil, &diag.CollectingSink{})
	assert.Equal(t, token.START, tok.Current().Type)
}

func TestTokenizerEmptyInputYieldsEND(t *testing.T) {
	tok := New(nil, nil, &diag.CollectingSink{})
	more := tok.Next()
	assert.False(t, more)
	assert.Equal(t, token.END, tok.Current().Type)
	assert.Empty(t, tok.Current().Text)
}

func TestTokenizerPreviousTracksLastToken(t *testing.T) {
	tok := New([]byte("foo bar"), nil, &diag.CollectingSink{})
	require.True(t, tok.Next())
	first := tok.Current()
	require.True(t, tok.Next())
	assert.Equal(t, first, tok.Previous())
}

func TestTokenizeAllDrainsThroughEND(t *testing.T) {
	tokens, diags := lexAll("foo 123")
	require.Empty(t, diags)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.IDENTIFIER, tokens[0].Type)
	assert.Equal(t, "foo", tokens[0].Text)
	assert.Equal(t, token.INTEGER, tokens[1].Type)
	assert.Equal(t, "123", tokens[1].Text)
	assert.Equal(t, token.END, tokens[2].Type)
}

func TestTokenizerInitialThenStream(t *testing.T) {
	tok := New([]byte("foo"), source.NewBytesSource([]byte("bar")), &diag.CollectingSink{})
	tokens := tok.TokenizeAll()
	require.Len(t, tokens, 2)
	assert.Equal(t, "foobar", tokens[0].Text)
}

func TestScanScenarioFromDocumentation(t *testing.T) {
	tokens, diags := lexAll("foo 123 0x1F 07 0.5 1e10 \"a\\nb\" // tail\nBAR")
	require.Empty(t, diags)

	var kinds []token.Type
	var texts []string
	for _, tk := range tokens {
		if tk.Type == token.END {
			break
		}
		kinds = append(kinds, tk.Type)
		texts = append(texts, tk.Text)
	}
	assert.Equal(t, []token.Type{
		token.IDENTIFIER, token.INTEGER, token.INTEGER, token.INTEGER,
		token.FLOAT, token.FLOAT, token.STRING, token.IDENTIFIER,
	}, kinds)
	assert.Equal(t, []string{
		"foo", "123", "0x1F", "07", "0.5", "1e10", "\"a\\nb\"", "BAR",
	}, texts)
}
