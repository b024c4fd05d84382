package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/darkcollective/relalg/pkg/lexer"
	"github.com/darkcollective/relalg/pkg/token"
)

func typesOf(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestTokenizeBasicSelect(t *testing.T) {
	toks := lexer.Tokenize("SELECT id, name FROM users WHERE age >= 18")
	require.Equal(t, []token.Type{
		token.KEYWORD, token.IDENT, token.COMMA, token.IDENT,
		token.KEYWORD, token.IDENT,
		token.KEYWORD, token.IDENT, token.GTE, token.NUMBER,
		token.EOF,
	}, typesOf(toks))
}

func TestTokenizeOperators(t *testing.T) {
	toks := lexer.Tokenize("= != <> < > <= >= + - * / % || && ! ^ & | << >> ~")
	want := []token.Type{
		token.EQ, token.NEQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PCT,
		token.CONCAT, token.AND_OP, token.NOT_OP, token.CARET, token.AMP,
		token.PIPE, token.SHL, token.SHR, token.TILDE, token.EOF,
	}
	require.Equal(t, want, typesOf(toks))
}

func TestDelimitersAlwaysSeparate(t *testing.T) {
	toks := lexer.Tokenize("foo(bar,baz)")
	require.Equal(t, []token.Type{
		token.IDENT, token.LPAREN, token.IDENT, token.COMMA, token.IDENT, token.RPAREN, token.EOF,
	}, typesOf(toks))
}

func TestStringLiteralWithEscapedQuote(t *testing.T) {
	toks := lexer.Tokenize("'it''s fine'")
	require.Len(t, toks, 2)
	require.Equal(t, token.STRING, toks[0].Type)
	require.Equal(t, "it's fine", toks[0].Literal)
}

func TestUnterminatedStringAbsorbsToEOF(t *testing.T) {
	toks := lexer.Tokenize("'never closed")
	require.Len(t, toks, 2)
	require.Equal(t, token.STRING, toks[0].Type)
	require.Equal(t, "never closed", toks[0].Literal)
	require.Equal(t, token.EOF, toks[1].Type)
}

func TestQuotedIdentifier(t *testing.T) {
	toks := lexer.Tokenize(`"order id"`)
	require.Equal(t, token.QIDENT, toks[0].Type)
	require.Equal(t, "order id", toks[0].Literal)
}

func TestCommentsAreElided(t *testing.T) {
	toks := lexer.Tokenize("SELECT 1 -- trailing comment\nFROM t /* block\ncomment */ WHERE 1=1")
	require.Equal(t, []token.Type{
		token.KEYWORD, token.NUMBER, token.KEYWORD, token.IDENT, token.KEYWORD,
		token.NUMBER, token.EQ, token.NUMBER, token.EOF,
	}, typesOf(toks))
}

func TestNumberWithScientificNotation(t *testing.T) {
	toks := lexer.Tokenize("1.5e10 2.5E-3 42")
	require.Equal(t, []string{"1.5e10", "2.5E-3", "42"}, []string{
		toks[0].Literal, toks[1].Literal, toks[2].Literal,
	})
}

func TestKeywordLookupIsCaseInsensitive(t *testing.T) {
	toks := lexer.Tokenize("select Select SELECT")
	for _, tok := range toks[:3] {
		require.Equal(t, token.KEYWORD, tok.Type)
		require.Equal(t, "SELECT", tok.Keyword)
	}
}
