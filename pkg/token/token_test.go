package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "=", EQ.String())
	assert.Equal(t, "IDENT", IDENT.String())
	assert.Equal(t, "Type(999)", Type(999).String())
}

func TestIsOperator(t *testing.T) {
	assert.True(t, PLUS.IsOperator())
	assert.True(t, CONCAT.IsOperator())
	assert.False(t, LPAREN.IsOperator())
	assert.False(t, IDENT.IsOperator())
}

func TestIsDelimiter(t *testing.T) {
	assert.True(t, COMMA.IsDelimiter())
	assert.True(t, DOT.IsDelimiter())
	assert.False(t, PLUS.IsDelimiter())
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Col: 7}
	assert.Equal(t, "3:7", p.String())
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: IDENT, Literal: "foo", Pos: Position{Line: 1, Col: 1}}
	assert.Equal(t, `IDENT("foo")@1:1`, tok.String())
}

func TestLookupCaseInsensitiveCanonicalUpper(t *testing.T) {
	canonical, ok := Lookup("select")
	assert.True(t, ok)
	assert.Equal(t, "SELECT", canonical)

	_, ok = Lookup("orders")
	assert.False(t, ok)
}

func TestIsJoinKeyword(t *testing.T) {
	assert.True(t, IsJoinKeyword("join"))
	assert.True(t, IsJoinKeyword("LEFT"))
	assert.False(t, IsJoinKeyword("WHERE"))
}
