package lexer

import "fmt"

import "github.com/darkcollective/relalg/pkg/token"

// Error reports a tokenization failure at a specific position in the input.
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
