package expr

import "fmt"

import "github.com/darkcollective/relalg/pkg/token"

// ParseError reports a syntactic problem while parsing an expression.
type ParseError struct {
	Pos token.Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expression error at %s: %s", e.Pos, e.Msg)
}

// ArgumentError reports an invalid literal argument, e.g. a malformed
// numeric literal — matching original_source's
// "Invalid numeric literal" IllegalArgumentException.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }
