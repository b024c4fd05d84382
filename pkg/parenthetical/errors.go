package parenthetical

import "fmt"

// ParseError reports a syntax problem in parenthetical notation text.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parenthetical parse error at offset %d: %s", e.Offset, e.Msg)
}
