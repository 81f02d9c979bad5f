package calc

import (
	"errors"
	"fmt"
)

// Syntax error kinds. Evaluate always returns them wrapped in a *SyntaxError.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnexpectedEnd       = errors.New("unexpected end of expression")
	ErrMalformedNumber     = errors.New("malformed number")
)

// ErrorText is what the calculator displays in place of a result when
// evaluation fails.
const ErrorText = "Error"

// SyntaxError reports where an expression stopped making sense.
type SyntaxError struct {
	Pos  int  // rune offset into the expression
	Char rune // offending character, or -1 at end of input
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Text != "":
		return fmt.Sprintf("%v %q at position %d", e.Err, e.Text, e.Pos)
	case e.Char == eof:
		return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
	default:
		return fmt.Sprintf("%v %q at position %d", e.Err, e.Char, e.Pos)
	}
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
