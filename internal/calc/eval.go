// Package calc parses and evaluates the calculator's arithmetic expressions.
//
// The grammar is the usual one, left-associative with unary signs binding
// tightest:
//
//	Expression := Term (('+' | '-') Term)*
//	Term       := Factor (('*' | '/') Factor)*
//	Factor     := ('+' | '-') Factor | '(' Expression ')' | Number
//	Number     := digit+ ('.' digit+)?
//
// Arithmetic is IEEE double; division by zero yields an infinity or NaN
// rather than an error.
package calc

import (
	"errors"
	"strconv"
)

const eof rune = -1

// Evaluator evaluates expressions. The zero value is ready to use and
// tolerates a missing closing parenthesis.
type Evaluator struct {
	// StrictParens makes a missing ')' a syntax error.
	StrictParens bool
}

// Evaluate evaluates expr with the default lenient Evaluator.
func Evaluate(expr string) (float64, error) {
	return Evaluator{}.Evaluate(expr)
}

// Evaluate parses expr and returns its value. Failures are *SyntaxError.
func (e Evaluator) Evaluate(expr string) (float64, error) {
	c := &cursor{src: []rune(expr), pos: -1, strict: e.StrictParens}
	c.next()

	v, err := c.expression()
	if err != nil {
		return 0, err
	}
	if c.ch != eof {
		return 0, c.unexpected()
	}
	return v, nil
}

// cursor is the parse state for a single Evaluate call.
type cursor struct {
	src    []rune
	pos    int
	ch     rune
	strict bool
}

func (c *cursor) next() {
	c.pos++
	if c.pos < len(c.src) {
		c.ch = c.src[c.pos]
	} else {
		c.ch = eof
	}
}

// eat skips spaces and consumes want if it is the current character.
func (c *cursor) eat(want rune) bool {
	for c.ch == ' ' {
		c.next()
	}
	if c.ch == want {
		c.next()
		return true
	}
	return false
}

func (c *cursor) unexpected() error {
	if c.ch == eof {
		return &SyntaxError{Pos: c.pos, Char: eof, Err: ErrUnexpectedEnd}
	}
	return &SyntaxError{Pos: c.pos, Char: c.ch, Err: ErrUnexpectedCharacter}
}

func (c *cursor) expression() (float64, error) {
	x, err := c.term()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case c.eat('+'):
			y, err := c.term()
			if err != nil {
				return 0, err
			}
			x += y
		case c.eat('-'):
			y, err := c.term()
			if err != nil {
				return 0, err
			}
			x -= y
		default:
			return x, nil
		}
	}
}

func (c *cursor) term() (float64, error) {
	x, err := c.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case c.eat('*'):
			y, err := c.factor()
			if err != nil {
				return 0, err
			}
			x *= y
		case c.eat('/'):
			y, err := c.factor()
			if err != nil {
				return 0, err
			}
			x /= y
		default:
			return x, nil
		}
	}
}

func (c *cursor) factor() (float64, error) {
	if c.eat('+') {
		return c.factor()
	}
	if c.eat('-') {
		x, err := c.factor()
		if err != nil {
			return 0, err
		}
		return -x, nil
	}

	if c.eat('(') {
		x, err := c.expression()
		if err != nil {
			return 0, err
		}
		if !c.eat(')') && c.strict {
			return 0, c.unexpected()
		}
		return x, nil
	}

	if isDigit(c.ch) || c.ch == '.' {
		return c.number()
	}
	return 0, c.unexpected()
}

// number consumes the longest run of digits and dots, then insists that it
// is a well formed literal. "1.2.3" is rejected here, not at the next step.
func (c *cursor) number() (float64, error) {
	start := c.pos
	for isDigit(c.ch) || c.ch == '.' {
		c.next()
	}
	text := string(c.src[start:c.pos])
	malformed := &SyntaxError{Pos: start, Char: c.src[start], Text: text, Err: ErrMalformedNumber}

	if !wellFormed(text) {
		return 0, malformed
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, malformed
	}
	// Out of range literals overflow to infinity like any other double.
	return v, nil
}

func wellFormed(text string) bool {
	i := 0
	for i < len(text) && isDigit(rune(text[i])) {
		i++
	}
	if i == 0 {
		return false
	}
	if i == len(text) {
		return true
	}
	if text[i] != '.' {
		return false
	}
	i++
	frac := i
	for i < len(text) && isDigit(rune(text[i])) {
		i++
	}
	return i > frac && i == len(text)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
