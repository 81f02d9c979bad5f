// Package session holds the calculator's editing state and the rules for
// how each button press changes it.
package session

import (
	"log/slog"

	"github.com/vhscom/calc/internal/calc"
)

// State is everything the display shows between presses.
type State struct {
	Input  InputBuffer
	Result string

	// ResultConsumed is set right after "=". The next digit starts a new
	// expression; the next operator continues from the current one.
	ResultConsumed bool
}

// Controller applies button presses to a State.
type Controller struct {
	Evaluator calc.Evaluator
	Logger    *slog.Logger
}

// Press applies b to s using the default lenient evaluator.
func Press(s State, b Button) State {
	return Controller{}.Press(s, b)
}

// SetInput replaces the input line with text, as a free-form edit would.
func SetInput(s State, text string) State {
	s.Input.Clear()
	s.Input.Append(text)
	s.ResultConsumed = false
	return s
}

// Press returns the state that follows pressing b in state s. Unknown
// buttons change nothing.
func (c Controller) Press(s State, b Button) State {
	switch {
	case b == ButtonClear:
		return State{}

	case b == ButtonBackspace:
		s.Input.Backspace()

	case b == ButtonPercent:
		v, ok := calc.ParsePlain(s.Input.Value)
		if !ok {
			return s
		}
		s.Input.Clear()
		s.Input.Append(calc.FormatDecimal(v / 100))
		s.ResultConsumed = false

	case b == ButtonEquals:
		s.Result = c.evaluate(s.Input.Value)
		s.ResultConsumed = true

	case b.IsEntry():
		if s.ResultConsumed {
			s.Input.Clear()
		}
		s.Input.Append(string(b))
		s.ResultConsumed = false

	case b.IsOperator():
		s.Input.Append(string(b))
		s.ResultConsumed = false
	}
	return s
}

func (c Controller) evaluate(expr string) string {
	v, err := c.Evaluator.Evaluate(expr)
	if err != nil {
		if c.Logger != nil {
			c.Logger.Debug("evaluation failed", "expression", expr, "error", err)
		}
		return calc.ErrorText
	}
	result := calc.Format(v)
	if c.Logger != nil {
		c.Logger.Debug("evaluated", "expression", expr, "result", result)
	}
	return result
}
