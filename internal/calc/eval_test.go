package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"--5", 5},
		{"+-5", -5},
		{"-+-5", 5},
		{"2/4", 0.5},
		{"10-4-3", 3},
		{"64/4/2", 8},
		{"7", 7},
		{"0.25*4", 1},
		{"00", 0},
		{"007.50", 7.5},
		{" 1 + 2 ", 3},
		{"2*-3", -6},
		{"-(1+2)*3", -9},
		{"((((1))))", 1},
		{"3+(4*2", 11},
		{"(1+(2*3", 7},
		{"1.5+1.5", 3},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	v, err := Evaluate("1/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = Evaluate("-1/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	v, err = Evaluate("0/0")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		expr string
		want error
		pos  int
	}{
		{"", ErrUnexpectedEnd, 0},
		{"+", ErrUnexpectedEnd, 1},
		{"3+", ErrUnexpectedEnd, 2},
		{"(", ErrUnexpectedEnd, 1},
		{"3*", ErrUnexpectedEnd, 2},
		{"   ", ErrUnexpectedEnd, 3},
		{"*3", ErrUnexpectedCharacter, 0},
		{")", ErrUnexpectedCharacter, 0},
		{"(2))", ErrUnexpectedCharacter, 3},
		{"1 2", ErrUnexpectedCharacter, 2},
		{"2x", ErrUnexpectedCharacter, 1},
		{"3+×", ErrUnexpectedCharacter, 2},
		{".", ErrMalformedNumber, 0},
		{".5", ErrMalformedNumber, 0},
		{"1.", ErrMalformedNumber, 0},
		{"1.2.3", ErrMalformedNumber, 0},
		{"4+1..2", ErrMalformedNumber, 2},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Evaluate(tt.expr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.pos, se.Pos)
		})
	}
}

func TestEvaluateStrictParens(t *testing.T) {
	strict := Evaluator{StrictParens: true}

	v, err := strict.Evaluate("(2+3)*4")
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)

	_, err = strict.Evaluate("3+(4*2")
	assert.ErrorIs(t, err, ErrUnexpectedEnd)

	_, err = strict.Evaluate("(1 2")
	assert.ErrorIs(t, err, ErrUnexpectedCharacter)
}

func TestEvaluateHugeLiteralOverflows(t *testing.T) {
	lit := "1"
	for i := 0; i < 400; i++ {
		lit += "0"
	}
	v, err := Evaluate(lit)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Evaluate("3+")
	assert.EqualError(t, err, "unexpected end of expression at position 2")

	_, err = Evaluate("2x")
	assert.EqualError(t, err, `unexpected character 'x' at position 1`)

	_, err = Evaluate("1.2.3")
	assert.EqualError(t, err, `malformed number "1.2.3" at position 0`)
}
