package session

// Button is one key of the calculator keypad.
type Button string

const (
	ButtonClear      Button = "C"
	ButtonBackspace  Button = "⌫"
	ButtonPercent    Button = "%"
	ButtonEquals     Button = "="
	ButtonDot        Button = "."
	ButtonDoubleZero Button = "00"
	ButtonAdd        Button = "+"
	ButtonSubtract   Button = "-"
	ButtonMultiply   Button = "*"
	ButtonDivide     Button = "/"
)

// Keypad is the button grid, row by row.
var Keypad = [][]Button{
	{ButtonClear, ButtonPercent, ButtonBackspace, ButtonDivide},
	{"7", "8", "9", ButtonMultiply},
	{"4", "5", "6", ButtonSubtract},
	{"1", "2", "3", ButtonAdd},
	{ButtonDoubleZero, "0", ButtonDot, ButtonEquals},
}

// ParseButton maps a label to its Button.
func ParseButton(s string) (Button, bool) {
	b := Button(s)
	switch {
	case b.IsEntry(), b.IsOperator():
		return b, true
	case b == ButtonClear, b == ButtonBackspace, b == ButtonPercent, b == ButtonEquals:
		return b, true
	}
	return "", false
}

// IsOperator reports whether b is one of the four binary operators.
func (b Button) IsOperator() bool {
	switch b {
	case ButtonAdd, ButtonSubtract, ButtonMultiply, ButtonDivide:
		return true
	}
	return false
}

// IsEntry reports whether b types part of a number: a digit, "00" or ".".
func (b Button) IsEntry() bool {
	if b == ButtonDot || b == ButtonDoubleZero {
		return true
	}
	return len(b) == 1 && b[0] >= '0' && b[0] <= '9'
}
