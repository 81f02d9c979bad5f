package calc

import (
	"math"
	"strconv"
	"strings"
)

// Format renders v the way the display shows results: whole numbers without
// a decimal point, everything else in shortest round-trip form.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	case v == math.Trunc(v) && math.Abs(v) < 1e21:
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatDecimal renders a finite v as a plain decimal literal with no
// exponent, so the text stays valid calculator input.
func FormatDecimal(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParsePlain reports whether text is a single signed number literal and
// returns its value. Expressions, spaces and special values are rejected.
func ParsePlain(text string) (float64, bool) {
	digits := text
	if rest, ok := strings.CutPrefix(text, "-"); ok {
		digits = rest
	} else if rest, ok := strings.CutPrefix(text, "+"); ok {
		digits = rest
	}
	if !wellFormed(digits) {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
