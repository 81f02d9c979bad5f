package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{-3, "-3"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{10.0 / 3, "3.3333333333333335"},
		{1e-7, "1e-07"},
		{123456789, "123456789"},
		{1e21, "1e+21"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestParsePlain(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"50", 50, true},
		{"-50", -50, true},
		{"+2.5", 2.5, true},
		{"0.5", 0.5, true},
		{"", 0, false},
		{"-", 0, false},
		{"5+3", 0, false},
		{" 5", 0, false},
		{"1.2.3", 0, false},
		{".5", 0, false},
		{"NaN", 0, false},
		{"1e5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePlain(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{1, "1"},
		{-0.5, "-0.5"},
		{1e-05, "0.00001"},
		{1e22, "10000000000000000000000"},
		{math.Copysign(0, -1), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDecimal(tt.in))
		})
	}
}
