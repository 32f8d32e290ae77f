package currency

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{15, "$15.00"},
		{115, "$115.00"},
		{4.95, "$4.95"},
		{37.95, "$37.95"},
		{46, "$46.00"},
		{0.125, "$0.13"},
		{6.7 * 15 / 100, "$1.00"},
		{1.005, "$1.00"},
		{2.675, "$2.67"},
		{0.5, "$0.50"},
		{1234.5, "$1234.50"},
		{math.NaN(), "$0.00"},
		{math.Inf(1), "$0.00"},
		{math.Inf(-1), "$0.00"},
		{math.Copysign(0, -1), "$0.00"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{15, "15%"},
		{12.5, "12.5%"},
		{0.1, "0.1%"},
		{0, "0%"},
		{math.NaN(), "0%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
