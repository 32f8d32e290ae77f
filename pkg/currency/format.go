// Package currency provides money formatting utilities for tipcalc.
//
// All amounts are carried as float64 in a single currency. This
// package handles conversion to the fixed two-decimal strings shown in
// the results panel and printed by the CLI.
package currency

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Symbol is prefixed to every formatted amount.
const Symbol = "$"

// Format renders n as "$" followed by exactly two decimals, rounding the
// float's exact binary value half up. 1.005 is stored just below 1.005
// and so shows as $1.00.
// NaN and infinities are shown as $0.00.
// Examples: "$15.00", "$4.95", "$0.00"
func Format(n float64) string {
	return Symbol + exactDecimal(n).StringFixed(2)
}

// FormatPercent renders a percentage without trailing zeros.
// Examples: "15%", "12.5%"
func FormatPercent(p float64) string {
	return decimalOf(p).String() + "%"
}

// exactDecimal expands n to 30 fractional digits, well past where any
// float64 deviates from a half-cent tie.
func exactDecimal(n float64) decimal.Decimal {
	if !nonZeroFinite(n) {
		return decimal.Zero
	}
	return decimal.RequireFromString(strconv.FormatFloat(n, 'f', 30, 64))
}

// decimalOf uses the shortest decimal that round-trips to n.
func decimalOf(n float64) decimal.Decimal {
	if !nonZeroFinite(n) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(n)
}

func nonZeroFinite(n float64) bool {
	return n != 0 && !math.IsNaN(n) && !math.IsInf(n, 0)
}
