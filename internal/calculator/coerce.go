package calculator

import (
	"math"
	"strconv"
	"strings"
)

// CoerceNumber parses field text as a number. Empty, non-numeric and
// non-finite input all become 0. The sign is kept so callers can flag
// negative values.
func CoerceNumber(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// maxPeople caps the people count so it always fits an int.
const maxPeople = math.MaxInt32

// NormalizePeople turns people-count text into a whole number >= 1.
// It returns the normalized text and whether the input had to be
// clamped up to 1. Applying it to its own output is a no-op.
func NormalizePeople(text string) (string, bool) {
	n := CoerceNumber(text)
	if n <= 0 {
		return "1", true
	}
	whole := math.Floor(n)
	if whole < 1 {
		return "1", true
	}
	if whole > maxPeople {
		whole = maxPeople
	}
	return strconv.FormatFloat(whole, 'f', 0, 64), false
}

// peopleCount returns the clamped people count for already-normalized text.
func peopleCount(text string) int {
	n := math.Floor(CoerceNumber(text))
	if n < 1 {
		return 1
	}
	if n > maxPeople {
		return maxPeople
	}
	return int(n)
}
