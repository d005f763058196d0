package services

import (
	"fmt"
	"math"
)

// FormatUSD formats an amount as whole dollars with thousands separators,
// e.g. $11,750. Quote documents never show cents; the amount rounds
// half-up first.
func FormatUSD(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	intPart := fmt.Sprintf("%.0f", math.Round(amount))

	result := "$" + groupThousands(intPart)
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every 3 digits
// from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
