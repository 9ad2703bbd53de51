package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPrice renders a price for display, e.g. 1299.5 -> "$1,299.50".
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', 2, 64)

	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return fmt.Sprintf("$%s.%s", b.String(), parts[1])
}

// ParseFloatOr parses s as a float, falling back to def when s is
// empty or malformed.
func ParseFloatOr(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

// ParseIntOr parses s as an int, falling back to def when s is empty
// or malformed.
func ParseIntOr(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
