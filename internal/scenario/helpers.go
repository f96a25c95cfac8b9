package scenario

import (
	"regexp"
	"strings"
)

var priceDigits = regexp.MustCompile(`\d+`)

// NormalizePrice returns the first run of digits in s, or "" when there is none.
// "₽399" and "399 ₽" both normalize to "399".
func NormalizePrice(s string) string {
	return priceDigits.FindString(s)
}

// PickIndex returns intn(n), an index in [0, n).
// It fails with ErrNoMatchingElements when n is zero.
func PickIndex(intn func(int) int, n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoMatchingElements
	}
	return intn(n), nil
}

// SplitListing splits a newline separated listing and drops blank entries
func SplitListing(text string) []string {
	var entries []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}
