// Package numfmt normalizes the loosely formatted numbers that appear on
// Korean finance pages: thousands separators, stray whitespace, unit
// suffixes trailing the digits.
package numfmt

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)

// ExtractLeadingNumber returns the first run of digits, thousands
// separators and an optional decimal fraction in text, with the separators
// removed. The second return is false when text contains no digits.
func ExtractLeadingNumber(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	m := digitRun.FindString(strings.TrimSpace(text))
	cleaned := strings.ReplaceAll(m, ",", "")
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}

// ParseFloat strips separators and surrounding whitespace and parses the
// result as a float. It reports false instead of failing on any malformed
// input.
func ParseFloat(text string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
