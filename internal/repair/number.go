package repair

import (
	"regexp"
	"strconv"
	"strings"
)

// numericRegex validates that a string is a valid numeric format after
// cleanup. Matches integers, decimals, and scientific notation; rejects
// NaN/Infinity tokens and leftover text.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber parses a cell value into a float64 using coerce-friendly
// cleanup: surrounding whitespace is trimmed, currency symbols and
// thousands separators are removed, and the accounting negative format
// "(123.45)" is honored. Returns false when the value does not parse;
// the empty string is reported as not-a-number so callers can map it to
// the missing marker.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Detect negative accounting format "(123.45)"
	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	// Remove common currency symbols and thousands separators
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
