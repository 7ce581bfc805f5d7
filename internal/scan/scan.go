package scan

import (
	"math"
	"strings"
)

// Strings extracts at most max quote-delimited elements from text.
// Everything between an opening quote and the next quote is one element; there
// is no escape handling. An opening quote without a closing quote ends the scan
// and the partial element is dropped.
func Strings(text string, max int) []string {
	if max <= 0 {
		return nil
	}
	rest := skipPrefix(text)

	var out []string
	for len(out) < max {
		start := strings.IndexByte(rest, '"')
		if start < 0 {
			break
		}
		rest = rest[start+1:]
		end := strings.IndexByte(rest, '"')
		if end < 0 {
			break
		}
		out = append(out, rest[:end])
		rest = rest[end+1:]
	}
	return out
}

// Integers extracts at most max base-10 integers from text.
// Anything that is not a digit or a minus sign is skipped. Each number is read
// like atoi (optional sign, longest digit run) and the scan then moves past the
// whole digit/minus run it started in.
func Integers(text string, max int) []int {
	if max <= 0 {
		return nil
	}

	var out []int
	i := 0
	for i < len(text) && len(out) < max {
		c := text[i]
		if !isDigit(c) && c != '-' {
			i++
			continue
		}
		if c == '-' && (i+1 >= len(text) || !isDigit(text[i+1])) {
			i++
			continue
		}
		out = append(out, atoi(text[i:]))
		for i < len(text) && (isDigit(text[i]) || text[i] == '-') {
			i++
		}
	}
	return out
}

// skipPrefix drops leading whitespace and one opening bracket.
func skipPrefix(text string) string {
	text = strings.TrimLeft(text, " \t\r\n\v\f")
	return strings.TrimPrefix(text, "[")
}

// atoi parses an optionally signed digit run at the start of s, saturating at
// the int range instead of wrapping.
func atoi(s string) int {
	neg := false
	if s != "" && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var n int64
	for i := 0; i < len(s) && isDigit(s[i]); i++ {
		d := int64(s[i] - '0')
		if n > (math.MaxInt64-d)/10 {
			n = math.MaxInt64
			break
		}
		n = n*10 + d
	}
	if neg {
		n = -n
	}
	return clampInt(n)
}

func clampInt(n int64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	if n < math.MinInt {
		return math.MinInt
	}
	return int(n)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
