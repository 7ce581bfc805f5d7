package bridge

import (
	"strconv"
	"strings"
)

// EncodeStrings renders values as a flat quoted list, e.g. ["a","b"].
// Double quotes inside values become single quotes; the receiving scanner has
// no escapes.
func EncodeStrings(values []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(v, `"`, `'`))
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}

// EncodeInts renders values as a flat integer list, e.g. [1,2].
func EncodeInts(values []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
