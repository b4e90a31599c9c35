package msort

import (
	"strconv"
	"strings"
)

// FormatInts renders values as "[ 1, 2, 3 ]", an empty list renders as "[ ]".
func FormatInts(values []int) string {
	if len(values) == 0 {
		return "[ ]"
	}
	var b strings.Builder
	b.WriteString("[ ")
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteString(" ]")

	return b.String()
}

// Verdict renders the result of a sortedness check.
func Verdict(sorted bool) string {
	if sorted {
		return "verified"
	}
	return "NOT SORTED"
}
