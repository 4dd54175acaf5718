package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// stripped reports whether r is ignored when comparing entries: brackets,
// parentheses and any whitespace, Unicode spaces (NBSP, en-space, ...)
// included.
func stripped(r rune) bool {
	switch r {
	case '[', ']', '(', ')':
		return true
	}
	return unicode.IsSpace(r)
}

// Canonical returns the comparison form of s: brackets, parentheses and
// whitespace removed, then case folded. Two entries are equivalent exactly
// when their canonical forms are equal.
func Canonical(s string) string {
	compact := strings.Map(func(r rune) rune {
		if stripped(r) {
			return -1
		}
		return r
	}, s)
	// cases.Caser is stateful, so a fresh one is taken per call.
	return cases.Fold().String(compact)
}

// EquivalentAlphanumeric reports whether a and b are equal after removing
// square brackets, parentheses and whitespace and applying full Unicode case
// folding (not ASCII lowercasing).
func EquivalentAlphanumeric(a, b string) bool {
	return Canonical(a) == Canonical(b)
}

// ExtractLeaf returns the segment of s after the last occurrence of
// delimiter, or s unchanged when the delimiter is absent.
func ExtractLeaf(s, delimiter string) string {
	if i := strings.LastIndex(s, delimiter); i >= 0 {
		return s[i+len(delimiter):]
	}
	return s
}
