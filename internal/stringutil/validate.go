// Package stringutil provides small string predicates shared across featdesc packages.
package stringutil

import (
	"strings"
	"unicode"
)

// IsAlphanumeric reports whether s is non-empty and every rune in s is a
// letter or a number. Unicode letters and numerals count, so "café" and
// "x²" are alphanumeric while "a b", "a_b", and "" are not.
func IsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// IsSpace reports whether r is whitespace. It extends unicode.IsSpace with
// the ASCII information separators U+001C through U+001F, which line-oriented
// text tools treat as whitespace.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || ('\x1c' <= r && r <= '\x1f')
}

// TrimSpace returns s with leading and trailing IsSpace runes removed.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return TrimSpace(s) == ""
}
