// Package errfmt provides shared sanitization for engine-supplied text.
// Everything an engine process declares about itself (its name, its
// feature values) is untrusted input that ends up in error messages,
// logs, and UIs.
package errfmt

import (
	"unicode"
	"unicode/utf8"
)

// MaxLen caps engine text embedded in error messages.
const MaxLen = 4096

// MaxNameLen caps engine identity strings (short identifiers).
const MaxNameLen = 128

// truncateUTF8 caps s at max bytes, backtracking to a valid UTF-8 boundary.
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	end := limit
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end]
}

// Truncate caps a string at MaxLen bytes with UTF-8-safe truncation.
func Truncate(s string) string {
	return truncateUTF8(s, MaxLen)
}

// SanitizeName validates and truncates an engine-declared name.
// Returns "" for strings containing control characters.
// Validate-then-truncate: control chars are rejected first, then
// rune-safe truncation ensures valid UTF-8 output.
func SanitizeName(raw string) string {
	for _, r := range raw {
		if unicode.IsControl(r) {
			return ""
		}
	}
	return truncateUTF8(raw, MaxNameLen)
}
