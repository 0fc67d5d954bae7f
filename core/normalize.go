package core

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a token for comparison: it trims, lowercases and
// strips hyphens, underscores and whitespace, so "Big-Data", "big_data" and
// "big data" all become "bigdata". Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
