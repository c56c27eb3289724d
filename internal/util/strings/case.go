// Package strings provides case conversion helpers for attribute naming.
package strings

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts CamelCase to snake_case.
// Acronyms collapse to a single segment (HTTPStatus -> http_status).
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 {
			// Underscore at a word boundary: after a lowercase rune, or
			// before the last uppercase rune of an acronym run.
			if unicode.IsLower(runes[i-1]) {
				b.WriteRune('_')
			} else if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// ToStudlyCase converts snake_case, kebab-case, or space-separated words
// to StudlyCase (UpperCamelCase).
func ToStudlyCase(s string) string {
	var b strings.Builder
	upperNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LowerFirst lowercases the first rune of s.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
