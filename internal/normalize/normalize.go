// Package normalize holds the text rules that keep category names and keys
// consistent: "Dulces", "dulces" and "  dULceS " all describe the same
// category and must collapse to one key.
package normalize

import (
	"strings"
	"unicode"
)

// Spaces collapses every run of whitespace to a single space and trims the
// ends. An all-whitespace input yields "".
func Spaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// PrettyCategoryName turns raw input into the display form of a category:
// whitespace normalized, lowercased, then only the first letter uppercased.
// Returns "" for input that is empty after normalization, which callers
// treat as an invalid name.
func PrettyCategoryName(input string) string {
	s := strings.ToLower(Spaces(input))
	return upperFirst(s)
}

// CategoryKey derives the dedup/lookup key for a category: whitespace
// normalized and lowercased. Keys are compared, never displayed.
func CategoryKey(input string) string {
	return strings.ToLower(Spaces(input))
}

// CapitalizeFirst normalizes whitespace and uppercases the first letter,
// leaving the rest of the string as typed. Used for product names.
func CapitalizeFirst(s string) string {
	return upperFirst(Spaces(s))
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
