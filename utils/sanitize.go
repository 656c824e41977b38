package utils

import "strings"

// NormalizeText trims a free-text field and collapses runs of whitespace.
// Normalization happens once at the API boundary; stored values are plain
// text and rendering concerns stay out of the persistence layer.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeCode normalizes short identifier codes (plates, tax ids,
// employee codes): trimmed, inner whitespace removed, uppercased.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}
