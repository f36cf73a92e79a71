// Package textnorm holds the single normalization applied to tokens,
// stopwords, focus keywords and questions so they compare equal.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize composes s to NFC and lowercases it using German casing rules.
func Normalize(s string) string {
	// Casers carry state, so each call gets its own.
	return cases.Lower(language.German).String(norm.NFC.String(s))
}

// Key normalizes s, trims it and collapses internal whitespace runs to a
// single space.
func Key(s string) string {
	return strings.Join(strings.Fields(Normalize(s)), " ")
}
