package hebrew

import (
	"strings"
	"unicode"
)

// Tokenise splits one verse of raw text into surface tokens. A token's
// zero-based position is its index in the returned slice.
//
// The boundary policy is fixed across all three corpora so position
// indices are comparable downstream: tokens break on whitespace, digits
// and punctuation (including maqaf and sof pasuq). Combining marks are
// not boundaries, so pointed tokens come through intact; the Matcher
// normalises each token before lookup.
//
// Empty or separator-only text yields an empty slice.
func Tokenise(text string) []string {
	return strings.FieldsFunc(text, isBoundary)
}

// isBoundary reports whether r separates tokens.
func isBoundary(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsDigit(r) || unicode.IsPunct(r)
}
