package hebrew

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Hebrew-block code points with special roles in normalisation.
const (
	cantillationFirst = '֑' // HEBREW ACCENT ETNAHTA
	cantillationLast  = '֯' // HEBREW MARK MASORA CIRCLE

	pointingFirst = 'ְ' // HEBREW POINT SHEVA
	pointingLast  = 'ֽ' // HEBREW POINT METEG
	rafe          = 'ֿ' // HEBREW POINT RAFE
	shinDot       = 'ׁ' // HEBREW POINT SHIN DOT
	sinDot        = 'ׂ' // HEBREW POINT SIN DOT
	qamatsQatan   = 'ׇ' // HEBREW POINT QAMATS QATAN

	// Maqaf joins words in pointed texts; the tokeniser treats it as a
	// separator, and the normaliser drops any instance that survives.
	Maqaf = '־' // HEBREW PUNCTUATION MAQAF
)

// Normaliser canonicalises raw Hebrew/Aramaic text into a comparable
// form. The zero value keeps vowel pointing; use New with options to
// change the policy. A Normaliser is immutable after construction.
type Normaliser struct {
	keepPointing bool
}

// Option configures a Normaliser.
type Option func(*Normaliser)

// WithPointing keeps vowel points (niqqud) in normalised output.
// Cantillation marks are always stripped. Consonantal corpora cannot
// match pointed lemmata, so the default strips pointing on both sides.
func WithPointing() Option {
	return func(n *Normaliser) {
		n.keepPointing = true
	}
}

// New creates a Normaliser with the given options.
// The default policy strips cantillation and vowel pointing.
func New(opts ...Option) *Normaliser {
	n := &Normaliser{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalise returns the canonical form of s: Unicode NFC, cantillation
// removed, pointing removed per policy, punctuation removed, surrounding
// whitespace trimmed. It is a pure function and idempotent: normalising
// an already-normalised string returns it unchanged.
func (n *Normaliser) Normalise(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = strings.Map(n.mapRune, s)
	return strings.TrimSpace(s)
}

// mapRune drops runes that must not take part in equality comparison.
func (n *Normaliser) mapRune(r rune) rune {
	switch {
	case r >= cantillationFirst && r <= cantillationLast:
		return -1
	case !n.keepPointing && isPointing(r):
		return -1
	case unicode.IsPunct(r):
		// Covers maqaf, sof pasuq, paseq, geresh/gershayim and all
		// general punctuation.
		return -1
	}
	return r
}

// isPointing reports whether r is a vowel point or reading aid.
func isPointing(r rune) bool {
	if r >= pointingFirst && r <= pointingLast {
		return true
	}
	switch r {
	case rafe, shinDot, sinDot, qamatsQatan:
		return true
	}
	return false
}

// ValidUTF8 reports whether the raw file content is well-formed UTF-8.
// Corpus and lexicon readers check this once per file before any
// per-verse processing.
func ValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}
