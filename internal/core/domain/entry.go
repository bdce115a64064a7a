package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Language identifies the language of a lexical entry.
type Language string

const (
	// LanguageHebrew marks a Biblical Hebrew entry.
	LanguageHebrew Language = "Hebrew"

	// LanguageAramaic marks a Biblical Aramaic entry.
	LanguageAramaic Language = "Aramaic"
)

// validLanguages is the set of valid language tags.
var validLanguages = map[Language]bool{
	LanguageHebrew:  true,
	LanguageAramaic: true,
}

// IsValid returns true if the language tag is one of the known values.
func (l Language) IsValid() bool {
	return validLanguages[l]
}

// IDPrefix returns the lexical-entry identifier prefix for the language.
func (l Language) IDPrefix() string {
	if l == LanguageAramaic {
		return "A"
	}
	return "H"
}

// Definition is a single gloss within a lexical entry, attributed to
// the source it was extracted from.
type Definition struct {
	Gloss  string `json:"gloss"`
	Source string `json:"source"`
}

// LexicalEntry is one headword of the Hebrew/Aramaic lexicon.
// Its identifier is immutable once assigned and is the join target for
// concordance records and modern-dictionary cross references.
type LexicalEntry struct {
	// ID is the language-prefixed identifier, e.g. "H0001" or "A0042".
	ID string

	// Lemma is the canonical dictionary spelling.
	Lemma string

	// Language tags the entry as Hebrew or Aramaic.
	Language Language

	// POS is the part-of-speech tag.
	POS string

	// Definitions holds the ordered glosses with source attribution.
	Definitions []Definition

	// Etymology is optional free text.
	Etymology string

	// RelatedForms lists inflected or otherwise related surface forms.
	// They feed the matching index and are never displayed.
	RelatedForms []string

	// ModernEquivalent is the optional modern-Hebrew spelling.
	ModernEquivalent string

	// Notes is optional free text.
	Notes string

	// Extra preserves unknown JSON fields verbatim on round-trip.
	// The pipeline never interprets them.
	Extra map[string]json.RawMessage
}

// lexicalEntryJSON is the fixed wire shape of a LexicalEntry.
type lexicalEntryJSON struct {
	ID               string       `json:"id"`
	Lemma            string       `json:"lemma"`
	Language         Language     `json:"language"`
	POS              string       `json:"pos"`
	Definitions      []Definition `json:"definitions"`
	Etymology        string       `json:"etymology,omitempty"`
	RelatedForms     []string     `json:"related_forms"`
	ModernEquivalent string       `json:"modern_equivalent,omitempty"`
	Notes            string       `json:"notes,omitempty"`
}

// lexicalEntryKeys are the JSON keys owned by the fixed structure.
var lexicalEntryKeys = []string{
	"id", "lemma", "language", "pos", "definitions",
	"etymology", "related_forms", "modern_equivalent", "notes",
}

// MarshalJSON writes the fixed fields plus any preserved extension fields.
func (e LexicalEntry) MarshalJSON() ([]byte, error) {
	fixed := lexicalEntryJSON{
		ID:               e.ID,
		Lemma:            e.Lemma,
		Language:         e.Language,
		POS:              e.POS,
		Definitions:      e.Definitions,
		Etymology:        e.Etymology,
		RelatedForms:     e.RelatedForms,
		ModernEquivalent: e.ModernEquivalent,
		Notes:            e.Notes,
	}
	return marshalWithExtra(fixed, e.Extra)
}

// UnmarshalJSON reads the fixed fields and stashes unknown keys in Extra.
func (e *LexicalEntry) UnmarshalJSON(data []byte) error {
	var fixed lexicalEntryJSON
	if err := json.Unmarshal(data, &fixed); err != nil {
		return err
	}

	extra, err := unmarshalExtra(data, lexicalEntryKeys)
	if err != nil {
		return err
	}

	e.ID = fixed.ID
	e.Lemma = fixed.Lemma
	e.Language = fixed.Language
	e.POS = fixed.POS
	e.Definitions = fixed.Definitions
	e.Etymology = fixed.Etymology
	e.RelatedForms = fixed.RelatedForms
	e.ModernEquivalent = fixed.ModernEquivalent
	e.Notes = fixed.Notes
	e.Extra = extra
	return nil
}

// Validate checks the structural invariants of the entry.
func (e *LexicalEntry) Validate() error {
	if _, err := ParseEntryID(e.ID); err != nil {
		return err
	}
	if e.Lemma == "" {
		return fmt.Errorf("%w: entry %s has an empty lemma", ErrInvalidInput, e.ID)
	}
	if !e.Language.IsValid() {
		return fmt.Errorf("%w: entry %s has unknown language %q", ErrInvalidInput, e.ID, e.Language)
	}
	if e.Language.IDPrefix() != e.ID[:1] {
		return fmt.Errorf("%w: entry %s prefix does not match language %s", ErrInvalidInput, e.ID, e.Language)
	}
	return nil
}

// SurfaceForms returns the lemma plus every related form.
// This is the set of spellings the matching index covers for the entry.
func (e *LexicalEntry) SurfaceForms() []string {
	forms := make([]string, 0, len(e.RelatedForms)+1)
	forms = append(forms, e.Lemma)
	forms = append(forms, e.RelatedForms...)
	return forms
}

// ParseEntryID validates a lexical-entry identifier and returns its language.
// Valid identifiers are "H" or "A" followed by one or more decimal digits.
func ParseEntryID(id string) (Language, error) {
	if len(id) < 2 {
		return "", fmt.Errorf("%w: lexical entry id %q", ErrInvalidInput, id)
	}

	var lang Language
	switch id[0] {
	case 'H':
		lang = LanguageHebrew
	case 'A':
		lang = LanguageAramaic
	default:
		return "", fmt.Errorf("%w: lexical entry id %q has unknown prefix", ErrInvalidInput, id)
	}

	for _, r := range id[1:] {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: lexical entry id %q is not numeric after prefix", ErrInvalidInput, id)
		}
	}
	return lang, nil
}

// FormatEntryID builds a lexical-entry identifier from a language and a
// sequence number, zero-padded to five digits as in the source data.
func FormatEntryID(lang Language, seq int) string {
	return fmt.Sprintf("%s%05d", lang.IDPrefix(), seq)
}

// marshalWithExtra merges a fixed struct with preserved extension fields.
func marshalWithExtra(fixed any, extra map[string]json.RawMessage) ([]byte, error) {
	base, err := json.Marshal(fixed)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}

	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, owned := merged[k]; !owned {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// unmarshalExtra collects JSON keys not owned by the fixed structure.
// Returns nil when there are none, so round-trips of plain records stay plain.
func unmarshalExtra(data []byte, ownedKeys []string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range ownedKeys {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// EntryIDLess orders identifiers by prefix then numeric value, falling
// back to plain string order for equal-length sequences.
func EntryIDLess(a, b string) bool {
	if len(a) != len(b) && a[:1] == b[:1] {
		// Zero-padded ids mostly share a length; unequal lengths mean
		// unequal magnitudes within the same namespace.
		return len(a) < len(b)
	}
	return strings.Compare(a, b) < 0
}
