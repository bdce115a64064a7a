package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ModernIDPrefix is the identifier namespace for modern dictionary entries.
const ModernIDPrefix = "MH"

// ModernDefinition is a gloss within a modern dictionary entry,
// optionally illustrated with an example sentence.
type ModernDefinition struct {
	Gloss   string `json:"gloss"`
	Example string `json:"example,omitempty"`
}

// ModernEntry is one entry of the modern-Hebrew dictionary.
// It may cross-reference the biblical lexicon through BiblicalLemmaIDs;
// an empty set is valid, since not every modern word has a biblical root.
// The concordance pipeline never consumes these entries - they exist for
// downstream lookup tools.
type ModernEntry struct {
	// ID is the "MH"-prefixed identifier, e.g. "MH00017".
	ID string

	// Word is the modern spelling.
	Word string

	// Definitions holds the ordered glosses.
	Definitions []ModernDefinition

	// BiblicalLemmaIDs references the lexicon entries the word derives from.
	BiblicalLemmaIDs []string

	// POS is the part-of-speech tag.
	POS string

	// Notes is optional free text.
	Notes string

	// Extra preserves unknown JSON fields verbatim on round-trip.
	Extra map[string]json.RawMessage
}

// modernEntryJSON is the fixed wire shape of a ModernEntry.
type modernEntryJSON struct {
	ID               string             `json:"id"`
	Word             string             `json:"word"`
	Definitions      []ModernDefinition `json:"definitions"`
	BiblicalLemmaIDs []string           `json:"biblical_lemma_ids"`
	POS              string             `json:"pos"`
	Notes            string             `json:"notes,omitempty"`
}

// modernEntryKeys are the JSON keys owned by the fixed structure.
var modernEntryKeys = []string{
	"id", "word", "definitions", "biblical_lemma_ids", "pos", "notes",
}

// MarshalJSON writes the fixed fields plus any preserved extension fields.
func (e ModernEntry) MarshalJSON() ([]byte, error) {
	fixed := modernEntryJSON{
		ID:               e.ID,
		Word:             e.Word,
		Definitions:      e.Definitions,
		BiblicalLemmaIDs: e.BiblicalLemmaIDs,
		POS:              e.POS,
		Notes:            e.Notes,
	}
	return marshalWithExtra(fixed, e.Extra)
}

// UnmarshalJSON reads the fixed fields and stashes unknown keys in Extra.
func (e *ModernEntry) UnmarshalJSON(data []byte) error {
	var fixed modernEntryJSON
	if err := json.Unmarshal(data, &fixed); err != nil {
		return err
	}

	extra, err := unmarshalExtra(data, modernEntryKeys)
	if err != nil {
		return err
	}

	e.ID = fixed.ID
	e.Word = fixed.Word
	e.Definitions = fixed.Definitions
	e.BiblicalLemmaIDs = fixed.BiblicalLemmaIDs
	e.POS = fixed.POS
	e.Notes = fixed.Notes
	e.Extra = extra
	return nil
}

// Validate checks the structural invariants of the entry.
func (e *ModernEntry) Validate() error {
	if err := ValidateModernID(e.ID); err != nil {
		return err
	}
	if e.Word == "" {
		return fmt.Errorf("%w: entry %s has an empty word", ErrInvalidInput, e.ID)
	}
	return nil
}

// ValidateModernID checks a modern-dictionary identifier:
// the "MH" prefix followed by one or more decimal digits.
func ValidateModernID(id string) error {
	if !strings.HasPrefix(id, ModernIDPrefix) || len(id) <= len(ModernIDPrefix) {
		return fmt.Errorf("%w: modern entry id %q", ErrInvalidInput, id)
	}
	for _, r := range id[len(ModernIDPrefix):] {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: modern entry id %q is not numeric after prefix", ErrInvalidInput, id)
		}
	}
	return nil
}

// FormatModernID builds a modern-dictionary identifier from a sequence
// number, zero-padded to five digits as in the source data.
func FormatModernID(seq int) string {
	return fmt.Sprintf("%s%05d", ModernIDPrefix, seq)
}
