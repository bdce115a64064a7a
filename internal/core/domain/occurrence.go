package domain

import "fmt"

// Match records that the token at Position in the verse at Ref matched
// the lexical entry LemmaID. One token may produce several matches when
// its surface form is shared by homograph entries.
type Match struct {
	// LemmaID is the matched lexical-entry identifier.
	LemmaID string

	// Corpus is the source collection the verse came from.
	Corpus Corpus

	// Ref addresses the verse.
	Ref VerseReference

	// Position is the zero-based token index within the verse.
	Position int
}

// OccurrenceRecord collects every position at which one lemma occurs in
// one verse of one corpus. For a given (lemma, corpus, reference) triple
// at most one record exists in a corpus output file.
type OccurrenceRecord struct {
	// LemmaID references a LexicalEntry in the loaded lexicon.
	LemmaID string `json:"lemma_id"`

	// Source is the corpus the occurrences were found in.
	Source Corpus `json:"source"`

	// Reference addresses the verse.
	Reference VerseReference `json:"reference"`

	// OccurrenceIndices are the zero-based token positions, strictly
	// increasing, non-empty, each valid against the verse tokenisation.
	OccurrenceIndices []int `json:"occurrence_indices"`
}

// Validate checks the record's structural invariants. tokenCount is the
// verse's token count; pass a negative value to skip the bounds check
// (for records read back from disk without the source text at hand).
func (r *OccurrenceRecord) Validate(tokenCount int) error {
	if _, err := ParseEntryID(r.LemmaID); err != nil {
		return err
	}
	if !r.Source.IsValid() {
		return fmt.Errorf("%w: unknown corpus %q", ErrInvalidInput, r.Source)
	}
	if err := r.Reference.Validate(); err != nil {
		return err
	}
	if len(r.OccurrenceIndices) == 0 {
		return fmt.Errorf("%w: %s at %s has no positions", ErrInvalidInput, r.LemmaID, r.Reference)
	}

	prev := -1
	for _, idx := range r.OccurrenceIndices {
		if idx <= prev {
			return fmt.Errorf("%w: %s at %s positions not strictly increasing", ErrInvalidInput, r.LemmaID, r.Reference)
		}
		if tokenCount >= 0 && idx >= tokenCount {
			return fmt.Errorf("%w: %s at %s position %d exceeds token count %d", ErrInvalidInput, r.LemmaID, r.Reference, idx, tokenCount)
		}
		prev = idx
	}
	return nil
}

// Less gives the deterministic output order for concordance files:
// canon position, chapter, verse, then lemma identifier.
func (r *OccurrenceRecord) Less(other *OccurrenceRecord) bool {
	if r.Reference != other.Reference {
		return r.Reference.Less(other.Reference)
	}
	return EntryIDLess(r.LemmaID, other.LemmaID)
}
