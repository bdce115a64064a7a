// Package lexicon holds the in-memory surface-form index and the JSON
// file stores for the lexicon and the modern dictionary.
//
// The index maps every known surface form - each entry's canonical
// lemma plus all related forms, normalised with the run's policy - to
// the set of lexical-entry identifiers carrying it. Homographs are
// preserved: lookup returns every candidate and ambiguity resolution
// is deliberately left to downstream consumers.
package lexicon
