// Package concordance implements the matching, aggregation and
// emission stages of the concordance pipeline.
//
// The Matcher resolves each verse token against the lexicon index.
// A token with no candidates is silently skipped; a token whose
// surface form belongs to several entries (homographs) matches every
// candidate at its position. Ambiguity is deliberately not resolved
// here - there is no morphological disambiguation in this design, and
// downstream tooling must tolerate a token matching more than one
// lemma.
//
// The Aggregator merges match tuples into one OccurrenceRecord per
// (lemma, corpus, verse) triple with sorted, deduplicated positions.
// Emission is all-or-nothing per corpus file and refuses records whose
// lemma identifier does not resolve against the loaded lexicon.
package concordance
