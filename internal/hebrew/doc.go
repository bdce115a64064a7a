// Package hebrew provides text normalisation and tokenisation for
// Hebrew and Aramaic corpus text.
//
// Two concerns live here, both pure functions:
//
//   - Normaliser canonicalises a single token or lemma for equality
//     comparison: Unicode NFC, pointing policy, punctuation stripping.
//   - Tokenise splits one verse into surface tokens whose zero-based
//     positions are the slice indices.
//
// The same normalisation must be applied at every boundary where text
// enters the system (lexicon load, corpus load), never only at
// comparison time: mismatched normalisation is the largest source of
// silent matching failure. Normalisation is applied per token and never
// re-segments text, so position indices remain stable.
//
// Known limitations:
//
//   - No morphological analysis; matching is by surface form only.
//   - Syriac-script Peshitta sources must be transliterated to Hebrew
//     script before ingestion; the normaliser handles the Hebrew block
//     (U+0590..U+05FF) plus general punctuation.
//
// All functions are safe for concurrent use by multiple goroutines.
package hebrew
