// Package domain defines the core business entities for Otzar.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - LexicalEntry: A lexicon headword with definitions and related forms
//   - ModernEntry: A modern-Hebrew dictionary entry
//   - VerseReference: A (book, chapter, verse) address in the canon
//   - Verse: One verse of corpus text
//   - OccurrenceRecord: Positions of a lemma within one verse
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
