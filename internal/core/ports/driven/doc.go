// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to function:
//
//   - CorpusReader: Streams verses out of a corpus source file
//   - LexiconStore: Loads and saves the lexicon file
//   - ModernStore: Loads and saves the modern dictionary file
//   - ConcordanceWriter: Persists one corpus's occurrence records
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - GlossIndex: Full-text search over glosses (bleve). Without it,
//     the search commands are disabled; the build pipeline is unaffected.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
