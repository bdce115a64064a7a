package driven

import (
	"context"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

// LexiconStore persists the lexicon file (lexicon_entries.json).
type LexiconStore interface {
	// Load reads and validates the full lexicon. Duplicate identifiers
	// are fatal (domain.ErrDuplicateIdentifier): the identifier space
	// must be unique before any matching occurs.
	Load(ctx context.Context) ([]domain.LexicalEntry, error)

	// Save writes the full lexicon atomically, preserving any extension
	// fields carried by the entries.
	Save(ctx context.Context, entries []domain.LexicalEntry) error

	// Path returns the backing file path.
	Path() string
}

// ModernStore persists the modern dictionary file
// (modern_hebrew_dictionary.json).
type ModernStore interface {
	// Load reads and validates the dictionary. Duplicate identifiers
	// are fatal, as for the lexicon.
	Load(ctx context.Context) ([]domain.ModernEntry, error)

	// Save writes the full dictionary atomically.
	Save(ctx context.Context, entries []domain.ModernEntry) error

	// Path returns the backing file path.
	Path() string
}

// SurfaceLookup resolves a normalised surface form to candidate
// lexical-entry identifiers. The lexicon index implements this; the
// Matcher and the lookup service consume it.
type SurfaceLookup interface {
	// Lookup returns all candidate identifiers for the normalised form,
	// sorted and deduplicated. Nil for an unknown form: a token absent
	// from the lexicon is not an error.
	Lookup(normalised string) []string
}
