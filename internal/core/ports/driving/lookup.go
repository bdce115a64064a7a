package driving

import (
	"context"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

// LookupResult pairs a lexical entry with the occurrences known for it.
type LookupResult struct {
	// Entry is the resolved lexicon entry.
	Entry domain.LexicalEntry

	// Occurrences holds the entry's concordance records across the
	// corpora that have been built, in deterministic output order.
	Occurrences []domain.OccurrenceRecord
}

// LookupService resolves lexicon entries for interactive tooling.
type LookupService interface {
	// ByID resolves a lexical entry by identifier.
	// Returns domain.ErrNotFound for an unknown id.
	ByID(ctx context.Context, id string) (*LookupResult, error)

	// BySurface resolves all entries matching a surface form, applying
	// the run's normalisation first. Homographs yield several results.
	BySurface(ctx context.Context, surface string) ([]LookupResult, error)

	// Modern resolves a modern dictionary entry by id or exact word.
	Modern(ctx context.Context, key string) (*domain.ModernEntry, error)
}
