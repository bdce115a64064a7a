package driven

import (
	"context"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

// GlossHit is one full-text search result over the dataset's glosses.
type GlossHit struct {
	// ID is the matched entry identifier (lexicon or modern namespace).
	ID string

	// Headword is the lemma or modern word of the matched entry.
	Headword string

	// Score is the engine's relevance score.
	Score float64

	// Fragments holds highlighted gloss fragments, when available.
	Fragments []string
}

// GlossIndex provides full-text search over lexicon and modern
// dictionary glosses. It serves downstream lookup tooling only; the
// concordance pipeline does not depend on it.
type GlossIndex interface {
	// IndexLexicon adds or replaces lexicon entries in the index.
	IndexLexicon(ctx context.Context, entries []domain.LexicalEntry) error

	// IndexModern adds or replaces modern dictionary entries.
	IndexModern(ctx context.Context, entries []domain.ModernEntry) error

	// Search runs a match query over headwords, glosses and etymology.
	Search(ctx context.Context, query string, limit int) ([]GlossHit, error)

	// Close releases index resources.
	Close() error
}
