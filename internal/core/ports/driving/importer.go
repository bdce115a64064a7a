package driving

import (
	"context"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

// Importer brings extracted source material into the dataset files.
type Importer interface {
	// ImportLexicon merges newly extracted lexical entries into the
	// lexicon file. Identifier collisions with existing entries are
	// fatal (domain.ErrDuplicateIdentifier). Returns the number of
	// entries added.
	ImportLexicon(ctx context.Context, entries []domain.LexicalEntry) (int, error)

	// ImportModern merges newly extracted modern dictionary entries
	// into the dictionary file, with the same collision rule.
	ImportModern(ctx context.Context, entries []domain.ModernEntry) (int, error)

	// ValidateDataset cross-checks the dataset: unique identifiers and
	// resolvable biblical_lemma_ids in the modern dictionary. All
	// inconsistencies are collected into one report per run.
	ValidateDataset(ctx context.Context) (*domain.ValidationReport, error)
}
