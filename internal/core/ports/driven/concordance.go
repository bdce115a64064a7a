package driven

import (
	"context"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

// ConcordanceWriter persists one corpus's aggregated occurrence records.
type ConcordanceWriter interface {
	// Write replaces the corpus's concordance file with the given
	// records. Emission is all-or-nothing: on any error, including
	// referential validation failure, no partial file remains.
	Write(ctx context.Context, corpus domain.Corpus, records []domain.OccurrenceRecord) error

	// Read loads a previously emitted concordance for a corpus.
	// Used by lookup tooling; returns domain.ErrNotFound when the
	// corpus has not been built.
	Read(ctx context.Context, corpus domain.Corpus) ([]domain.OccurrenceRecord, error)

	// Path returns the output file path for a corpus.
	Path(corpus domain.Corpus) string
}
