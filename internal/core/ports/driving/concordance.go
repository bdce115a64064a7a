package driving

import (
	"context"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

// ConcordanceBuilder runs the concordance pipeline for one or more corpora.
type ConcordanceBuilder interface {
	// Build tokenises, matches and aggregates one corpus, then emits
	// its concordance file. Returns the build report. Fatal errors
	// (encoding, dangling references) leave no partial output for the
	// corpus.
	Build(ctx context.Context, corpus domain.Corpus) (*domain.BuildReport, error)

	// BuildAll runs Build for every configured corpus in order,
	// stopping at the first fatal error. Corpora already emitted keep
	// their files; the failed corpus leaves none.
	BuildAll(ctx context.Context) ([]*domain.BuildReport, error)
}
