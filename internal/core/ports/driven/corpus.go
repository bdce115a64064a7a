package driven

import (
	"context"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

// CorpusReader streams verses out of one corpus source file.
// Each source format (USFM, OSIS) implements this interface.
type CorpusReader interface {
	// Corpus returns the collection this reader was configured for.
	Corpus() domain.Corpus

	// Validate checks the source is readable and well-formed enough to
	// attempt a run: the file exists and its content is valid UTF-8.
	// An encoding failure here is fatal for the whole file.
	Validate(ctx context.Context) error

	// Verses streams the source's verses in document order.
	// Returns a verse channel and an error channel. Per-verse parse
	// failures (domain.ErrMalformedInput) are sent on the error channel
	// and the affected verse is skipped; the stream continues. Both
	// channels close when the source is exhausted or ctx is cancelled.
	Verses(ctx context.Context) (<-chan domain.Verse, <-chan error)
}
