package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/otzar-labs/otzar-cli/internal/concordance"
	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driving"
	"github.com/otzar-labs/otzar-cli/internal/hebrew"
	"github.com/otzar-labs/otzar-cli/internal/lexicon"
	"github.com/otzar-labs/otzar-cli/internal/logger"
)

// Ensure Builder implements the interface.
var _ driving.ConcordanceBuilder = (*Builder)(nil)

// Builder runs the concordance pipeline: load lexicon, stream verses,
// tokenise and match in parallel, aggregate, validate, emit.
type Builder struct {
	lexiconStore driven.LexiconStore
	writer       driven.ConcordanceWriter
	normaliser   *hebrew.Normaliser
	readers      map[domain.Corpus]driven.CorpusReader
	order        []domain.Corpus
	workers      int
}

// NewBuilder creates a builder over the given stores. Readers are
// registered per corpus with AddReader; BuildAll runs them in
// registration order.
func NewBuilder(
	lexiconStore driven.LexiconStore,
	writer driven.ConcordanceWriter,
	normaliser *hebrew.Normaliser,
	workers int,
) *Builder {
	if workers <= 0 {
		workers = 1
	}
	return &Builder{
		lexiconStore: lexiconStore,
		writer:       writer,
		normaliser:   normaliser,
		readers:      make(map[domain.Corpus]driven.CorpusReader),
		workers:      workers,
	}
}

// AddReader registers the source reader for a corpus. A corpus can
// only be registered once; later registrations replace the reader but
// keep the original build order.
func (b *Builder) AddReader(reader driven.CorpusReader) {
	corpus := reader.Corpus()
	if _, seen := b.readers[corpus]; !seen {
		b.order = append(b.order, corpus)
	}
	b.readers[corpus] = reader
}

// Build runs the pipeline for one corpus and emits its concordance.
func (b *Builder) Build(ctx context.Context, corpus domain.Corpus) (*domain.BuildReport, error) {
	reader, ok := b.readers[corpus]
	if !ok {
		return nil, fmt.Errorf("%w: no source configured for corpus %s", domain.ErrNotFound, corpus)
	}

	start := time.Now()
	report := &domain.BuildReport{RunID: uuid.New().String(), Corpus: corpus}

	// The lexicon load is fatal on duplicate identifiers: matching
	// against an ambiguous identifier space would corrupt the output.
	entries, err := b.lexiconStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon: %w", err)
	}
	index := lexicon.NewIndex(entries, b.normaliser)
	matcher := concordance.NewMatcher(index, b.normaliser)
	logger.Info("Loaded %d lexicon entries (%d surface forms) for %s",
		len(entries), index.Len(), corpus)

	// Encoding problems surface before any verse is processed.
	if err := reader.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating corpus %s: %w", corpus, err)
	}

	matches, err := b.matchCorpus(ctx, matcher, reader, report)
	if err != nil {
		return nil, err
	}

	records := concordance.Aggregate(matches)
	report.Matches = len(matches)
	report.Records = len(records)

	// Every emitted lemma_id must resolve against the lexicon that
	// produced it. All dangling references are reported in one pass,
	// and any at all aborts the emission.
	known := make(map[string]bool, len(entries))
	for _, entry := range entries {
		known[entry.ID] = true
	}
	if validation := concordance.ValidateReferences(records, known); !validation.OK() {
		for _, issue := range validation.Issues {
			logger.Warn("%s: %v", issue.Record, issue.Err)
		}
		return nil, fmt.Errorf("%w: %d unresolved references in %s output",
			domain.ErrDanglingReference, len(validation.Issues), corpus)
	}

	if err := b.writer.Write(ctx, corpus, records); err != nil {
		return nil, fmt.Errorf("writing concordance for %s: %w", corpus, err)
	}

	report.Duration = time.Since(start)
	logger.Info("Built %s: %d verses, %d matches, %d records in %s",
		corpus, report.VersesProcessed, report.Matches, report.Records, report.Duration)
	return report, nil
}

// BuildAll builds every registered corpus in registration order,
// stopping at the first fatal error.
func (b *Builder) BuildAll(ctx context.Context) ([]*domain.BuildReport, error) {
	var reports []*domain.BuildReport
	for _, corpus := range b.order {
		report, err := b.Build(ctx, corpus)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// matchCorpus streams the corpus's verses through the matcher on the
// worker pool. Matching a verse is pure, so the collection order does
// not matter: aggregation sorts everything afterwards.
func (b *Builder) matchCorpus(
	ctx context.Context,
	matcher *concordance.Matcher,
	reader driven.CorpusReader,
	report *domain.BuildReport,
) ([]domain.Match, error) {
	versesCh, errsCh := reader.Verses(ctx)

	pool := newWorkerPool(b.workers)
	pool.start(ctx)

	var mu sync.Mutex
	var matches []domain.Match
	var fatal error

	for versesCh != nil || errsCh != nil {
		select {
		case <-ctx.Done():
			pool.close()
			return nil, ctx.Err()

		case verse, ok := <-versesCh:
			if !ok {
				versesCh = nil
				continue
			}
			if err := pool.submit(func(_ context.Context) {
				verseMatches, tokens := matcher.MatchVerse(reader.Corpus(), verse)
				mu.Lock()
				defer mu.Unlock()
				matches = append(matches, verseMatches...)
				report.VersesProcessed++
				report.Tokens += tokens
				if tokens == 0 {
					report.EmptyVerses++
				}
			}); err != nil {
				pool.close()
				return nil, err
			}

		case err, ok := <-errsCh:
			if !ok {
				errsCh = nil
				continue
			}
			if errors.Is(err, domain.ErrMalformedInput) {
				// Malformed verses are skipped, never fatal for the run.
				mu.Lock()
				report.VersesSkipped++
				report.MalformedErrors = append(report.MalformedErrors, err.Error())
				mu.Unlock()
				logger.Debug("skipping malformed verse: %v", err)
				continue
			}
			// Anything else on the error channel aborts the build.
			fatal = err
		}

		if fatal != nil {
			pool.close()
			return nil, fmt.Errorf("reading corpus %s: %w", reader.Corpus(), fatal)
		}
	}

	pool.close()
	return matches, nil
}
