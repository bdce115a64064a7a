package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driving"
	"github.com/otzar-labs/otzar-cli/internal/hebrew"
	"github.com/otzar-labs/otzar-cli/internal/lexicon"
)

// Ensure Lookup implements the interface.
var _ driving.LookupService = (*Lookup)(nil)

// Lookup resolves lexicon and dictionary entries for the CLI, the TUI
// and the MCP server. The dataset is loaded once and cached for the
// lifetime of the service; builds invalidate nothing because lookup
// tooling runs in its own process.
type Lookup struct {
	lexiconStore driven.LexiconStore
	modernStore  driven.ModernStore
	concordances driven.ConcordanceWriter
	normaliser   *hebrew.Normaliser

	loadOnce sync.Once
	loadErr  error
	entries  map[string]domain.LexicalEntry
	index    *lexicon.Index

	modernOnce sync.Once
	modernErr  error
	modern     []domain.ModernEntry
}

// NewLookup creates a lookup service over the given stores.
func NewLookup(
	lexiconStore driven.LexiconStore,
	modernStore driven.ModernStore,
	concordances driven.ConcordanceWriter,
	normaliser *hebrew.Normaliser,
) *Lookup {
	return &Lookup{
		lexiconStore: lexiconStore,
		modernStore:  modernStore,
		concordances: concordances,
		normaliser:   normaliser,
	}
}

// ByID resolves a lexical entry by identifier.
func (l *Lookup) ByID(ctx context.Context, id string) (*driving.LookupResult, error) {
	if err := l.loadLexicon(ctx); err != nil {
		return nil, err
	}

	entry, ok := l.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: lexical entry %s", domain.ErrNotFound, id)
	}

	occurrences, err := l.occurrencesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	return &driving.LookupResult{Entry: entry, Occurrences: occurrences}, nil
}

// BySurface resolves all entries matching a surface form. The form is
// normalised the same way corpus tokens are, so pointed and
// consonantal spellings resolve alike.
func (l *Lookup) BySurface(ctx context.Context, surface string) ([]driving.LookupResult, error) {
	if err := l.loadLexicon(ctx); err != nil {
		return nil, err
	}

	normalised := l.normaliser.Normalise(surface)
	ids := l.index.Lookup(normalised)
	if len(ids) == 0 {
		return nil, nil
	}

	results := make([]driving.LookupResult, 0, len(ids))
	for _, id := range ids {
		occurrences, err := l.occurrencesFor(ctx, id)
		if err != nil {
			return nil, err
		}
		results = append(results, driving.LookupResult{
			Entry:       l.entries[id],
			Occurrences: occurrences,
		})
	}
	return results, nil
}

// Modern resolves a modern dictionary entry by id or exact word.
func (l *Lookup) Modern(ctx context.Context, key string) (*domain.ModernEntry, error) {
	l.modernOnce.Do(func() {
		l.modern, l.modernErr = l.modernStore.Load(ctx)
	})
	if l.modernErr != nil {
		return nil, l.modernErr
	}

	for i := range l.modern {
		if l.modern[i].ID == key || l.modern[i].Word == key {
			entry := l.modern[i]
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("%w: modern entry %s", domain.ErrNotFound, key)
}

// loadLexicon loads and indexes the lexicon once.
func (l *Lookup) loadLexicon(ctx context.Context) error {
	l.loadOnce.Do(func() {
		entries, err := l.lexiconStore.Load(ctx)
		if err != nil {
			l.loadErr = err
			return
		}
		l.entries = make(map[string]domain.LexicalEntry, len(entries))
		for _, entry := range entries {
			l.entries[entry.ID] = entry
		}
		l.index = lexicon.NewIndex(entries, l.normaliser)
	})
	return l.loadErr
}

// occurrencesFor gathers a lemma's records across every corpus that
// has been built. Corpora without an emitted concordance are skipped.
func (l *Lookup) occurrencesFor(ctx context.Context, id string) ([]domain.OccurrenceRecord, error) {
	var occurrences []domain.OccurrenceRecord
	for _, corpus := range domain.AllCorpora() {
		records, err := l.concordances.Read(ctx, corpus)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s concordance: %w", corpus, err)
		}
		for _, record := range records {
			if record.LemmaID == id {
				occurrences = append(occurrences, record)
			}
		}
	}
	return occurrences, nil
}
