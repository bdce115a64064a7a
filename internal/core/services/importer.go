package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driving"
	"github.com/otzar-labs/otzar-cli/internal/logger"
)

// Ensure DatasetImporter implements the interface.
var _ driving.Importer = (*DatasetImporter)(nil)

// DatasetImporter merges extracted source material into the dataset
// files and cross-validates the result.
type DatasetImporter struct {
	lexiconStore driven.LexiconStore
	modernStore  driven.ModernStore
}

// NewDatasetImporter creates an importer over the given stores.
func NewDatasetImporter(lexiconStore driven.LexiconStore, modernStore driven.ModernStore) *DatasetImporter {
	return &DatasetImporter{lexiconStore: lexiconStore, modernStore: modernStore}
}

// ImportLexicon merges new lexical entries into the lexicon file.
// Identifier collisions, against the existing file or within the new
// batch, abort the import before anything is written.
func (i *DatasetImporter) ImportLexicon(ctx context.Context, entries []domain.LexicalEntry) (int, error) {
	existing, err := i.lexiconStore.Load(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("loading lexicon: %w", err)
	}

	seen := make(map[string]bool, len(existing)+len(entries))
	for _, entry := range existing {
		seen[entry.ID] = true
	}
	merged := existing
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return 0, fmt.Errorf("entry %s: %w", entry.ID, err)
		}
		if seen[entry.ID] {
			return 0, &domain.DuplicateIDError{ID: entry.ID}
		}
		seen[entry.ID] = true
		merged = append(merged, entry)
	}

	if err := i.lexiconStore.Save(ctx, merged); err != nil {
		return 0, fmt.Errorf("saving lexicon: %w", err)
	}
	logger.Info("Imported %d lexical entries (%d total)", len(entries), len(merged))
	return len(entries), nil
}

// ImportModern merges new modern dictionary entries into the
// dictionary file, with the same collision rule as the lexicon.
func (i *DatasetImporter) ImportModern(ctx context.Context, entries []domain.ModernEntry) (int, error) {
	existing, err := i.modernStore.Load(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("loading dictionary: %w", err)
	}

	seen := make(map[string]bool, len(existing)+len(entries))
	for _, entry := range existing {
		seen[entry.ID] = true
	}
	merged := existing
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return 0, fmt.Errorf("entry %s: %w", entry.ID, err)
		}
		if seen[entry.ID] {
			return 0, &domain.DuplicateIDError{ID: entry.ID}
		}
		seen[entry.ID] = true
		merged = append(merged, entry)
	}

	if err := i.modernStore.Save(ctx, merged); err != nil {
		return 0, fmt.Errorf("saving dictionary: %w", err)
	}
	logger.Info("Imported %d dictionary entries (%d total)", len(entries), len(merged))
	return len(entries), nil
}

// ValidateDataset cross-checks the dataset files. Load failures
// (duplicates, encoding) are fatal; every dangling biblical_lemma_ids
// reference is collected into the report so one run surfaces them all.
func (i *DatasetImporter) ValidateDataset(ctx context.Context) (*domain.ValidationReport, error) {
	entries, err := i.lexiconStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon: %w", err)
	}
	known := make(map[string]bool, len(entries))
	for _, entry := range entries {
		known[entry.ID] = true
	}

	modern, err := i.modernStore.Load(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}

	report := &domain.ValidationReport{}
	for _, entry := range modern {
		for _, lemmaID := range entry.BiblicalLemmaIDs {
			if !known[lemmaID] {
				report.Add(entry.ID, &domain.DanglingReferenceError{
					LemmaID:      lemmaID,
					ReferencedBy: entry.ID,
				})
			}
		}
	}
	return report, nil
}
