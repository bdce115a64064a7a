package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driving"
)

// setupTestServices installs mock services and returns a cleanup
// function restoring the previous ones.
func setupTestServices() func() {
	oldBuilder := builderService
	oldLookup := lookupService
	oldImporter := importerSvc
	oldConfig := configStore
	oldGloss := glossIndex

	builderService = &mockBuilder{}
	lookupService = &mockLookup{}
	importerSvc = &mockImporter{}
	glossIndex = &mockGlossIndex{}

	return func() {
		builderService = oldBuilder
		lookupService = oldLookup
		importerSvc = oldImporter
		configStore = oldConfig
		glossIndex = oldGloss
	}
}

func testEntry() domain.LexicalEntry {
	return domain.LexicalEntry{
		ID:       "H00001",
		Lemma:    "אב",
		Language: domain.LanguageHebrew,
		POS:      "noun",
		Definitions: []domain.Definition{
			{Gloss: "father", Source: "BDB"},
		},
	}
}

func testOccurrence() domain.OccurrenceRecord {
	return domain.OccurrenceRecord{
		LemmaID: "H00001",
		Source:  domain.CorpusTanakh,
		Reference: domain.VerseReference{
			Book: "Genesis", Chapter: 2, Verse: 24,
		},
		OccurrenceIndices: []int{3},
	}
}

type mockBuilder struct {
	err error
}

func (m *mockBuilder) Build(_ context.Context, corpus domain.Corpus) (*domain.BuildReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.BuildReport{
		RunID:           "test-run",
		Corpus:          corpus,
		VersesProcessed: 3,
		Tokens:          12,
		Matches:         5,
		Records:         4,
		Duration:        time.Millisecond,
	}, nil
}

func (m *mockBuilder) BuildAll(ctx context.Context) ([]*domain.BuildReport, error) {
	report, err := m.Build(ctx, domain.CorpusTanakh)
	if err != nil {
		return nil, err
	}
	return []*domain.BuildReport{report}, nil
}

type mockLookup struct {
	err error
}

func (m *mockLookup) ByID(_ context.Context, id string) (*driving.LookupResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if id != "H00001" {
		return nil, fmt.Errorf("%w: lexical entry %s", domain.ErrNotFound, id)
	}
	return &driving.LookupResult{
		Entry:       testEntry(),
		Occurrences: []domain.OccurrenceRecord{testOccurrence()},
	}, nil
}

func (m *mockLookup) BySurface(_ context.Context, surface string) ([]driving.LookupResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if surface != "אב" {
		return nil, nil
	}
	return []driving.LookupResult{
		{Entry: testEntry(), Occurrences: []domain.OccurrenceRecord{testOccurrence()}},
	}, nil
}

func (m *mockLookup) Modern(_ context.Context, key string) (*domain.ModernEntry, error) {
	if key != "MH00001" && key != "שלום" {
		return nil, fmt.Errorf("%w: modern entry %s", domain.ErrNotFound, key)
	}
	return &domain.ModernEntry{
		ID:   "MH00001",
		Word: "שלום",
		Definitions: []domain.ModernDefinition{
			{Gloss: "peace; greeting"},
		},
		BiblicalLemmaIDs: []string{"H00001"},
	}, nil
}

type mockImporter struct {
	issues []domain.ValidationIssue
}

func (m *mockImporter) ImportLexicon(_ context.Context, entries []domain.LexicalEntry) (int, error) {
	return len(entries), nil
}

func (m *mockImporter) ImportModern(_ context.Context, entries []domain.ModernEntry) (int, error) {
	return len(entries), nil
}

func (m *mockImporter) ValidateDataset(_ context.Context) (*domain.ValidationReport, error) {
	return &domain.ValidationReport{Issues: m.issues}, nil
}

type mockGlossIndex struct{}

func (m *mockGlossIndex) IndexLexicon(_ context.Context, _ []domain.LexicalEntry) error { return nil }

func (m *mockGlossIndex) IndexModern(_ context.Context, _ []domain.ModernEntry) error { return nil }

func (m *mockGlossIndex) Search(_ context.Context, query string, _ int) ([]driven.GlossHit, error) {
	if query == "nothing" {
		return nil, nil
	}
	return []driven.GlossHit{
		{ID: "H00001", Headword: "אב", Score: 1.5, Fragments: []string{"<father>"}},
	}, nil
}

func (m *mockGlossIndex) Close() error { return nil }
