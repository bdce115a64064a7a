package mcp

import (
	"context"
	"fmt"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driving"
)

// mockLookupService is a mock implementation of driving.LookupService.
type mockLookupService struct {
	byID      map[string]*driving.LookupResult
	bySurface []driving.LookupResult
	err       error
}

func (m *mockLookupService) ByID(_ context.Context, id string) (*driving.LookupResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if result, ok := m.byID[id]; ok {
		return result, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}

func (m *mockLookupService) BySurface(_ context.Context, _ string) ([]driving.LookupResult, error) {
	return m.bySurface, m.err
}

func (m *mockLookupService) Modern(_ context.Context, _ string) (*domain.ModernEntry, error) {
	return nil, m.err
}

// mockGlossIndex is a mock implementation of driven.GlossIndex.
type mockGlossIndex struct {
	hits []driven.GlossHit
	err  error
}

func (m *mockGlossIndex) IndexLexicon(_ context.Context, _ []domain.LexicalEntry) error {
	return m.err
}

func (m *mockGlossIndex) IndexModern(_ context.Context, _ []domain.ModernEntry) error {
	return m.err
}

func (m *mockGlossIndex) Search(_ context.Context, _ string, _ int) ([]driven.GlossHit, error) {
	return m.hits, m.err
}

func (m *mockGlossIndex) Close() error { return nil }
