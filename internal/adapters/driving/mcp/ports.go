package mcp

import (
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup resolves lexical entries and their occurrences.
	Lookup driving.LookupService

	// GlossIndex serves full-text gloss search. Optional; the
	// search_glosses tool reports an error when absent.
	GlossIndex driven.GlossIndex
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	return nil
}
