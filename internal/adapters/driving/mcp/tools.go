package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/otzar-labs/otzar-cli/internal/core/ports/driving"
)

// LookupInput is the input schema for the lookup_lemma tool.
type LookupInput struct {
	Word string `json:"word" jsonschema:"a Hebrew/Aramaic surface form or a lexical-entry id such as H00001"`
}

// EntryOutput is one resolved lexical entry.
type EntryOutput struct {
	ID          string             `json:"id"`
	Lemma       string             `json:"lemma"`
	Language    string             `json:"language"`
	POS         string             `json:"pos,omitempty"`
	Glosses     []string           `json:"glosses"`
	Occurrences []OccurrenceOutput `json:"occurrences"`
}

// OccurrenceOutput is one concordance record of an entry.
type OccurrenceOutput struct {
	Corpus    string `json:"corpus"`
	Reference string `json:"reference"`
	Positions []int  `json:"positions"`
}

// LookupOutput is the output schema for the lookup_lemma tool.
type LookupOutput struct {
	Entries []EntryOutput `json:"entries"`
	Count   int           `json:"count"`
}

// SearchInput is the input schema for the search_glosses tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"free-text query over the English glosses"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchHitOutput is one gloss search result.
type SearchHitOutput struct {
	ID       string  `json:"id"`
	Headword string  `json:"headword"`
	Score    float64 `json:"score"`
}

// SearchOutput is the output schema for the search_glosses tool.
type SearchOutput struct {
	Hits  []SearchHitOutput `json:"hits"`
	Count int               `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_lemma",
		Description: "Look up a Hebrew/Aramaic word in the lexicon and list its concordance occurrences",
	}, s.handleLookup)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_glosses",
		Description: "Full-text search over lexicon and dictionary glosses",
	}, s.handleSearch)
}

// handleLookup handles the lookup_lemma tool invocation. An id-shaped
// word resolves directly; anything else is treated as a surface form
// and may return several homograph entries.
func (s *Server) handleLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	var results []driving.LookupResult

	if result, err := s.ports.Lookup.ByID(ctx, input.Word); err == nil {
		results = []driving.LookupResult{*result}
	} else {
		bySurface, err := s.ports.Lookup.BySurface(ctx, input.Word)
		if err != nil {
			return nil, LookupOutput{}, err
		}
		results = bySurface
	}

	output := LookupOutput{
		Entries: make([]EntryOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		entry := results[i].Entry
		out := EntryOutput{
			ID:       entry.ID,
			Lemma:    entry.Lemma,
			Language: string(entry.Language),
			POS:      entry.POS,
		}
		for _, def := range entry.Definitions {
			out.Glosses = append(out.Glosses, def.Gloss)
		}
		for _, occ := range results[i].Occurrences {
			out.Occurrences = append(out.Occurrences, OccurrenceOutput{
				Corpus:    string(occ.Source),
				Reference: occ.Reference.String(),
				Positions: occ.OccurrenceIndices,
			})
		}
		output.Entries[i] = out
	}

	return nil, output, nil
}

// handleSearch handles the search_glosses tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if s.ports.GlossIndex == nil {
		return nil, SearchOutput{}, errors.New("gloss index not configured; run otzar search index first")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	hits, err := s.ports.GlossIndex.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("searching glosses: %w", err)
	}

	output := SearchOutput{
		Hits:  make([]SearchHitOutput, len(hits)),
		Count: len(hits),
	}
	for i, hit := range hits {
		output.Hits[i] = SearchHitOutput{
			ID:       hit.ID,
			Headword: hit.Headword,
			Score:    hit.Score,
		}
	}
	return nil, output, nil
}
