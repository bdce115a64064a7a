// Package bleveindex provides full-text search over the dataset's
// glosses using a bleve index on disk.
//
// The index is a derived artefact: it can always be rebuilt from the
// dataset files, so no migration or versioning is attempted. Hebrew
// headwords are indexed as keywords; glosses and etymology go through
// the standard analyser, which is enough for the English-language
// definition text the search targets.
package bleveindex

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	// Register the "ansi" highlighter used by Search.
	_ "github.com/blevesearch/bleve/v2/search/highlight/highlighter/ansi"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/logger"
)

// Ensure Index implements the port.
var _ driven.GlossIndex = (*Index)(nil)

// glossDoc is the indexed shape of a lexicon or dictionary entry.
type glossDoc struct {
	Kind      string `json:"kind"`
	Headword  string `json:"headword"`
	Glosses   string `json:"glosses"`
	Etymology string `json:"etymology,omitempty"`
}

// Index wraps one bleve index over lexicon and dictionary glosses.
type Index struct {
	idx bleve.Index
}

// Open opens the index at path, creating it when absent.
func Open(path string) (*Index, error) {
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, buildMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("opening gloss index %s: %w", path, err)
	}
	return &Index{idx: idx}, nil
}

// buildMapping keeps headwords un-analysed and runs free text through
// the default analyser.
func buildMapping() mapping.IndexMapping {
	headword := bleve.NewTextFieldMapping()
	headword.Analyzer = keyword.Name

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("headword", headword)
	doc.AddFieldMappingsAt("glosses", bleve.NewTextFieldMapping())
	doc.AddFieldMappingsAt("etymology", bleve.NewTextFieldMapping())
	doc.AddFieldMappingsAt("kind", bleve.NewKeywordFieldMapping())

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

// IndexLexicon adds or replaces lexicon entries in the index.
func (i *Index) IndexLexicon(_ context.Context, entries []domain.LexicalEntry) error {
	batch := i.idx.NewBatch()
	for _, entry := range entries {
		glosses := make([]string, 0, len(entry.Definitions))
		for _, def := range entry.Definitions {
			glosses = append(glosses, def.Gloss)
		}
		err := batch.Index(entry.ID, glossDoc{
			Kind:      "lexicon",
			Headword:  entry.Lemma,
			Glosses:   strings.Join(glosses, "; "),
			Etymology: entry.Etymology,
		})
		if err != nil {
			return fmt.Errorf("indexing %s: %w", entry.ID, err)
		}
	}
	if err := i.idx.Batch(batch); err != nil {
		return fmt.Errorf("writing gloss index batch: %w", err)
	}
	logger.Debug("indexed %d lexicon entries", len(entries))
	return nil
}

// IndexModern adds or replaces modern dictionary entries.
func (i *Index) IndexModern(_ context.Context, entries []domain.ModernEntry) error {
	batch := i.idx.NewBatch()
	for _, entry := range entries {
		glosses := make([]string, 0, len(entry.Definitions))
		for _, def := range entry.Definitions {
			glosses = append(glosses, def.Gloss)
		}
		err := batch.Index(entry.ID, glossDoc{
			Kind:     "modern",
			Headword: entry.Word,
			Glosses:  strings.Join(glosses, "; "),
		})
		if err != nil {
			return fmt.Errorf("indexing %s: %w", entry.ID, err)
		}
	}
	if err := i.idx.Batch(batch); err != nil {
		return fmt.Errorf("writing gloss index batch: %w", err)
	}
	logger.Debug("indexed %d dictionary entries", len(entries))
	return nil
}

// Search runs a match query over headwords, glosses and etymology.
func (i *Index) Search(ctx context.Context, query string, limit int) ([]driven.GlossHit, error) {
	if limit <= 0 {
		limit = 10
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, 0, false)
	req.Fields = []string{"headword"}
	req.Highlight = bleve.NewHighlightWithStyle("ansi")
	req.Highlight.AddField("glosses")

	result, err := i.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching gloss index: %w", err)
	}

	hits := make([]driven.GlossHit, 0, len(result.Hits))
	for _, hit := range result.Hits {
		gh := driven.GlossHit{ID: hit.ID, Score: hit.Score}
		if headword, ok := hit.Fields["headword"].(string); ok {
			gh.Headword = headword
		}
		gh.Fragments = append(gh.Fragments, hit.Fragments["glosses"]...)
		hits = append(hits, gh)
	}
	return hits, nil
}

// Close releases the index.
func (i *Index) Close() error {
	return i.idx.Close()
}
