// Package pdftext imports lexical entries from text extracted out of
// lexicon PDFs.
//
// The extractor works on plain-text dumps (pdftotext or similar), not
// on PDF binaries. Every lexicon has its own typography, so the parse
// is deliberately simple: a line that opens with a run of Hebrew-block
// characters followed by whitespace and a definition starts an entry.
// Lines that do not match are ignored.
package pdftext

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/hebrew"
	"github.com/otzar-labs/otzar-cli/internal/logger"
)

// entryLine matches a lemma in the Hebrew Unicode block followed by a
// definition on the same line.
var entryLine = regexp.MustCompile(`^([\x{0590}-\x{05FF}]+)\s+(.+)$`)

// Extractor parses one extracted-text lexicon file.
type Extractor struct {
	language domain.Language
	source   string
}

// Option adjusts extractor behaviour.
type Option func(*Extractor)

// WithSource sets the attribution recorded on every definition.
func WithSource(source string) Option {
	return func(e *Extractor) { e.source = source }
}

// New creates an extractor assigning entries to the given language.
// The language decides the identifier prefix.
func New(language domain.Language, opts ...Option) *Extractor {
	e := &Extractor{language: language, source: "PDF Lexicon"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the file and returns entries in source order, with
// sequential identifiers in the language's prefix.
func (e *Extractor) Extract(ctx context.Context, path string) ([]domain.LexicalEntry, error) {
	if !e.language.IsValid() {
		return nil, fmt.Errorf("%w: language %q", domain.ErrInvalidInput, e.language)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !hebrew.ValidUTF8(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", domain.ErrEncoding, path)
	}

	var entries []domain.LexicalEntry
	seq := 1

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		m := entryLine.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}

		entries = append(entries, domain.LexicalEntry{
			ID:       domain.FormatEntryID(e.language, seq),
			Lemma:    strings.TrimSpace(norm.NFC.String(m[1])),
			Language: e.language,
			Definitions: []domain.Definition{
				{Gloss: strings.TrimSpace(m[2]), Source: e.source},
			},
		})
		seq++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}

	logger.Info("Extracted %d entries from %s", len(entries), path)
	return entries, nil
}
