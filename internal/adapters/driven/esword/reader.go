package esword

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/logger"
)

// Reader extracts dictionary entries from one e-Sword module file.
type Reader struct {
	path string
}

// New creates a reader for the given module file.
func New(path string) *Reader {
	return &Reader{path: path}
}

// clean applies NFC and trims; headwords keep their pointing and
// glosses keep their punctuation, so the aggressive token normaliser
// stays out of the import path.
func clean(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Extract reads every dictionary row out of the module and converts it
// to a modern entry. Identifiers are assigned sequentially in row
// order, so re-running an import over the same module is stable.
func (r *Reader) Extract(ctx context.Context) ([]domain.ModernEntry, error) {
	strip, err := stripperFor(r.path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", r.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening module %s: %w", r.path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT word, definition FROM entries")
	if err != nil {
		// Some modules name the table with different casing.
		rows, err = db.QueryContext(ctx, "SELECT Word, Definition FROM Entries")
		if err != nil {
			return nil, fmt.Errorf("querying module %s: %w", r.path, err)
		}
	}
	defer rows.Close()

	var entries []domain.ModernEntry
	seq := 1
	for rows.Next() {
		var word, definition string
		if err := rows.Scan(&word, &definition); err != nil {
			return nil, fmt.Errorf("scanning module row: %w", err)
		}

		headword := clean(word)
		if headword == "" {
			logger.Debug("esword: skipping row with empty headword")
			continue
		}

		entries = append(entries, domain.ModernEntry{
			ID:   domain.FormatModernID(seq),
			Word: headword,
			Definitions: []domain.ModernDefinition{
				{Gloss: clean(strip(definition))},
			},
		})
		seq++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading module %s: %w", r.path, err)
	}

	logger.Info("Extracted %d entries from %s", len(entries), filepath.Base(r.path))
	return entries, nil
}

// stripperFor picks the markup stripper for a module file extension.
func stripperFor(path string) (func(string) string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dctx", ".lexx":
		return rtfToText, nil
	case ".dcti", ".lexi":
		return stripHTML, nil
	default:
		return nil, fmt.Errorf("%w: unsupported module type %s",
			domain.ErrUnsupportedType, filepath.Ext(path))
	}
}
