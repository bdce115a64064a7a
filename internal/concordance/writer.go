package concordance

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/hebrew"
)

// Ensure FileWriter implements the port.
var _ driven.ConcordanceWriter = (*FileWriter)(nil)

// FileWriter persists concordance files, one JSON array per corpus,
// named after the corpus (e.g. tanakh_concordance.json).
//
// Referential validation against the loaded lexicon happens in the
// build service before Write is called, so a single run reports every
// dangling reference at once; the writer still refuses structurally
// invalid records as a last line of defence.
type FileWriter struct {
	dir string
}

// NewFileWriter creates a writer that emits into the given directory.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// Path returns the output file path for a corpus.
func (w *FileWriter) Path(corpus domain.Corpus) string {
	name := strings.ToLower(string(corpus)) + "_concordance.json"
	return filepath.Join(w.dir, name)
}

// Write replaces the corpus's concordance file. The records are
// validated, marshalled in full, then moved into place with a rename:
// an interrupted or failed emission leaves no partial file, and a
// regenerated concordance fully replaces its prior records.
func (w *FileWriter) Write(ctx context.Context, corpus domain.Corpus, records []domain.OccurrenceRecord) error {
	if !corpus.IsValid() {
		return fmt.Errorf("%w: corpus %q", domain.ErrInvalidInput, corpus)
	}

	for i := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := records[i].Validate(-1); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if records[i].Source != corpus {
			return fmt.Errorf("%w: record %d belongs to corpus %s", domain.ErrInvalidInput, i, records[i].Source)
		}
	}

	if records == nil {
		records = []domain.OccurrenceRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding concordance: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", w.dir, err)
	}

	path := w.Path(corpus)
	tmp, err := os.CreateTemp(w.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}

	return os.Rename(tmp.Name(), path)
}

// Read loads a previously emitted concordance for a corpus.
func (w *FileWriter) Read(_ context.Context, corpus domain.Corpus) ([]domain.OccurrenceRecord, error) {
	path := w.Path(corpus)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !hebrew.ValidUTF8(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", domain.ErrEncoding, path)
	}

	var records []domain.OccurrenceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

// ValidateReferences checks every record's lemma identifier against the
// set of loaded lexicon identifiers. All dangling references are
// collected into the report, never just the first, so one run surfaces
// every inconsistency.
func ValidateReferences(records []domain.OccurrenceRecord, known map[string]bool) *domain.ValidationReport {
	report := &domain.ValidationReport{}
	for i := range records {
		if !known[records[i].LemmaID] {
			report.Add(
				fmt.Sprintf("%s at %s", records[i].LemmaID, records[i].Reference),
				&domain.DanglingReferenceError{
					LemmaID:      records[i].LemmaID,
					ReferencedBy: records[i].Reference.String(),
				},
			)
		}
	}
	return report
}
