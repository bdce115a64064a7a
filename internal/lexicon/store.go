package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/hebrew"
)

// Ensure the stores implement their ports.
var (
	_ driven.LexiconStore = (*FileStore)(nil)
	_ driven.ModernStore  = (*ModernFileStore)(nil)
)

// FileStore persists the lexicon as a JSON array of entry objects.
type FileStore struct {
	path string
}

// NewFileStore creates a lexicon store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads, validates and returns the full lexicon.
// A duplicated identifier is fatal: matching must not start until the
// identifier space is known to be unique.
func (s *FileStore) Load(_ context.Context) ([]domain.LexicalEntry, error) {
	data, err := readDatasetFile(s.path)
	if err != nil {
		return nil, err
	}

	var entries []domain.LexicalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}

	seen := make(map[string]bool, len(entries))
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, fmt.Errorf("lexicon entry %d: %w", i, err)
		}
		if seen[entries[i].ID] {
			return nil, &domain.DuplicateIDError{ID: entries[i].ID}
		}
		seen[entries[i].ID] = true
	}

	return entries, nil
}

// Save writes the full lexicon atomically via a temp file and rename.
func (s *FileStore) Save(_ context.Context, entries []domain.LexicalEntry) error {
	return writeDatasetFile(s.path, entries)
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// ModernFileStore persists the modern dictionary as a JSON array.
type ModernFileStore struct {
	path string
}

// NewModernFileStore creates a dictionary store backed by the given path.
func NewModernFileStore(path string) *ModernFileStore {
	return &ModernFileStore{path: path}
}

// Load reads, validates and returns the full dictionary.
func (s *ModernFileStore) Load(_ context.Context) ([]domain.ModernEntry, error) {
	data, err := readDatasetFile(s.path)
	if err != nil {
		return nil, err
	}

	var entries []domain.ModernEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}

	seen := make(map[string]bool, len(entries))
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, fmt.Errorf("dictionary entry %d: %w", i, err)
		}
		if seen[entries[i].ID] {
			return nil, &domain.DuplicateIDError{ID: entries[i].ID}
		}
		seen[entries[i].ID] = true
	}

	return entries, nil
}

// Save writes the full dictionary atomically.
func (s *ModernFileStore) Save(_ context.Context, entries []domain.ModernEntry) error {
	return writeDatasetFile(s.path, entries)
}

// Path returns the backing file path.
func (s *ModernFileStore) Path() string {
	return s.path
}

// readDatasetFile reads a dataset file and enforces the encoding
// contract: the whole file must be valid UTF-8 before any record-level
// processing happens.
func readDatasetFile(path string) ([]byte, error) {
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
	return data, nil
}

// writeDatasetFile marshals records to indented UTF-8 JSON and renames
// a temp file into place so a failed write leaves no partial file.
func writeDatasetFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
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
