package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon_entries.json")
	store := NewFileStore(path)
	ctx := context.Background()

	entries := testEntries()
	require.NoError(t, store.Save(ctx, entries))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(entries))
	assert.Equal(t, "H0001", loaded[0].ID)
	assert.Equal(t, "אָב", loaded[0].Lemma)
	assert.Equal(t, []string{"אבינו", "אבות"}, loaded[0].RelatedForms)
}

func TestFileStoreLoad_Missing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileStoreLoad_DuplicateID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon_entries.json")
	data := `[
		{"id": "H0001", "lemma": "אב", "language": "Hebrew", "pos": "noun", "definitions": [], "related_forms": []},
		{"id": "H0001", "lemma": "בית", "language": "Hebrew", "pos": "noun", "definitions": [], "related_forms": []}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentifier)
}

func TestFileStoreLoad_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon_entries.json")
	require.NoError(t, os.WriteFile(path, []byte{'[', 0xff, 0xfe, ']'}, 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrEncoding)
}

func TestFileStoreLoad_PreservesExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon_entries.json")
	data := `[{"id": "H0001", "lemma": "אב", "language": "Hebrew", "pos": "noun",
		"definitions": [], "related_forms": [], "strongs": "H1"}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	ctx := context.Background()
	store := NewFileStore(path)

	entries, err := store.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, entries[0].Extra, "strongs")

	// Round-trip keeps the extension field verbatim.
	require.NoError(t, store.Save(ctx, entries))
	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `"H1"`, string(reloaded[0].Extra["strongs"]))
}

func TestModernFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modern_hebrew_dictionary.json")
	store := NewModernFileStore(path)
	ctx := context.Background()

	entries := []domain.ModernEntry{
		{
			ID:          "MH00001",
			Word:        "אבא",
			Definitions: []domain.ModernDefinition{{Gloss: "dad", Example: "אבא שלי"}},
			// Cross reference into the biblical lexicon.
			BiblicalLemmaIDs: []string{"H0001"},
			POS:              "noun",
		},
		{
			ID:   "MH00002",
			Word: "טלפון",
			// No biblical root - an empty reference set is valid.
			BiblicalLemmaIDs: []string{},
			POS:              "noun",
		},
	}
	require.NoError(t, store.Save(ctx, entries))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, []string{"H0001"}, loaded[0].BiblicalLemmaIDs)
	assert.Empty(t, loaded[1].BiblicalLemmaIDs)
}

func TestModernFileStoreLoad_DuplicateID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modern_hebrew_dictionary.json")
	data := `[
		{"id": "MH00001", "word": "אבא", "definitions": [], "biblical_lemma_ids": [], "pos": "noun"},
		{"id": "MH00001", "word": "אמא", "definitions": [], "biblical_lemma_ids": [], "pos": "noun"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := NewModernFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentifier)
}

func TestSave_NoPartialFileOnExistingData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon_entries.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testEntries()))

	// The write goes through a temp file; nothing but the target file
	// remains afterwards.
	dirEntries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, dirEntries, 1)
	assert.Equal(t, "lexicon_entries.json", dirEntries[0].Name())
}
