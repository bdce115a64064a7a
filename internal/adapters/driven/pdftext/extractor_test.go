package pdftext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

func writeText(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtract(t *testing.T) {
	path := writeText(t, `BDB Lexicon, page 1

אב father, ancestor
ignored line without a lemma
אבד to perish, be lost

23
אבה to be willing
`)

	entries, err := New(domain.LanguageHebrew).Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "H00001", entries[0].ID)
	assert.Equal(t, "אב", entries[0].Lemma)
	assert.Equal(t, domain.LanguageHebrew, entries[0].Language)
	require.Len(t, entries[0].Definitions, 1)
	assert.Equal(t, "father, ancestor", entries[0].Definitions[0].Gloss)
	assert.Equal(t, "PDF Lexicon", entries[0].Definitions[0].Source)

	assert.Equal(t, "H00003", entries[2].ID)
	assert.Equal(t, "אבה", entries[2].Lemma)
}

func TestExtract_AramaicPrefixAndSource(t *testing.T) {
	path := writeText(t, "אבא father\n")

	ex := New(domain.LanguageAramaic, WithSource("Targum Lexicon"))
	entries, err := ex.Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "A00001", entries[0].ID)
	assert.Equal(t, "Targum Lexicon", entries[0].Definitions[0].Source)
}

func TestExtract_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xc3, 0x28}, 0o644))

	_, err := New(domain.LanguageHebrew).Extract(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrEncoding)
}

func TestExtract_InvalidLanguage(t *testing.T) {
	_, err := New(domain.Language("Klingon")).Extract(context.Background(), "unused")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
