package usfm

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

// collect drains both channels until the reader finishes.
func collect(t *testing.T, r *Reader) ([]domain.Verse, []error) {
	t.Helper()

	versesCh, errsCh := r.Verses(context.Background())

	var verses []domain.Verse
	var errs []error
	for versesCh != nil || errsCh != nil {
		select {
		case v, ok := <-versesCh:
			if !ok {
				versesCh = nil
				continue
			}
			verses = append(verses, v)
		case err, ok := <-errsCh:
			if !ok {
				errsCh = nil
				continue
			}
			errs = append(errs, err)
		}
	}
	return verses, errs
}

func writeUSFM(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.usfm")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReaderVerses(t *testing.T) {
	path := writeUSFM(t, `\id GEN Tanakh
\h בראשית
\c 1
\v 1 בראשית ברא אלהים
\v 2 והארץ היתה תהו
\c 2
\v 1 ויכלו השמים
`)

	r := New(domain.CorpusTanakh, path)
	require.NoError(t, r.Validate(context.Background()))
	assert.Equal(t, domain.CorpusTanakh, r.Corpus())

	verses, errs := collect(t, r)
	assert.Empty(t, errs)
	require.Len(t, verses, 3)

	assert.Equal(t, domain.VerseReference{Book: "Genesis", Chapter: 1, Verse: 1}, verses[0].Ref)
	assert.Equal(t, "בראשית ברא אלהים", verses[0].Text)
	assert.Equal(t, domain.VerseReference{Book: "Genesis", Chapter: 2, Verse: 1}, verses[2].Ref)
}

func TestReaderVerses_ContinuationLines(t *testing.T) {
	path := writeUSFM(t, `\id EXO
\c 3
\v 14
אהיה אשר
אהיה
`)

	verses, errs := collect(t, New(domain.CorpusTanakh, path))
	assert.Empty(t, errs)
	require.Len(t, verses, 1)
	assert.Equal(t, "Exodus", verses[0].Ref.Book)
	assert.Equal(t, "אהיה אשר אהיה", verses[0].Text)
}

func TestReaderVerses_MalformedSkipsVerseNotCorpus(t *testing.T) {
	path := writeUSFM(t, `\id GEN
\v 1 verse before any chapter
\c 1
\v x bad number
\v 2 בראשית
`)

	verses, errs := collect(t, New(domain.CorpusTanakh, path))

	// The two malformed verses are reported and skipped; the good one
	// still comes through.
	require.Len(t, errs, 2)
	for _, err := range errs {
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	}
	require.Len(t, verses, 1)
	assert.Equal(t, 2, verses[0].Ref.Verse)
}

func TestReaderVerses_UnknownBookCode(t *testing.T) {
	path := writeUSFM(t, `\id XYZ
\c 1
\v 1 lost text
\id GEN
\c 1
\v 1 בראשית
`)

	verses, errs := collect(t, New(domain.CorpusTanakh, path))

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], domain.ErrMalformedInput)

	// The unknown book is skipped wholesale without further noise.
	require.Len(t, verses, 1)
	assert.Equal(t, "Genesis", verses[0].Ref.Book)
}

func TestReaderVerses_EmptyVerseText(t *testing.T) {
	path := writeUSFM(t, `\id GEN
\c 1
\v 1
\v 2 ברא
`)

	verses, errs := collect(t, New(domain.CorpusTanakh, path))
	assert.Empty(t, errs)
	require.Len(t, verses, 2)

	// An empty verse is structurally fine; it simply tokenises to
	// nothing downstream and produces no occurrences.
	assert.Equal(t, "", verses[0].Text)
}

func TestReaderValidate_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.usfm")
	require.NoError(t, os.WriteFile(path, []byte{0xc3, 0x28, '\n'}, 0o644))

	err := New(domain.CorpusTanakh, path).Validate(context.Background())
	assert.ErrorIs(t, err, domain.ErrEncoding)
}

func TestReaderValidate_MissingFile(t *testing.T) {
	err := New(domain.CorpusTanakh, "/nonexistent/corpus.usfm").Validate(context.Background())
	assert.Error(t, err)
}
