package osis

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

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

func writeOSIS(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReaderVerses_ContainerForm(t *testing.T) {
	path := writeOSIS(t, `<?xml version="1.0" encoding="UTF-8"?>
<osis><osisText>
  <div type="book" osisID="Gen">
    <chapter osisID="Gen.1">
      <verse osisID="Gen.1.1">בראשית ברא אלהים</verse>
      <verse osisID="Gen.1.2">והארץ היתה תהו</verse>
    </chapter>
  </div>
</osisText></osis>`)

	r := New(domain.CorpusTargums, path)
	require.NoError(t, r.Validate(context.Background()))

	verses, errs := collect(t, r)
	assert.Empty(t, errs)
	require.Len(t, verses, 2)
	assert.Equal(t, domain.VerseReference{Book: "Genesis", Chapter: 1, Verse: 1}, verses[0].Ref)
	assert.Equal(t, "בראשית ברא אלהים", verses[0].Text)
	assert.Equal(t, 2, verses[1].Ref.Verse)
}

func TestReaderVerses_MilestoneForm(t *testing.T) {
	path := writeOSIS(t, `<osis><osisText>
  <verse osisID="Ps.23.1" sID="Ps.23.1"/>מזמור לדוד<verse eID="Ps.23.1"/>
  <verse osisID="Ps.23.2" sID="Ps.23.2"/>בנאות דשא<verse eID="Ps.23.2"/>
</osisText></osis>`)

	verses, errs := collect(t, New(domain.CorpusTanakh, path))
	assert.Empty(t, errs)
	require.Len(t, verses, 2)
	assert.Equal(t, "Psalms", verses[0].Ref.Book)
	assert.Equal(t, "מזמור לדוד", verses[0].Text)
	assert.Equal(t, "בנאות דשא", verses[1].Text)
}

func TestReaderVerses_InterleavedMarkup(t *testing.T) {
	path := writeOSIS(t, `<osis><osisText>
  <verse osisID="Exod.3.14"><w lemma="H0001">אהיה</w> אשר <w>אהיה</w></verse>
</osisText></osis>`)

	verses, errs := collect(t, New(domain.CorpusTanakh, path))
	assert.Empty(t, errs)
	require.Len(t, verses, 1)
	assert.Equal(t, "אהיה אשר אהיה", verses[0].Text)
}

func TestReaderVerses_BadOsisID(t *testing.T) {
	path := writeOSIS(t, `<osis><osisText>
  <verse osisID="NotABook.1.1">lost</verse>
  <verse osisID="Gen.zero.1">lost</verse>
  <verse osisID="Gen.1.1">בראשית</verse>
</osisText></osis>`)

	verses, errs := collect(t, New(domain.CorpusTanakh, path))

	require.Len(t, errs, 2)
	for _, err := range errs {
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	}
	require.Len(t, verses, 1)
	assert.Equal(t, "Genesis", verses[0].Ref.Book)
}

func TestReaderVerses_MalformedXML(t *testing.T) {
	path := writeOSIS(t, `<osis><osisText><verse osisID="Gen.1.1">בראשית`)

	verses, errs := collect(t, New(domain.CorpusTanakh, path))

	// The open verse is flushed before the parse error surfaces.
	require.Len(t, verses, 1)
	assert.Equal(t, "בראשית", verses[0].Text)
	require.Len(t, errs, 1)
	assert.NotErrorIs(t, errs[0], domain.ErrMalformedInput)
}

func TestReaderValidate_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.xml")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, '<'}, 0o644))

	err := New(domain.CorpusTanakh, path).Validate(context.Background())
	assert.ErrorIs(t, err, domain.ErrEncoding)
}
