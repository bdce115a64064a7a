package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerseReferenceValidate(t *testing.T) {
	ref := VerseReference{Book: "Genesis", Chapter: 1, Verse: 1}
	require.NoError(t, ref.Validate())

	tests := []struct {
		name string
		ref  VerseReference
	}{
		{name: "unknown book", ref: VerseReference{Book: "Gensis", Chapter: 1, Verse: 1}},
		{name: "zero chapter", ref: VerseReference{Book: "Genesis", Chapter: 0, Verse: 1}},
		{name: "zero verse", ref: VerseReference{Book: "Genesis", Chapter: 1, Verse: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.ref.Validate(), ErrInvalidInput)
		})
	}
}

func TestVerseReferenceEquality(t *testing.T) {
	a := VerseReference{Book: "Exodus", Chapter: 3, Verse: 14}
	b := VerseReference{Book: "Exodus", Chapter: 3, Verse: 14}
	assert.Equal(t, a, b)
	assert.True(t, a == b)
}

func TestVerseReferenceLess(t *testing.T) {
	gen := VerseReference{Book: "Genesis", Chapter: 50, Verse: 26}
	exo := VerseReference{Book: "Exodus", Chapter: 1, Verse: 1}
	assert.True(t, gen.Less(exo))
	assert.False(t, exo.Less(gen))

	early := VerseReference{Book: "Genesis", Chapter: 1, Verse: 1}
	late := VerseReference{Book: "Genesis", Chapter: 1, Verse: 2}
	assert.True(t, early.Less(late))
}

func TestCanonBooks(t *testing.T) {
	books := CanonBooks()
	require.Len(t, books, 39)
	assert.Equal(t, "Genesis", books[0])
	assert.Equal(t, "Malachi", books[len(books)-1])

	assert.True(t, IsCanonBook("Song of Songs"))
	assert.False(t, IsCanonBook("Revelation"))

	assert.Equal(t, 0, BookOrder("Genesis"))
	assert.Equal(t, -1, BookOrder("Matthew"))
}

func TestOccurrenceRecordValidate(t *testing.T) {
	record := OccurrenceRecord{
		LemmaID:           "H0001",
		Source:            CorpusTanakh,
		Reference:         VerseReference{Book: "Genesis", Chapter: 1, Verse: 1},
		OccurrenceIndices: []int{0, 3},
	}
	require.NoError(t, record.Validate(5))

	t.Run("empty positions", func(t *testing.T) {
		bad := record
		bad.OccurrenceIndices = nil
		assert.ErrorIs(t, bad.Validate(5), ErrInvalidInput)
	})

	t.Run("not strictly increasing", func(t *testing.T) {
		bad := record
		bad.OccurrenceIndices = []int{2, 2}
		assert.ErrorIs(t, bad.Validate(5), ErrInvalidInput)
	})

	t.Run("out of bounds", func(t *testing.T) {
		bad := record
		bad.OccurrenceIndices = []int{0, 5}
		assert.ErrorIs(t, bad.Validate(5), ErrInvalidInput)
	})

	t.Run("bounds check skipped", func(t *testing.T) {
		loose := record
		loose.OccurrenceIndices = []int{0, 100}
		assert.NoError(t, loose.Validate(-1))
	})

	t.Run("bad corpus", func(t *testing.T) {
		bad := record
		bad.Source = "Septuagint"
		assert.ErrorIs(t, bad.Validate(5), ErrInvalidInput)
	})
}

func TestModernEntryValidate(t *testing.T) {
	entry := ModernEntry{ID: "MH00017", Word: "אבא"}
	require.NoError(t, entry.Validate())

	assert.ErrorIs(t, ValidateModernID("H0001"), ErrInvalidInput)
	assert.ErrorIs(t, ValidateModernID("MH"), ErrInvalidInput)
	assert.ErrorIs(t, ValidateModernID("MHxyz"), ErrInvalidInput)
	assert.Equal(t, "MH00009", FormatModernID(9))
}

func TestErrorWrapping(t *testing.T) {
	var err error = &DanglingReferenceError{LemmaID: "H9999", ReferencedBy: "MH00001"}
	assert.ErrorIs(t, err, ErrDanglingReference)
	assert.Contains(t, err.Error(), "H9999")

	err = &DuplicateIDError{ID: "H0001"}
	assert.ErrorIs(t, err, ErrDuplicateIdentifier)

	err = &MalformedVerseError{Line: 12, Detail: "verse before chapter marker"}
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "line 12")
}
