package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantLang Language
		wantErr  bool
	}{
		{name: "hebrew", id: "H0001", wantLang: LanguageHebrew},
		{name: "aramaic", id: "A0042", wantLang: LanguageAramaic},
		{name: "unpadded", id: "H7", wantLang: LanguageHebrew},
		{name: "empty", id: "", wantErr: true},
		{name: "prefix only", id: "H", wantErr: true},
		{name: "unknown prefix", id: "X0001", wantErr: true},
		{name: "modern prefix", id: "MH0001", wantErr: true},
		{name: "non numeric", id: "H00a1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, err := ParseEntryID(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLang, lang)
		})
	}
}

func TestFormatEntryID(t *testing.T) {
	assert.Equal(t, "H00001", FormatEntryID(LanguageHebrew, 1))
	assert.Equal(t, "A00123", FormatEntryID(LanguageAramaic, 123))
	assert.Equal(t, "H123456", FormatEntryID(LanguageHebrew, 123456))
}

func TestLexicalEntryValidate(t *testing.T) {
	entry := LexicalEntry{
		ID:       "H0001",
		Lemma:    "אָב",
		Language: LanguageHebrew,
		POS:      "noun",
	}
	require.NoError(t, entry.Validate())

	missing := entry
	missing.Lemma = ""
	assert.ErrorIs(t, missing.Validate(), ErrInvalidInput)

	badLang := entry
	badLang.Language = "Ugaritic"
	assert.ErrorIs(t, badLang.Validate(), ErrInvalidInput)

	mismatch := entry
	mismatch.Language = LanguageAramaic
	assert.ErrorIs(t, mismatch.Validate(), ErrInvalidInput)
}

func TestLexicalEntrySurfaceForms(t *testing.T) {
	entry := LexicalEntry{
		ID:           "H0001",
		Lemma:        "אָב",
		Language:     LanguageHebrew,
		RelatedForms: []string{"אבינו", "אבות"},
	}

	forms := entry.SurfaceForms()
	assert.Equal(t, []string{"אָב", "אבינו", "אבות"}, forms)
}

func TestLexicalEntryJSONRoundTrip(t *testing.T) {
	raw := []byte(`{
		"id": "H0001",
		"lemma": "אָב",
		"language": "Hebrew",
		"pos": "noun",
		"definitions": [{"gloss": "father", "source": "BDB"}],
		"related_forms": ["אבינו"],
		"gematria": 3,
		"custom": {"strongs": "H1"}
	}`)

	var entry LexicalEntry
	require.NoError(t, json.Unmarshal(raw, &entry))

	assert.Equal(t, "H0001", entry.ID)
	assert.Equal(t, "אָב", entry.Lemma)
	assert.Equal(t, LanguageHebrew, entry.Language)
	require.Len(t, entry.Definitions, 1)
	assert.Equal(t, "father", entry.Definitions[0].Gloss)

	// Unknown keys survive untouched in the sidecar.
	require.Contains(t, entry.Extra, "gematria")
	require.Contains(t, entry.Extra, "custom")

	out, err := json.Marshal(entry)
	require.NoError(t, err)

	var echoed map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &echoed))
	assert.JSONEq(t, "3", string(echoed["gematria"]))
	assert.JSONEq(t, `{"strongs": "H1"}`, string(echoed["custom"]))
}

func TestLexicalEntryJSONNoExtra(t *testing.T) {
	entry := LexicalEntry{
		ID:          "H0002",
		Lemma:       "בַּיִת",
		Language:    LanguageHebrew,
		POS:         "noun",
		Definitions: []Definition{{Gloss: "house", Source: "BDB"}},
	}

	out, err := json.Marshal(entry)
	require.NoError(t, err)

	var echoed LexicalEntry
	require.NoError(t, json.Unmarshal(out, &echoed))
	assert.Nil(t, echoed.Extra)
	assert.Equal(t, entry.ID, echoed.ID)
	assert.Equal(t, entry.Definitions, echoed.Definitions)
}

func TestEntryIDLess(t *testing.T) {
	assert.True(t, EntryIDLess("H0001", "H0002"))
	assert.True(t, EntryIDLess("A0001", "H0001"))
	assert.True(t, EntryIDLess("H0999", "H10000"))
	assert.False(t, EntryIDLess("H0002", "H0002"))
}
