package domain

import "fmt"

// canonBooks lists the canonical English book names in reading order.
// All three corpora address verses through this single canon, so
// references are comparable across Tanakh, Targum and Peshitta output.
var canonBooks = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth",
	"1 Samuel", "2 Samuel", "1 Kings", "2 Kings",
	"1 Chronicles", "2 Chronicles",
	"Ezra", "Nehemiah", "Esther", "Job",
	"Psalms", "Proverbs", "Ecclesiastes", "Song of Songs",
	"Isaiah", "Jeremiah", "Lamentations", "Ezekiel", "Daniel",
	"Hosea", "Joel", "Amos", "Obadiah", "Jonah", "Micah",
	"Nahum", "Habakkuk", "Zephaniah", "Haggai", "Zechariah", "Malachi",
}

// bookOrder maps canonical book names to their reading-order index.
var bookOrder = func() map[string]int {
	m := make(map[string]int, len(canonBooks))
	for i, b := range canonBooks {
		m[b] = i
	}
	return m
}()

// CanonBooks returns the canonical book names in reading order.
// The returned slice must not be modified.
func CanonBooks() []string {
	return canonBooks
}

// IsCanonBook reports whether name is a canonical English book name.
func IsCanonBook(name string) bool {
	_, ok := bookOrder[name]
	return ok
}

// BookOrder returns the reading-order index of a canonical book name,
// or -1 for an unknown book.
func BookOrder(name string) int {
	i, ok := bookOrder[name]
	if !ok {
		return -1
	}
	return i
}

// VerseReference addresses a single verse. Equality is structural.
type VerseReference struct {
	// Book is a canonical English book name.
	Book string `json:"book"`

	// Chapter is the 1-based chapter number.
	Chapter int `json:"chapter"`

	// Verse is the 1-based verse number.
	Verse int `json:"verse"`
}

// Validate checks the reference against the canon and positivity rules.
func (r VerseReference) Validate() error {
	if !IsCanonBook(r.Book) {
		return fmt.Errorf("%w: unknown book %q", ErrInvalidInput, r.Book)
	}
	if r.Chapter < 1 {
		return fmt.Errorf("%w: %s chapter %d", ErrInvalidInput, r.Book, r.Chapter)
	}
	if r.Verse < 1 {
		return fmt.Errorf("%w: %s %d:%d", ErrInvalidInput, r.Book, r.Chapter, r.Verse)
	}
	return nil
}

// String renders the reference in the conventional "Book C:V" form.
func (r VerseReference) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// Less orders references by canon position, then chapter, then verse.
// Unknown books sort after canonical ones so malformed data is visible
// at the end of any sorted listing.
func (r VerseReference) Less(other VerseReference) bool {
	bo, oo := BookOrder(r.Book), BookOrder(other.Book)
	if bo == -1 {
		bo = len(canonBooks)
	}
	if oo == -1 {
		oo = len(canonBooks)
	}
	if bo != oo {
		return bo < oo
	}
	if r.Chapter != other.Chapter {
		return r.Chapter < other.Chapter
	}
	return r.Verse < other.Verse
}
