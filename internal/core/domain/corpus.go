package domain

// Corpus identifies one of the three source text collections.
type Corpus string

const (
	// CorpusTanakh is the Hebrew Bible.
	CorpusTanakh Corpus = "Tanakh"

	// CorpusTargums is the Aramaic Targum collection.
	CorpusTargums Corpus = "Targums"

	// CorpusPeshitta is the Syriac Peshitta (Old Testament portion).
	CorpusPeshitta Corpus = "Peshitta"
)

// validCorpora is the closed set of corpus tags.
var validCorpora = map[Corpus]bool{
	CorpusTanakh:   true,
	CorpusTargums:  true,
	CorpusPeshitta: true,
}

// AllCorpora returns the corpora in their conventional order.
func AllCorpora() []Corpus {
	return []Corpus{CorpusTanakh, CorpusTargums, CorpusPeshitta}
}

// IsValid returns true if the corpus tag is one of the known values.
func (c Corpus) IsValid() bool {
	return validCorpora[c]
}

// Verse is one verse of corpus text as produced by a corpus reader.
// Text is the raw verse content; tokenisation and normalisation happen
// downstream so position indices stay anchored to a single policy.
type Verse struct {
	// Ref addresses the verse.
	Ref VerseReference

	// Text is the raw verse text. May be empty, in which case the
	// verse tokenises to nothing and produces no occurrences.
	Text string
}
