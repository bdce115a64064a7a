// Package osis reads verses out of OSIS XML corpus files.
//
// The reader only cares about <verse> elements carrying an osisID
// attribute of the form "Gen.1.1"; the surrounding document structure
// (divs, titles, milestones) is walked but not interpreted. Verses
// with an osisID that cannot be resolved are reported as malformed
// input and skipped.
package osis

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/hebrew"
	"github.com/otzar-labs/otzar-cli/internal/logger"
)

// Ensure Reader implements the port.
var _ driven.CorpusReader = (*Reader)(nil)

// osisBooks maps OSIS book abbreviations to canonical English names.
var osisBooks = map[string]string{
	"Gen": "Genesis", "Exod": "Exodus", "Lev": "Leviticus", "Num": "Numbers",
	"Deut": "Deuteronomy", "Josh": "Joshua", "Judg": "Judges", "Ruth": "Ruth",
	"1Sam": "1 Samuel", "2Sam": "2 Samuel", "1Kgs": "1 Kings", "2Kgs": "2 Kings",
	"1Chr": "1 Chronicles", "2Chr": "2 Chronicles", "Ezra": "Ezra", "Neh": "Nehemiah",
	"Esth": "Esther", "Job": "Job", "Ps": "Psalms", "Prov": "Proverbs",
	"Eccl": "Ecclesiastes", "Song": "Song of Songs", "Isa": "Isaiah", "Jer": "Jeremiah",
	"Lam": "Lamentations", "Ezek": "Ezekiel", "Dan": "Daniel", "Hos": "Hosea",
	"Joel": "Joel", "Amos": "Amos", "Obad": "Obadiah", "Jonah": "Jonah",
	"Mic": "Micah", "Nah": "Nahum", "Hab": "Habakkuk", "Zeph": "Zephaniah",
	"Hag": "Haggai", "Zech": "Zechariah", "Mal": "Malachi",
}

// Reader streams verses from one OSIS XML file.
type Reader struct {
	corpus domain.Corpus
	path   string
}

// New creates a reader for the given corpus and source file.
func New(corpus domain.Corpus, path string) *Reader {
	return &Reader{corpus: corpus, path: path}
}

// Corpus returns the collection this reader was configured for.
func (r *Reader) Corpus() domain.Corpus {
	return r.corpus
}

// Validate checks the file exists and is valid UTF-8.
func (r *Reader) Validate(_ context.Context) error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", r.path, err)
	}
	if !hebrew.ValidUTF8(data) {
		return fmt.Errorf("%w: %s is not valid UTF-8", domain.ErrEncoding, r.path)
	}
	return nil
}

// Verses streams the file's verses in document order.
func (r *Reader) Verses(ctx context.Context) (<-chan domain.Verse, <-chan error) {
	verses := make(chan domain.Verse)
	errs := make(chan error, 1)

	go func() {
		defer close(verses)
		defer close(errs)

		file, err := os.Open(r.path)
		if err != nil {
			errs <- fmt.Errorf("opening %s: %w", r.path, err)
			return
		}
		defer file.Close()

		dec := xml.NewDecoder(file)
		s := &stream{corpus: r.corpus, out: verses, errs: errs, ctx: ctx}

		for {
			if ctx.Err() != nil {
				return
			}
			tok, err := dec.Token()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					errs <- fmt.Errorf("parsing %s: %w", r.path, err)
				}
				s.flush()
				return
			}
			s.handleToken(dec, tok)
		}
	}()

	return verses, errs
}

// stream accumulates text between verse boundaries.
type stream struct {
	corpus domain.Corpus
	out    chan<- domain.Verse
	errs   chan<- error
	ctx    context.Context

	ref       domain.VerseReference
	open      bool
	milestone bool
	parts     []string
}

// handleToken consumes one XML token from the document.
func (s *stream) handleToken(dec *xml.Decoder, tok xml.Token) {
	switch t := tok.(type) {
	case xml.StartElement:
		if t.Name.Local != "verse" {
			return
		}
		// Both container verses (<verse osisID="...">text</verse>) and
		// milestone pairs (sID/eID) open on the osisID-carrying tag.
		if id := attr(t, "osisID"); id != "" {
			s.flush()
			s.openVerse(id, dec.InputOffset())
			s.milestone = attr(t, "sID") != ""
		} else if attr(t, "eID") != "" {
			s.flush()
		}
	case xml.EndElement:
		// Milestone tags are self-closing; their text lives between the
		// sID and eID tags, so only container verses close here.
		if t.Name.Local == "verse" && !s.milestone {
			s.flush()
		}
	case xml.CharData:
		if s.open {
			if text := strings.TrimSpace(string(t)); text != "" {
				s.parts = append(s.parts, text)
			}
		}
	}
}

// openVerse resolves an osisID like "Gen.1.1" and starts collecting.
func (s *stream) openVerse(osisID string, offset int64) {
	ref, err := parseOsisID(osisID)
	if err != nil {
		logger.Debug("osis: offset %d: %v", offset, err)
		malformed := &domain.MalformedVerseError{Line: int(offset), Detail: err.Error()}
		select {
		case s.errs <- malformed:
		case <-s.ctx.Done():
		}
		return
	}
	s.ref = ref
	s.open = true
}

// flush emits the open verse, if any.
func (s *stream) flush() {
	if !s.open {
		return
	}
	verse := domain.Verse{Ref: s.ref, Text: strings.Join(s.parts, " ")}
	s.open = false
	s.parts = nil

	select {
	case s.out <- verse:
	case <-s.ctx.Done():
	}
}

// parseOsisID turns "Gen.1.1" into a verse reference.
func parseOsisID(id string) (domain.VerseReference, error) {
	parts := strings.Split(id, ".")
	if len(parts) != 3 {
		return domain.VerseReference{}, fmt.Errorf("malformed osisID %q", id)
	}

	book, ok := osisBooks[parts[0]]
	if !ok {
		return domain.VerseReference{}, fmt.Errorf("unknown OSIS book %q", parts[0])
	}
	chapter, err := strconv.Atoi(parts[1])
	if err != nil || chapter < 1 {
		return domain.VerseReference{}, fmt.Errorf("bad chapter in osisID %q", id)
	}
	verse, err := strconv.Atoi(parts[2])
	if err != nil || verse < 1 {
		return domain.VerseReference{}, fmt.Errorf("bad verse in osisID %q", id)
	}

	return domain.VerseReference{Book: book, Chapter: chapter, Verse: verse}, nil
}

// attr returns the named attribute's value, or "".
func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
