// Package usfm reads verses out of USFM-formatted corpus files.
//
// Only the structural markers matter to the pipeline: \id opens a book,
// \c a chapter, \v a verse. Every other marker is ignored and bare
// lines continue the open verse. Verses that cannot be placed (a \v
// before any chapter, a non-numeric chapter number, an unknown book
// code) are reported as malformed input and skipped; the corpus run
// continues.
package usfm

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/hebrew"
	"github.com/otzar-labs/otzar-cli/internal/logger"
)

// Ensure Reader implements the port.
var _ driven.CorpusReader = (*Reader)(nil)

// markerRe matches a USFM marker line: backslash, marker name, content.
var markerRe = regexp.MustCompile(`^\\(\w+)\s*(.*)$`)

// bookCodes maps USFM book identifiers to canonical English names.
var bookCodes = map[string]string{
	"GEN": "Genesis", "EXO": "Exodus", "LEV": "Leviticus", "NUM": "Numbers",
	"DEU": "Deuteronomy", "JOS": "Joshua", "JDG": "Judges", "RUT": "Ruth",
	"1SA": "1 Samuel", "2SA": "2 Samuel", "1KI": "1 Kings", "2KI": "2 Kings",
	"1CH": "1 Chronicles", "2CH": "2 Chronicles", "EZR": "Ezra", "NEH": "Nehemiah",
	"EST": "Esther", "JOB": "Job", "PSA": "Psalms", "PRO": "Proverbs",
	"ECC": "Ecclesiastes", "SNG": "Song of Songs", "ISA": "Isaiah", "JER": "Jeremiah",
	"LAM": "Lamentations", "EZK": "Ezekiel", "DAN": "Daniel", "HOS": "Hosea",
	"JOL": "Joel", "AMO": "Amos", "OBA": "Obadiah", "JON": "Jonah",
	"MIC": "Micah", "NAM": "Nahum", "HAB": "Habakkuk", "ZEP": "Zephaniah",
	"HAG": "Haggai", "ZEC": "Zechariah", "MAL": "Malachi",
}

// Reader streams verses from one USFM file.
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
// An encoding failure is fatal for the whole file.
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

		p := &parser{corpus: r.corpus, out: verses, errs: errs, ctx: ctx}
		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			if ctx.Err() != nil {
				return
			}
			p.line++
			p.handleLine(strings.TrimSpace(scanner.Text()))
		}
		p.flush()

		if err := scanner.Err(); err != nil {
			errs <- fmt.Errorf("scanning %s: %w", r.path, err)
		}
	}()

	return verses, errs
}

// parser tracks the open book/chapter/verse while scanning lines.
type parser struct {
	corpus domain.Corpus
	out    chan<- domain.Verse
	errs   chan<- error
	ctx    context.Context

	line     int
	book     string
	skipBook bool
	chapter  int
	verse    int
	parts    []string
}

// handleLine consumes one trimmed source line.
func (p *parser) handleLine(line string) {
	if line == "" {
		return
	}

	m := markerRe.FindStringSubmatch(line)
	if m == nil {
		// Continuation of the open verse.
		if p.openVerse() {
			p.parts = append(p.parts, line)
		}
		return
	}

	marker, content := m[1], m[2]
	switch marker {
	case "id":
		p.flush()
		p.startBook(content)
	case "c":
		p.flush()
		p.startChapter(content)
	case "v":
		p.flush()
		p.startVerse(content)
	default:
		// Formatting and paragraph markers carry no verse structure.
	}
}

// startBook opens a new book from an \id line.
func (p *parser) startBook(content string) {
	p.book, p.chapter, p.verse, p.skipBook = "", 0, 0, false

	fields := strings.Fields(content)
	if len(fields) == 0 {
		p.report("\\id marker without book code")
		p.skipBook = true
		return
	}

	code := strings.ToUpper(fields[0])
	name, ok := bookCodes[code]
	if !ok {
		p.report(fmt.Sprintf("unknown book code %q", code))
		p.skipBook = true
		return
	}
	p.book = name
}

// startChapter opens a new chapter from a \c line.
func (p *parser) startChapter(content string) {
	p.chapter, p.verse = 0, 0
	if p.skipBook {
		return
	}
	if p.book == "" {
		p.report("\\c marker before any \\id")
		return
	}

	n, err := strconv.Atoi(strings.TrimSpace(content))
	if err != nil || n < 1 {
		p.report(fmt.Sprintf("bad chapter number %q in %s", content, p.book))
		return
	}
	p.chapter = n
}

// startVerse opens a new verse from a \v line. The first field is the
// verse number; any remainder starts the verse text.
func (p *parser) startVerse(content string) {
	p.verse = 0
	if p.skipBook {
		return
	}
	if p.book == "" || p.chapter == 0 {
		p.report("\\v marker outside a chapter")
		return
	}

	fields := strings.SplitN(strings.TrimSpace(content), " ", 2)
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 1 {
		p.report(fmt.Sprintf("bad verse number %q in %s %d", content, p.book, p.chapter))
		return
	}

	p.verse = n
	if len(fields) == 2 && fields[1] != "" {
		p.parts = append(p.parts, fields[1])
	}
}

// openVerse reports whether a verse is currently accepting text.
func (p *parser) openVerse() bool {
	return p.book != "" && p.chapter > 0 && p.verse > 0
}

// flush emits the open verse, if any.
func (p *parser) flush() {
	if !p.openVerse() {
		p.parts = nil
		return
	}

	verse := domain.Verse{
		Ref: domain.VerseReference{
			Book:    p.book,
			Chapter: p.chapter,
			Verse:   p.verse,
		},
		Text: strings.Join(p.parts, " "),
	}
	p.parts = nil
	p.verse = 0

	select {
	case p.out <- verse:
	case <-p.ctx.Done():
	}
}

// report sends one malformed-verse error without stopping the stream.
func (p *parser) report(detail string) {
	logger.Debug("usfm: line %d: %s", p.line, detail)
	err := &domain.MalformedVerseError{Line: p.line, Detail: detail}
	select {
	case p.errs <- err:
	case <-p.ctx.Done():
	}
}
