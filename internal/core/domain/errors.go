package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateIdentifier indicates two records share an identifier.
	// Fatal at lexicon or dictionary load time: the identifier space
	// must be unique before any matching occurs.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrDanglingReference indicates a record references a lexical-entry
	// id absent from the loaded lexicon. Fatal for that record's
	// emission; collected into a batch validation report.
	ErrDanglingReference = errors.New("dangling lexical reference")

	// ErrMalformedInput indicates raw source text that cannot be
	// segmented into a verse structure. Reported per verse; the corpus
	// run continues.
	ErrMalformedInput = errors.New("malformed input")

	// ErrEncoding indicates input that is not valid UTF-8 or fails
	// Unicode normalisation. Fatal for the affected file.
	ErrEncoding = errors.New("encoding error")

	// ErrUnsupportedType indicates an unknown corpus, module or file type.
	ErrUnsupportedType = errors.New("unsupported type")
)

// DuplicateIDError reports a duplicated identifier at load time.
type DuplicateIDError struct {
	// ID is the duplicated identifier.
	ID string
}

// Error implements the error interface.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate identifier %s", e.ID)
}

// Unwrap makes the error match ErrDuplicateIdentifier.
func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateIdentifier
}

// DanglingReferenceError reports a reference to a missing lexical entry.
type DanglingReferenceError struct {
	// LemmaID is the unresolved lexical-entry identifier.
	LemmaID string

	// ReferencedBy names the record holding the reference, e.g. a
	// modern-dictionary id or a verse reference string.
	ReferencedBy string
}

// Error implements the error interface.
func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling lexical reference %s (referenced by %s)", e.LemmaID, e.ReferencedBy)
}

// Unwrap makes the error match ErrDanglingReference.
func (e *DanglingReferenceError) Unwrap() error {
	return ErrDanglingReference
}

// MalformedVerseError reports one unparseable verse in a corpus source.
type MalformedVerseError struct {
	// Line is the 1-based source line, 0 when unknown.
	Line int

	// Detail describes what was wrong.
	Detail string
}

// Error implements the error interface.
func (e *MalformedVerseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed verse at line %d: %s", e.Line, e.Detail)
	}
	return fmt.Sprintf("malformed verse: %s", e.Detail)
}

// Unwrap makes the error match ErrMalformedInput.
func (e *MalformedVerseError) Unwrap() error {
	return ErrMalformedInput
}
