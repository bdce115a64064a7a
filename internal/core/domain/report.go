package domain

import "time"

// BuildReport summarises one concordance build for one corpus.
type BuildReport struct {
	// RunID uniquely identifies the pipeline run the report belongs to.
	RunID string

	// Corpus is the collection that was processed.
	Corpus Corpus

	// VersesProcessed counts verses that were tokenised and matched.
	VersesProcessed int

	// VersesSkipped counts verses dropped as malformed input.
	VersesSkipped int

	// EmptyVerses counts verses whose text tokenised to nothing.
	EmptyVerses int

	// Tokens counts all tokens seen across processed verses.
	Tokens int

	// Matches counts individual (lemma, position) matches before grouping.
	Matches int

	// Records counts emitted occurrence records.
	Records int

	// MalformedErrors lists the per-verse parse failures, in input order.
	MalformedErrors []string

	// Duration is the wall time of the build.
	Duration time.Duration
}

// ValidationIssue is one inconsistency found during cross-file validation.
type ValidationIssue struct {
	// Err is the underlying error (dangling reference, duplicate id, ...).
	Err error

	// Record names the offending record for the report listing.
	Record string
}

// ValidationReport collects every inconsistency discovered in a run, so a
// single pass over the data surfaces all problems at once instead of
// stopping at the first.
type ValidationReport struct {
	// Issues holds the collected failures in discovery order.
	Issues []ValidationIssue
}

// Add appends an issue to the report.
func (r *ValidationReport) Add(record string, err error) {
	r.Issues = append(r.Issues, ValidationIssue{Err: err, Record: record})
}

// OK returns true when no issues were collected.
func (r *ValidationReport) OK() bool {
	return len(r.Issues) == 0
}
