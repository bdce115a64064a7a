package lexicon

import (
	"sort"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/hebrew"
)

// Ensure Index implements the lookup port.
var _ driven.SurfaceLookup = (*Index)(nil)

// Index is the in-memory mapping from normalised surface forms to
// candidate lexical-entry identifiers. It is built once per run and is
// read-only afterwards, so it may be shared across worker goroutines
// without synchronisation.
type Index struct {
	forms map[string][]string
	size  int
}

// NewIndex builds an index over the given entries. Every entry
// contributes its canonical lemma and each related form, normalised
// with the same normaliser that verse tokens will pass through.
// Building is idempotent: the same entries yield the same index.
func NewIndex(entries []domain.LexicalEntry, n *hebrew.Normaliser) *Index {
	idx := &Index{forms: make(map[string][]string)}

	for i := range entries {
		for _, form := range entries[i].SurfaceForms() {
			normalised := n.Normalise(form)
			if normalised == "" {
				continue
			}
			idx.forms[normalised] = append(idx.forms[normalised], entries[i].ID)
		}
	}

	// Sort and deduplicate candidates so lookup output never depends
	// on entry iteration order.
	for form, ids := range idx.forms {
		sort.Slice(ids, func(a, b int) bool { return domain.EntryIDLess(ids[a], ids[b]) })
		idx.forms[form] = dedupe(ids)
	}
	idx.size = len(idx.forms)

	return idx
}

// Lookup returns all candidate identifiers for a normalised surface
// form, or nil when the form is unknown. The returned slice must not
// be modified.
func (idx *Index) Lookup(normalised string) []string {
	return idx.forms[normalised]
}

// Len returns the number of distinct surface forms indexed.
func (idx *Index) Len() int {
	return idx.size
}

// dedupe removes adjacent duplicates from a sorted slice in place.
func dedupe(ids []string) []string {
	out := ids[:0]
	for _, id := range ids {
		if len(out) == 0 || out[len(out)-1] != id {
			out = append(out, id)
		}
	}
	return out
}
