package concordance

import (
	"sort"

	"github.com/otzar-labs/otzar-cli/internal/core/domain"
)

// groupKey identifies one output record.
type groupKey struct {
	lemmaID string
	corpus  domain.Corpus
	ref     domain.VerseReference
}

// Aggregate groups match tuples into occurrence records: one record per
// (lemma, corpus, verse) triple, its position list sorted and
// deduplicated. The output is fully deterministic - record order and
// position order never depend on map iteration or input ordering.
func Aggregate(matches []domain.Match) []domain.OccurrenceRecord {
	if len(matches) == 0 {
		return nil
	}

	groups := make(map[groupKey][]int)
	for _, m := range matches {
		key := groupKey{lemmaID: m.LemmaID, corpus: m.Corpus, ref: m.Ref}
		groups[key] = append(groups[key], m.Position)
	}

	records := make([]domain.OccurrenceRecord, 0, len(groups))
	for key, positions := range groups {
		sort.Ints(positions)
		records = append(records, domain.OccurrenceRecord{
			LemmaID:           key.lemmaID,
			Source:            key.corpus,
			Reference:         key.ref,
			OccurrenceIndices: dedupeInts(positions),
		})
	}

	sort.Slice(records, func(a, b int) bool {
		return records[a].Less(&records[b])
	})
	return records
}

// dedupeInts removes adjacent duplicates from a sorted slice in place.
func dedupeInts(positions []int) []int {
	out := positions[:0]
	for _, p := range positions {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}
