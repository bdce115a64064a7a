package concordance

import (
	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
	"github.com/otzar-labs/otzar-cli/internal/hebrew"
)

// Matcher resolves verse tokens against the lexicon index.
// It holds no per-verse state and is safe for concurrent use.
type Matcher struct {
	lookup     driven.SurfaceLookup
	normaliser *hebrew.Normaliser
}

// NewMatcher creates a matcher over the given index. The normaliser
// must be the one the index was built with, or surface forms will not
// line up.
func NewMatcher(lookup driven.SurfaceLookup, n *hebrew.Normaliser) *Matcher {
	return &Matcher{lookup: lookup, normaliser: n}
}

// MatchVerse tokenises one verse and returns a match for every
// (candidate entry, token position) pair, plus the verse's token count.
//
// Zero candidates: the token produces nothing - unknown words are not
// errors. One candidate: one match. Several candidates: one match per
// candidate at the same position, by design.
func (m *Matcher) MatchVerse(corpus domain.Corpus, verse domain.Verse) ([]domain.Match, int) {
	tokens := hebrew.Tokenise(verse.Text)
	if len(tokens) == 0 {
		return nil, 0
	}

	var matches []domain.Match
	for pos, token := range tokens {
		normalised := m.normaliser.Normalise(token)
		if normalised == "" {
			continue
		}
		for _, id := range m.lookup.Lookup(normalised) {
			matches = append(matches, domain.Match{
				LemmaID:  id,
				Corpus:   corpus,
				Ref:      verse.Ref,
				Position: pos,
			})
		}
	}
	return matches, len(tokens)
}
