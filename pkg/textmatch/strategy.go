package textmatch

import (
	"strings"
)

// Match describes a successful comparison between a candidate name and a
// reference name.
type Match struct {
	Strategy string
	Score    float64 // 0..1, 1 being an exact match
}

// Strategy is one tier of the ranked matching ladder. Strategies are tried
// in priority order; the first tier that fires wins.
type Strategy interface {
	Name() string
	TryMatch(candidate, reference string) (Match, bool)
}

// Strategies returns the standard ladder, loosest last: exact (case
// insensitive), normalized equality, substring containment either direction,
// word overlap.
func Strategies() []Strategy {
	return []Strategy{
		exactStrategy{},
		normalizedStrategy{},
		containmentStrategy{},
		wordOverlapStrategy{},
	}
}

type exactStrategy struct{}

func (exactStrategy) Name() string { return "exact" }

func (exactStrategy) TryMatch(candidate, reference string) (Match, bool) {
	c := strings.ToLower(strings.TrimSpace(candidate))
	r := strings.ToLower(strings.TrimSpace(reference))
	if c == "" || c != r {
		return Match{}, false
	}
	return Match{Strategy: "exact", Score: 1}, true
}

type normalizedStrategy struct{}

func (normalizedStrategy) Name() string { return "normalized" }

func (normalizedStrategy) TryMatch(candidate, reference string) (Match, bool) {
	c, r := NormalizeName(candidate), NormalizeName(reference)
	if c == "" || c != r {
		return Match{}, false
	}
	return Match{Strategy: "normalized", Score: 1}, true
}

type containmentStrategy struct{}

func (containmentStrategy) Name() string { return "containment" }

func (containmentStrategy) TryMatch(candidate, reference string) (Match, bool) {
	c, r := NormalizeName(candidate), NormalizeName(reference)
	if c == "" || r == "" {
		return Match{}, false
	}
	if !strings.Contains(c, r) && !strings.Contains(r, c) {
		return Match{}, false
	}
	shorter, longer := len(c), len(r)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	return Match{Strategy: "containment", Score: float64(shorter) / float64(longer)}, true
}

type wordOverlapStrategy struct{}

func (wordOverlapStrategy) Name() string { return "word_overlap" }

func (wordOverlapStrategy) TryMatch(candidate, reference string) (Match, bool) {
	ct, rt := Tokens(candidate), Tokens(reference)
	if len(ct) == 0 || len(rt) == 0 {
		return Match{}, false
	}
	overlap := 0
	for _, cw := range ct {
		for _, rw := range rt {
			if tokensOverlap(cw, rw) {
				overlap++
				break
			}
		}
	}
	if overlap == 0 {
		return Match{}, false
	}
	denom := len(ct)
	if len(rt) > denom {
		denom = len(rt)
	}
	return Match{Strategy: "word_overlap", Score: float64(overlap) / float64(denom)}, true
}

// Similarity scores two names on a 0..1 scale: 1 for a normalized exact
// match, the shorter/longer length ratio when one contains the other, and
// the significant-token overlap ratio otherwise.
func Similarity(a, b string) float64 {
	for _, s := range []Strategy{normalizedStrategy{}, containmentStrategy{}, wordOverlapStrategy{}} {
		if m, ok := s.TryMatch(a, b); ok {
			return m.Score
		}
	}
	return 0
}

// BestNameMatch finds the candidate that best matches name using the strict
// techniques only (normalized equality, then containment). The reconciler
// and the deduction engine use this; fuzzier tiers would risk deducting from
// the wrong row. Returns -1 when nothing matches.
func BestNameMatch(name string, candidates []string) int {
	for i, c := range candidates {
		if m, ok := (normalizedStrategy{}).TryMatch(name, c); ok && m.Score == 1 {
			return i
		}
	}
	best, bestScore := -1, 0.0
	for i, c := range candidates {
		if m, ok := (containmentStrategy{}).TryMatch(name, c); ok && m.Score > bestScore {
			best, bestScore = i, m.Score
		}
	}
	return best
}
