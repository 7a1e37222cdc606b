package lclproblem

import (
	"github.com/mitchellh/hashstructure"

	"github.com/nclcl/classifier/pkg/label"
)

// EnumerateClass forms Powerset(dA,k) x Powerset(dP,k), purges each
// candidate, discards candidates where either side became empty, and
// deduplicates the survivors. The dA == dP case does not special-case a
// shared factor; purge is cheap enough that re-purging the shared side
// for every pairing is not worth the bookkeeping.
func EnumerateClass(dA, dP, k int) []Problem {
	activeSets := label.Powerset(dA, k)
	passiveSets := label.Powerset(dP, k)

	seen := newProblemSet()
	var out []Problem
	for _, a := range activeSets {
		for _, p := range passiveSets {
			cand := Problem{Active: a.Clone(), Passive: p.Clone()}.Purge()
			if cand.Empty() {
				continue
			}
			if seen.addIfNew(cand) {
				out = append(out, cand)
			}
		}
	}
	return out
}

// EnumerateNormalizedClass runs EnumerateClass then Normalize on each
// representative, then deduplicates again so that the result contains
// pairwise-distinct, self-normalized problems.
func EnumerateNormalizedClass(dA, dP, k int) []Problem {
	raw := EnumerateClass(dA, dP, k)
	seen := newProblemSet()
	var out []Problem
	for _, p := range raw {
		n := p.Normalize()
		if seen.addIfNew(n) {
			out = append(out, n)
		}
	}
	return out
}

// problemSet deduplicates Problems using a hashstructure-derived key with
// an exact-equality fallback list per bucket, guarding against hash
// collisions between distinct problems.
type problemSet struct {
	buckets map[uint64][]Problem
}

func newProblemSet() *problemSet {
	return &problemSet{buckets: make(map[uint64][]Problem)}
}

// addIfNew reports whether p was not already present, inserting it if so.
func (s *problemSet) addIfNew(p Problem) bool {
	h, err := hashstructure.Hash(struct {
		Active  label.ConfigurationSet
		Passive label.ConfigurationSet
	}{p.Active, p.Passive}, nil)
	if err != nil {
		// hashstructure only fails on unsupported field types; our
		// configuration sets are plain slices of ints, so fall back
		// to a zero bucket rather than propagating an error from a
		// pure in-memory dedup step.
		h = 0
	}
	for _, existing := range s.buckets[h] {
		if existing.Equal(p) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], p)
	return true
}
