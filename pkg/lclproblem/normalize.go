package lclproblem

import "github.com/nclcl/classifier/pkg/label"

// Normalize picks the lexicographically minimum image of p over every
// relabeling permutation of [0, kMax], comparing Active first and Passive
// as a tiebreak after sorting both sides (labels-within-config, then
// config list). Two problems equal under label renaming normalize to the
// same representative.
//
// normalize(normalize(p)) == normalize(p): the minimum over all images of
// an already-minimal problem is itself, since the identity permutation is
// among those searched.
func (p Problem) Normalize() Problem {
	kMax := maxLabel(p)
	if kMax < 0 {
		return p.Clone()
	}

	best := Problem{}
	haveBest := false
	for _, perm := range label.AllPermutations(kMax + 1) {
		cand := Problem{
			Active:  p.Active.MapLabels(perm).Sort(),
			Passive: p.Passive.MapLabels(perm).Sort(),
		}
		if !haveBest || cand.Compare(best) < 0 {
			best = cand
			haveBest = true
		}
	}
	return best
}

func maxLabel(p Problem) int {
	max := -1
	for _, cs := range []label.ConfigurationSet{p.Active, p.Passive} {
		for _, c := range cs {
			for _, l := range c {
				if int(l) > max {
					max = int(l)
				}
			}
		}
	}
	return max
}
