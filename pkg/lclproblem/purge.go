package lclproblem

import "github.com/nclcl/classifier/pkg/label"

// Purge repeatedly drops configurations whose labels lack a partner on the
// opposite side, until the label sets of both sides agree (a fixpoint). A
// side may become empty; callers must check Empty() after purging.
//
// purge(purge(p)) == purge(p): once LA == LP the loop body is a no-op, so a
// second call returns the same problem unchanged.
func (p Problem) Purge() Problem {
	active := p.Active
	passive := p.Passive
	for {
		la := active.LabelSet()
		lp := passive.LabelSet()

		onlyActive := diff(la, lp)
		onlyPassive := diff(lp, la)
		if len(onlyActive) == 0 && len(onlyPassive) == 0 {
			break
		}

		active = active.RemoveContaining(onlyActive)
		passive = passive.RemoveContaining(onlyPassive)
	}
	return Problem{Active: active, Passive: passive}
}

func diff(a, b map[label.Label]struct{}) map[label.Label]struct{} {
	out := make(map[label.Label]struct{})
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}
