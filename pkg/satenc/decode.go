package satenc

import "github.com/nclcl/classifier/pkg/label"

// EdgeLabeling is a satisfying assignment decoded back into per-edge,
// per-side labels: Active[e] is the label edge e carries as seen from its
// A endpoint, Passive[e] the label it carries as seen from its P endpoint.
// A satisfying model always has Active[e] == Passive[e] for every e, by
// the edge-agreement clause family.
type EdgeLabeling struct {
	Active  []label.Label
	Passive []label.Label
}

// Decode reads a satisfying model (model(v) reports whether DIMACS
// variable v, 1-indexed, was assigned true) back into an EdgeLabeling
// using enc's Layout.
func Decode(enc Encoding, model func(v int) bool) EdgeLabeling {
	out := EdgeLabeling{
		Active:  make([]label.Label, enc.Layout.M),
		Passive: make([]label.Label, enc.Layout.M),
	}
	for e := 0; e < enc.Layout.M; e++ {
		for l := 0; l < enc.Layout.NumLabels; l++ {
			if model(enc.Layout.LabAP(e, label.Label(l))) {
				out.Active[e] = label.Label(l)
			}
			if model(enc.Layout.LabPA(e, label.Label(l))) {
				out.Passive[e] = label.Label(l)
			}
		}
	}
	return out
}
