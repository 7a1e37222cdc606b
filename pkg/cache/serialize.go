package cache

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/nclcl/classifier/pkg/graph"
	"github.com/nclcl/classifier/pkg/label"
	"github.com/nclcl/classifier/pkg/lclproblem"
)

// graphBatchDoc and problemBatchDoc are the YAML documents stored in the
// BLOB columns: field names make the header self-describing, so a
// reader can recognize and reject a blob from an incompatible version
// instead of misinterpreting raw bytes (spec.md §6's "self-describing
// enough to round-trip").
type graphBatchDoc struct {
	Version int             `yaml:"version"`
	NA      int             `yaml:"na"`
	NP      int             `yaml:"np"`
	Graphs  []yamlGraphEdge `yaml:"graphs"`
}

// yamlGraphEdge is one graph's edge list flattened to plain ints so it
// round-trips through YAML without custom marshalers.
type yamlGraphEdge struct {
	NA      int   `yaml:"na"`
	NP      int   `yaml:"np"`
	DegreeA int   `yaml:"degree_a"`
	DegreeP int   `yaml:"degree_p"`
	EdgesA  []int `yaml:"edges_a"`
	EdgesP  []int `yaml:"edges_p"`
}

type problemBatchDoc struct {
	Version  int      `yaml:"version"`
	Problems []string `yaml:"problems"`
}

const formatVersion = 1

func encodeGraphBatch(dA, dP int, graphs []graph.BiregularGraph) ([]byte, error) {
	doc := graphBatchDoc{Version: formatVersion, NA: dA, NP: dP}
	for _, g := range graphs {
		edgesA := make([]int, len(g.Edges))
		edgesP := make([]int, len(g.Edges))
		for i, e := range g.Edges {
			edgesA[i] = e.A
			edgesP[i] = e.P
		}
		doc.Graphs = append(doc.Graphs, yamlGraphEdge{
			NA: g.NA, NP: g.NP,
			DegreeA: g.DegreeA, DegreeP: g.DegreeP,
			EdgesA: edgesA, EdgesP: edgesP,
		})
	}
	return yaml.Marshal(doc)
}

func decodeGraphBatch(data []byte) ([]graph.BiregularGraph, error) {
	var doc graphBatchDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("graph batch format version %d, want %d", doc.Version, formatVersion)
	}
	out := make([]graph.BiregularGraph, 0, len(doc.Graphs))
	for _, ge := range doc.Graphs {
		edges := make([]graph.Edge, len(ge.EdgesA))
		for i := range edges {
			edges[i] = graph.Edge{A: ge.EdgesA[i], P: ge.EdgesP[i]}
		}
		out = append(out, graph.BiregularGraph{
			DegreeA: ge.DegreeA, DegreeP: ge.DegreeP,
			NA: ge.NA, NP: ge.NP,
			Edges: edges,
		})
	}
	return out, nil
}

func encodeProblemBatch(problems []lclproblem.Problem) ([]byte, error) {
	doc := problemBatchDoc{Version: formatVersion}
	for _, p := range problems {
		doc.Problems = append(doc.Problems, p.String())
	}
	return yaml.Marshal(doc)
}

func decodeProblemBatch(data []byte) ([]lclproblem.Problem, error) {
	var doc problemBatchDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("problem batch format version %d, want %d", doc.Version, formatVersion)
	}
	out := make([]lclproblem.Problem, 0, len(doc.Problems))
	for _, text := range doc.Problems {
		m := label.NewMap()
		p, err := lclproblem.Parse(text, m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
