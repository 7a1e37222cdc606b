// Package graph enumerates non-isomorphic connected (dA,dP)-biregular
// bipartite multigraphs of a given size, sharded across worker goroutines.
package graph

// Edge identifies one instance of an edge between an A-vertex and a
// P-vertex. Parallel edges between the same pair appear as repeated Edge
// values with distinct slice positions; the slice position is itself the
// edge's identity for the purposes of port numbering.
type Edge struct {
	A, P int
}

// BiregularGraph is a bipartite multigraph with explicit A and P vertex
// index lists (0..NA-1 and 0..NP-1) and every A-vertex having degree
// DegreeA, every P-vertex having degree DegreeP. Immutable once returned by
// Enumerate.
type BiregularGraph struct {
	DegreeA, DegreeP int
	NA, NP           int
	Edges            []Edge
}

// A returns the explicit list of A-vertex indices, 0..NA-1.
func (g BiregularGraph) A() []int {
	return indexList(g.NA)
}

// P returns the explicit list of P-vertex indices, 0..NP-1.
func (g BiregularGraph) P() []int {
	return indexList(g.NP)
}

func indexList(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Size returns |V(G)| = NA + NP.
func (g BiregularGraph) Size() int {
	return g.NA + g.NP
}

// NeighborEdgesA returns the indices into g.Edges of the edges incident to
// A-vertex a, in the fixed reproducible order the encoder relies on: the
// order edges were emitted during construction, which for a fixed a is
// ascending by the P endpoint and then by multiplicity instance.
func (g BiregularGraph) NeighborEdgesA(a int) []int {
	var out []int
	for i, e := range g.Edges {
		if e.A == a {
			out = append(out, i)
		}
	}
	return out
}

// NeighborEdgesP returns the indices into g.Edges of the edges incident to
// P-vertex p, in the fixed reproducible order the encoder relies on:
// ascending by the A endpoint and then by multiplicity instance.
func (g BiregularGraph) NeighborEdgesP(p int) []int {
	var out []int
	for i, e := range g.Edges {
		if e.P == p {
			out = append(out, i)
		}
	}
	return out
}

// fromMatrix builds a BiregularGraph from a multiplicity matrix m of shape
// na x np, where m[a][p] is the number of parallel edges between A-vertex a
// and P-vertex p. Edges are emitted in row-major order so that
// NeighborEdgesA/NeighborEdgesP see a stable, reproducible iteration order.
func fromMatrix(m [][]int, dA, dP int) BiregularGraph {
	na := len(m)
	np := 0
	if na > 0 {
		np = len(m[0])
	}
	g := BiregularGraph{DegreeA: dA, DegreeP: dP, NA: na, NP: np}
	for a := 0; a < na; a++ {
		for p := 0; p < np; p++ {
			for k := 0; k < m[a][p]; k++ {
				g.Edges = append(g.Edges, Edge{A: a, P: p})
			}
		}
	}
	return g
}
