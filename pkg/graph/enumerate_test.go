package graph

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sortedEdgeKeys gives each graph a canonical, comparison-friendly shape:
// the multiset of (A,P) pairs, sorted, independent of enumeration order.
func sortedEdgeKeys(g BiregularGraph) []Edge {
	out := append([]Edge(nil), g.Edges...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].P < out[j].P
	})
	return out
}

func assertAllRegularConnectedBipartite(t *testing.T, graphs []BiregularGraph, dA, dP int) {
	t.Helper()
	for idx, g := range graphs {
		degA := make([]int, g.NA)
		degP := make([]int, g.NP)
		for _, e := range g.Edges {
			require.True(t, e.A >= 0 && e.A < g.NA, "graph %d: edge A endpoint out of range", idx)
			require.True(t, e.P >= 0 && e.P < g.NP, "graph %d: edge P endpoint out of range", idx)
			degA[e.A]++
			degP[e.P]++
		}
		for a, d := range degA {
			assert.Equal(t, dA, d, "graph %d: A-vertex %d has wrong degree", idx, a)
		}
		for p, d := range degP {
			assert.Equal(t, dP, d, "graph %d: P-vertex %d has wrong degree", idx, p)
		}
		// A and P vertex lists disjointly cover V(G).
		assert.Equal(t, g.NA+g.NP, g.Size())
	}
}

func TestEnumerateGraphs_2_2_2(t *testing.T) {
	// Concrete scenario #4 in spec.md §8.
	graphs := Enumerate(2, 2, 2)
	require.Len(t, graphs, 1)
	assertAllRegularConnectedBipartite(t, graphs, 2, 2)
}

func TestEnumerateGraphs_5_2_3(t *testing.T) {
	// Concrete scenario #5 in spec.md §8.
	graphs := Enumerate(5, 2, 3)
	require.Len(t, graphs, 2)
	assertAllRegularConnectedBipartite(t, graphs, 2, 3)
}

func TestEnumerateGraphs_7_3_4(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping larger enumeration in -short mode")
	}
	// Concrete scenario #6 in spec.md §8.
	graphs := Enumerate(7, 3, 4)
	require.Len(t, graphs, 9)
	assertAllRegularConnectedBipartite(t, graphs, 3, 4)
}

func TestEnumerateDegenerateDegreeOne(t *testing.T) {
	// Boundary behavior: dA = 1 or dP = 1 must be handled.
	graphs := Enumerate(4, 1, 1)
	assertAllRegularConnectedBipartite(t, graphs, 1, 1)
	require.NotEmpty(t, graphs)
}

func TestEnumerateParallelEdgesUniqueAtN2(t *testing.T) {
	// Boundary behavior: n=2 with dA=dP>=1 gives the unique
	// parallel-edge graph exactly once.
	for _, d := range []int{1, 2, 3} {
		graphs := Enumerate(2, d, d)
		require.Lenf(t, graphs, 1, "degree %d", d)
		assert.Len(t, graphs[0].Edges, d)
	}
}

func TestEnumerateShardedMatchesSerial(t *testing.T) {
	serial := Enumerate(5, 2, 3)
	sharded := EnumerateSharded(context.Background(), 5, 2, 3, 4)
	require.Len(t, sharded, len(serial))

	toKeySet := func(graphs []BiregularGraph) [][]Edge {
		keys := make([][]Edge, len(graphs))
		for i, g := range graphs {
			keys[i] = sortedEdgeKeys(g)
		}
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
		})
		return keys
	}

	if diff := cmp.Diff(toKeySet(serial), toKeySet(sharded)); diff != "" {
		t.Errorf("sharded enumeration produced a different graph set (-serial +sharded):\n%s", diff)
	}
}
