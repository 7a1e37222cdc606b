package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nclcl/classifier/pkg/graph"
	"github.com/nclcl/classifier/pkg/label"
	"github.com/nclcl/classifier/pkg/lclproblem"
)

func mustParse(t *testing.T, text string, m *label.Map) lclproblem.Problem {
	t.Helper()
	p, err := lclproblem.Parse(text, m)
	require.NoError(t, err)
	return p
}

func graphSourceFor(dA, dP int) GraphSource {
	return func(n, wantDA, wantDP int) []graph.BiregularGraph {
		if wantDA != dA || wantDP != dP {
			return nil
		}
		return graph.Enumerate(n, dA, dP)
	}
}

func TestRunEmitsUnsatWitnessForConflictingSingles(t *testing.T) {
	m := label.NewMap()
	p := mustParse(t, "A; B", m)

	ws, stats, err := Run(context.Background(), []lclproblem.Problem{p}, graphSourceFor(1, 1), 2, 4, Flags{}, m.Len())
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, 2, ws[0].N) // stops at the first size with a witness
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].FoundAt)
	assert.NotEmpty(t, stats[0].GraphsTriedBySize)
}

func TestRunEmitsNonProvenForAlwaysSatisfiableProblem(t *testing.T) {
	m := label.NewMap()
	p := mustParse(t, "A B; A B", m)

	ws, stats, err := Run(context.Background(), []lclproblem.Problem{p}, graphSourceFor(1, 1), 2, 4, Flags{}, m.Len())
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, 0, ws[0].N)
	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].FoundAt)
}

func TestRunAllSizesCollectsEveryWitnessedSize(t *testing.T) {
	m := label.NewMap()
	p := mustParse(t, "AA; BB", m)

	ws, _, err := Run(context.Background(), []lclproblem.Problem{p}, graphSourceFor(2, 2), 2, 4, Flags{AllSizes: true}, m.Len())
	require.NoError(t, err)
	// A (2,2)-biregular graph needs equal side sizes, so only the even
	// sizes in [2,4] (2 and 4) have any connected graphs at all (one
	// each); the problem is UNSAT on both, and AllSizes should surface both.
	require.Len(t, ws, 2)
	sizes := map[int]bool{}
	for _, w := range ws {
		sizes[w.N] = true
	}
	assert.True(t, sizes[2] && sizes[4])
}
