package cache

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nclcl/classifier/pkg/graph"
	"github.com/nclcl/classifier/pkg/label"
	"github.com/nclcl/classifier/pkg/lclproblem"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGraphRoundTrip(t *testing.T) {
	db := openMemory(t)
	graphs := graph.Enumerate(5, 2, 3)
	require.NotEmpty(t, graphs)

	require.NoError(t, WriteGraphs(db, 5, 2, 3, graphs))

	_, ok := ReadGraphs(db, 5, 2, 4)
	assert.False(t, ok, "unrelated key must miss")

	got, ok := ReadGraphs(db, 5, 2, 3)
	require.True(t, ok)
	require.Len(t, got, len(graphs))
	for i := range graphs {
		assert.Equal(t, graphs[i].Edges, got[i].Edges)
	}
}

func TestProblemRoundTrip(t *testing.T) {
	db := openMemory(t)
	m := label.NewMap()
	p, err := lclproblem.Parse("AAB AAC; AB AC", m)
	require.NoError(t, err)

	require.NoError(t, WriteProblems(db, 2, 2, 3, []lclproblem.Problem{p}))

	got, ok := ReadProblems(db, 2, 2, 3)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, p.String(), got[0].String())
}

func TestWriteGraphsOverwritesSameKey(t *testing.T) {
	db := openMemory(t)
	first := graph.Enumerate(2, 1, 1)
	second := graph.Enumerate(4, 1, 1)

	require.NoError(t, WriteGraphs(db, 99, 1, 1, first))
	require.NoError(t, WriteGraphs(db, 99, 1, 1, second))

	got, ok := ReadGraphs(db, 99, 1, 1)
	require.True(t, ok)
	assert.Len(t, got, len(second))
}
