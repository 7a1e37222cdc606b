package satoracle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nclcl/classifier/pkg/graph"
	"github.com/nclcl/classifier/pkg/label"
	"github.com/nclcl/classifier/pkg/lclproblem"
	"github.com/nclcl/classifier/pkg/satenc"
)

func encodeFixture(t *testing.T, active, passive string, n, dA, dP int) satenc.Encoding {
	t.Helper()
	m := label.NewMap()
	p, err := lclproblem.Parse(active+"; "+passive, m)
	require.NoError(t, err)
	graphs := graph.Enumerate(n, dA, dP)
	require.NotEmpty(t, graphs)
	return satenc.Encode(p, graphs[0], m.Len())
}

func TestSolveReturnsSatWithConsistentModel(t *testing.T) {
	enc := encodeFixture(t, "A B", "A B", 2, 1, 1)
	res, err := Solve(context.Background(), enc)
	require.NoError(t, err)
	require.Equal(t, Sat, res.Status)

	labeling := satenc.Decode(enc, res.Model)
	for e := range labeling.Active {
		assert.Equal(t, labeling.Active[e], labeling.Passive[e])
	}
}

func TestSolveReturnsUnsatForConflictingSingles(t *testing.T) {
	enc := encodeFixture(t, "A", "B", 2, 1, 1)
	res, err := Solve(context.Background(), enc)
	require.NoError(t, err)
	assert.Equal(t, Unsat, res.Status)
}

func TestSolveHonorsExpiredDeadline(t *testing.T) {
	enc := encodeFixture(t, "A B", "A B", 2, 1, 1)
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := Solve(ctx, enc)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
