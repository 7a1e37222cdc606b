package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nclcl/classifier/pkg/label"
	"github.com/nclcl/classifier/pkg/lclproblem"
)

func TestBuildQueryFixedFilters(t *testing.T) {
	query, args := buildQuery(Filter{DegreeActive: 2, DegreePassive: 3, LabelCount: 4})
	require.Equal(t, []interface{}{2, 3, 4}, args)
	assert.Contains(t, query, "is_tree = true")
	assert.Contains(t, query, "is_directed_or_rooted = false")
	assert.Contains(t, query, "det_lower_bound = '(1)'")
	assert.NotContains(t, query, "id %")
}

func TestBuildQueryShardingClause(t *testing.T) {
	query, _ := buildQuery(Filter{DegreeActive: 2, DegreePassive: 2, LabelCount: 2, Modulus: 4, Shard: 1})
	assert.Contains(t, query, "id % 4 = 1")
}

func TestNormalizeAgreesRegardlessOfSourceAlphabet(t *testing.T) {
	rowA := rowFromText(t, "BBC BBD; BC BD")
	rowB := rowFromText(t, "AAB AAC; AB AC")

	out := Normalize([]Row{rowA, rowB})
	require.Len(t, out, 2)
	assert.Equal(t, out[0].String(), out[1].String())
}

func rowFromText(t *testing.T, text string) Row {
	t.Helper()
	p, err := lclproblem.Parse(text, label.NewMap())
	require.NoError(t, err)
	return Row{Problem: p}
}
