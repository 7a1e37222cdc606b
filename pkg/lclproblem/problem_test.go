package lclproblem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nclcl/classifier/pkg/label"
)

func mustParse(t *testing.T, text string) Problem {
	t.Helper()
	p, err := Parse(text, label.NewMap())
	require.NoError(t, err)
	return p
}

func TestParseRoundTrip(t *testing.T) {
	p := mustParse(t, "AAB AAC; AB AC")
	assert.Equal(t, "AAB AAC; AB AC", p.String())
}

func TestPurgeIsFixpoint(t *testing.T) {
	p := mustParse(t, "AB CD; AB")
	once := p.Purge()
	twice := once.Purge()
	assert.True(t, once.Equal(twice))
}

func TestPurgeDropsUnpartneredLabels(t *testing.T) {
	// 'C' and 'D' on the active side have no partner on the passive
	// side, so the configuration using them must be dropped.
	p := mustParse(t, "AB CD; AB")
	purged := p.Purge()
	require.Len(t, purged.Active, 1)
	assert.Equal(t, "AB", purged.Active.String())
}

func TestNormalizeIsIdempotent(t *testing.T) {
	p := mustParse(t, "BBA CCA; BA CA")
	once := p.Normalize()
	twice := once.Normalize()
	assert.True(t, once.Equal(twice))
}

func TestNormalizeRespectsRelabeling(t *testing.T) {
	p := mustParse(t, "AAB; AB")
	relabeled := mustParse(t, "BBA; BA")
	assert.True(t, p.Normalize().Equal(relabeled.Normalize()))
}

func TestEnumerateNormalizedClassCount_2_1_2(t *testing.T) {
	// Concrete scenario #1 in spec.md §8.
	problems := EnumerateNormalizedClass(2, 1, 2)
	assert.Len(t, problems, 5)
}

func TestEnumerateNormalizedClassMembersAreSelfNormalizedAndDistinct(t *testing.T) {
	problems := EnumerateNormalizedClass(2, 1, 2)
	for i, p := range problems {
		assert.True(t, p.Equal(p.Normalize()), "problem %d is not self-normalized", i)
		for j, other := range problems {
			if i != j {
				assert.False(t, p.Equal(other), "problems %d and %d are not distinct", i, j)
			}
		}
	}
}
