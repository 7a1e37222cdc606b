package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigurationSet(t *testing.T) {
	m := NewMap()
	cs, err := Parse("AAB AAC", m)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "AAB AAC", cs.String())
}

func TestParseRejectsUnequalWidth(t *testing.T) {
	m := NewMap()
	_, err := Parse("AB ABC", m)
	require.Error(t, err)
	var mi *MalformedInput
	assert.ErrorAs(t, err, &mi)
}

func TestParseSharedMapAcrossSides(t *testing.T) {
	m := NewMap()
	active, err := Parse("AAB AAC", m)
	require.NoError(t, err)
	passive, err := Parse("AB AC", m)
	require.NoError(t, err)

	// 'A','B','C' are assigned consistent identifiers across both calls.
	assert.Equal(t, active[0][0], passive[0][0])
}

func TestConfigurationSortIdempotent(t *testing.T) {
	m := NewMap()
	cs, _ := Parse("BA AC CB", m)
	once := cs.Sort()
	twice := once.Sort()
	assert.True(t, once.Equal(twice))
}

func TestConfigurationPermutations(t *testing.T) {
	c := Configuration{0, 0, 1}
	perms := c.permutations()
	// AAB has exactly 3 distinct permutations: AAB, ABA, BAA.
	assert.Len(t, perms, 3)
}

func TestPowersetNonEmpty(t *testing.T) {
	sets := Powerset(1, 2)
	// Multisets_1([0,2)) = {0},{1}; powerset has 2^2-1=3 non-empty subsets.
	assert.Len(t, sets, 3)
}

func TestPowersetMemoizationReturnsConsistentResults(t *testing.T) {
	first := Powerset(2, 3)
	second := Powerset(2, 3)
	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]), "entry %d differs between calls", i)
	}
}

func TestRemoveContaining(t *testing.T) {
	m := NewMap()
	cs, _ := Parse("AB AC BC", m)
	labels := map[Label]struct{}{m.Lookup('C'): {}}
	filtered := cs.RemoveContaining(labels)
	assert.Len(t, filtered, 1)
}
