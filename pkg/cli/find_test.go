package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nclcl/classifier/pkg/cache"
)

func TestReadStdinProblemsSkipsProvenLinesByDefault(t *testing.T) {
	in := "0: AAB AAC; AB AC\n4: AA AB; AA BB\n"
	problems, numLabels, err := readStdinProblems(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.True(t, numLabels > 0)
}

func TestReadStdinProblemsNoIgnoreKeepsEverything(t *testing.T) {
	in := "0: AAB AAC; AB AC\n4: AA AB; AA BB\n"
	problems, _, err := readStdinProblems(strings.NewReader(in), true)
	require.NoError(t, err)
	assert.Len(t, problems, 2)
}

func TestReadStdinProblemsRejectsMissingColon(t *testing.T) {
	_, _, err := readStdinProblems(strings.NewReader("not a valid line"), false)
	assert.Error(t, err)
}

func TestParseDegreeTripleRejectsNonInteger(t *testing.T) {
	_, _, _, err := parseDegreeTriple([]string{"2", "x", "3"})
	assert.Error(t, err)
}

func TestProblemSourceForWithoutCacheRecomputesEveryCall(t *testing.T) {
	source, closeFn, err := problemSourceFor("")
	require.NoError(t, err)
	defer closeFn()

	first := source(2, 2, 3)
	second := source(2, 2, 3)
	assert.Equal(t, len(first), len(second))
}

func TestProblemSourceForWithCachePopulatesOnMiss(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "problems.db")

	source, closeFn, err := problemSourceFor(dbPath)
	require.NoError(t, err)
	computed := source(2, 2, 3)
	closeFn()

	db, err := cache.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	cached, ok := cache.ReadProblems(db, 2, 2, 3)
	require.True(t, ok, "problemSourceFor should have populated the cache on first call")
	assert.Equal(t, len(computed), len(cached))
}
