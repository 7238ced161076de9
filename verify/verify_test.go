package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/indices"
	"github.com/katalvlaran/tedsearch/parser"
	"github.com/katalvlaran/tedsearch/traversal"
	"github.com/katalvlaran/tedsearch/verify"
)

func buildIndex(t *testing.T, dict *core.LabelDict, bracket string) indices.SEDIndex {
	t.Helper()
	tr := core.NewTree(dict)
	require.NoError(t, parser.ParseTree(bracket, tr))

	w, err := traversal.Walk(tr)
	require.NoError(t, err)

	return indices.BuildSEDIndex(w)
}

func TestVerify_IdenticalTreesAreWithinZero(t *testing.T) {
	dict := core.NewLabelDict()
	a := buildIndex(t, dict, "{1{2{3}{4}}{5{6}}}")
	b := buildIndex(t, dict, "{1{2{3}{4}}{5{6}}}")

	dist, within := verify.Verify(a, b, 0)
	assert.Equal(t, 0, dist)
	assert.True(t, within)
}

func TestVerify_RejectsWhenDistanceExceedsK(t *testing.T) {
	dict := core.NewLabelDict()
	a := buildIndex(t, dict, "{1{2}{3}{4}{5}{6}}")
	b := buildIndex(t, dict, "{x}")

	dist, within := verify.Verify(a, b, 1)
	assert.Greater(t, dist, 1)
	assert.False(t, within)
}
