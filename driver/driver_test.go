package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/driver"
	"github.com/katalvlaran/tedsearch/parser"
)

func buildTree(t *testing.T, dict *core.LabelDict, bracket string) *core.Tree {
	t.Helper()
	tr := core.NewTree(dict)
	require.NoError(t, parser.ParseTree(bracket, tr))

	return tr
}

func TestBuild_RejectsEmptyCorpus(t *testing.T) {
	dict := core.NewLabelDict()
	_, err := driver.Build(dict, nil)
	assert.ErrorIs(t, err, driver.ErrEmptyCorpus)
}

func TestPipeline_QueryFindsExactMatch(t *testing.T) {
	dict := core.NewLabelDict()
	trees := []*core.Tree{
		buildTree(t, dict, "{1{2{3}{4}}{5{6}}}"),
		buildTree(t, dict, "{x{y}}"),
		buildTree(t, dict, "{a{b{c}{d}{e}}{f}}"),
	}

	p, err := driver.Build(dict, trees)
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())

	query := buildTree(t, dict, "{1{2{3}{4}}{5{6}}}")
	matches, err := p.Query(query, 0)
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	found := false
	for _, m := range matches {
		if m.Distance == 0 {
			found = true
		}
	}
	assert.True(t, found, "expected an exact match at distance 0")
}

func TestPipeline_QueryWithoutQGramIndex(t *testing.T) {
	dict := core.NewLabelDict()
	trees := []*core.Tree{
		buildTree(t, dict, "{1{2}{3}}"),
		buildTree(t, dict, "{a{b}{c}}"),
	}

	p, err := driver.Build(dict, trees, driver.WithoutQGramIndex())
	require.NoError(t, err)

	query := buildTree(t, dict, "{1{2}{3}}")
	matches, err := p.Query(query, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Distance)
}

func TestPipeline_QueryRejectsDistantTrees(t *testing.T) {
	dict := core.NewLabelDict()
	trees := []*core.Tree{
		buildTree(t, dict, "{1{2{3}{4}}{5{6}}{7{8}{9}}}"),
	}

	p, err := driver.Build(dict, trees)
	require.NoError(t, err)

	query := buildTree(t, dict, "{q}")
	matches, err := p.Query(query, 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
