// SPDX-License-Identifier: MIT
package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/traversal"
)

// buildScenario1 builds {1{2{3}{4}}{5{6}}{7{8}{9}}} from specification
// scenario 1, with distinct single-digit labels so preorder/postorder
// label sequences double as readable node identities.
func buildScenario1(t *testing.T) *core.Tree {
	t.Helper()
	dict := core.NewLabelDict()
	tr := core.NewTree(dict)

	mk := func(s string) core.LabelID {
		return dict.Intern(s)
	}

	root, _ := tr.AddNode(core.NoNode, mk("1"))
	n2, _ := tr.AddNode(root, mk("2"))
	tr.AddNode(n2, mk("3"))
	tr.AddNode(n2, mk("4"))
	n5, _ := tr.AddNode(root, mk("5"))
	tr.AddNode(n5, mk("6"))
	n7, _ := tr.AddNode(root, mk("7"))
	tr.AddNode(n7, mk("8"))
	tr.AddNode(n7, mk("9"))

	return tr
}

func labelStrings(t *testing.T, tr *core.Tree, ids []core.LabelID) []string {
	t.Helper()
	out := make([]string, len(ids))
	for i, id := range ids {
		s, ok := tr.Dict().Lookup(id)
		require.True(t, ok)
		out[i] = s
	}
	return out
}

func TestWalk_PreorderPostorder(t *testing.T) {
	tr := buildScenario1(t)
	res, err := traversal.Walk(tr)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, labelStrings(t, tr, res.PreorderLabels))
	assert.Equal(t, []string{"3", "4", "2", "6", "5", "8", "9", "7", "1"}, labelStrings(t, tr, res.PostorderLabels))
}

func TestWalk_RegionInvariant(t *testing.T) {
	tr := buildScenario1(t)
	res, err := traversal.Walk(tr)
	require.NoError(t, err)

	for v := 0; v < res.Size; v++ {
		sum := res.Preceding[v] + res.Ancestors[v] + res.Following[v] + res.Descendants[v]
		assert.Equal(t, res.Size-1, sum, "node %d region counters must partition the other N-1 nodes", v)
	}
}

func TestWalk_EmptyTree(t *testing.T) {
	tr := core.NewTree(core.NewLabelDict())
	_, err := traversal.Walk(tr)
	assert.ErrorIs(t, err, traversal.ErrEmptyTree)
}

func TestWalk_SingleNode(t *testing.T) {
	dict := core.NewLabelDict()
	tr := core.NewTree(dict)
	lbl := dict.Intern("root")
	tr.AddNode(core.NoNode, lbl)

	res, err := traversal.Walk(tr)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Size)
	assert.Equal(t, 0, res.Preceding[0])
	assert.Equal(t, 0, res.Following[0])
	assert.Equal(t, 0, res.Ancestors[0])
	assert.Equal(t, 0, res.Descendants[0])
}
