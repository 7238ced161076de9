package search_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/indices"
	"github.com/katalvlaran/tedsearch/parser"
	"github.com/katalvlaran/tedsearch/search"
	"github.com/katalvlaran/tedsearch/traversal"
)

func invListOf(t *testing.T, dict *core.LabelDict, bracket string) (indices.InvList, int) {
	t.Helper()
	tr := core.NewTree(dict)
	require.NoError(t, parser.ParseTree(bracket, tr))

	w, err := traversal.Walk(tr)
	require.NoError(t, err)

	return indices.BuildInvList(w), tr.Size()
}

// TestLabelIntersectionIndex_SingleTreeCandidate reproduces
// label_intersection.rs::test_correctness_index: a single-tree index
// against a long query at k=25 yields exactly one candidate.
func TestLabelIntersectionIndex_SingleTreeCandidate(t *testing.T) {
	dict := core.NewLabelDict()
	t1, _ := invListOf(t, dict, "{0{1 Abysmally}{0 pathetic}}")
	q, _ := invListOf(t, dict, "{3{2{2 Unfolds}{3{2 in}{2{2{2{2 a}{2 series}}{2{2 of}{2{2 achronological}{2 vignettes}}}}{3{2{2{2 whose}{2 cumulative}}{2 effect}}{2{2 is}{3 chilling}}}}}}{2 .}}")

	idx, err := search.NewLabelIntersectionIndex([]indices.InvList{t1})
	require.NoError(t, err)

	candidates := idx.QueryIndex(q, 25)
	assert.Len(t, candidates, 1)
}

// TestLabelIntersectionIndex_NoOverlapRejectsBoth reproduces
// label_intersection.rs::test_correctness_index_sizes_2: neither of two
// unrelated trees is a candidate for the disjoint NPHLN query at k=12.
func TestLabelIntersectionIndex_NoOverlapRejectsBoth(t *testing.T) {
	dict := core.NewLabelDict()
	t1, s1 := invListOf(t, dict, "{NP{NP{NN{Business}}}{Interpunction{:}}{NP{NNS{Savings}}{CC{and}}{NN{loan}}}}")
	t2, s2 := invListOf(t, dict, "{NP{NP{VBN{Guaranteed}}{NN{minimum}}}{NP{CD{6}}{NN{%}}}{Interpunction{.}}}")
	q, _ := invListOf(t, dict, "{NPHLN{NNPS{Fundamentalists}}{NNP{Jihad}}}")

	lists := []indices.InvList{t1, t2}
	sizes := []int{s1, s2}
	if sizes[0] > sizes[1] {
		lists[0], lists[1] = lists[1], lists[0]
	}

	idx, err := search.NewLabelIntersectionIndex(lists)
	require.NoError(t, err)

	candidates := idx.QueryIndex(q, 12)
	assert.Empty(t, candidates)
}

func TestNewLabelIntersectionIndex_RejectsUnsortedInput(t *testing.T) {
	dict := core.NewLabelDict()
	big, _ := invListOf(t, dict, "{a{b}{c}{d}{e}}")
	small, _ := invListOf(t, dict, "{a}")

	_, err := search.NewLabelIntersectionIndex([]indices.InvList{big, small})
	assert.ErrorIs(t, err, search.ErrTreesNotSorted)
}

func TestQGramIndex_FindsExactMatch(t *testing.T) {
	data := [][]core.LabelID{
		{1, 2, 3, 4, 5},
		{10, 11, 12},
		{1, 2, 3, 4, 6},
	}
	idx := search.NewQGramIndex(data, 2)

	candidates, err := idx.Query([]core.LabelID{1, 2, 3, 4, 5}, 1)
	require.NoError(t, err)

	sort.Ints(candidates)
	assert.Contains(t, candidates, 0)
}

func TestQGramIndex_RejectsThresholdAtOrAboveSignatureSize(t *testing.T) {
	data := [][]core.LabelID{{1, 2, 3, 4}}
	idx := search.NewQGramIndex(data, 2)

	_, err := idx.Query([]core.LabelID{1, 2}, 1)
	assert.ErrorIs(t, err, search.ErrThresholdTooLarge)
}
