package search

import (
	"errors"
	"sort"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/indices"
)

// ErrTreesNotSorted is returned by NewLabelIntersectionIndex when the
// supplied inverted lists are not in non-decreasing tree-size order, a
// precondition the posting-range lookups in QueryIndex/QueryIndexPrefix
// depend on. The original implementation enforces this with a hard
// assert; we surface it as an ordinary error instead.
var ErrTreesNotSorted = errors.New("search: trees must be sorted by ascending size")

type liEntry struct {
	treeID    int
	treeSize  int
	labelSize int
}

// LabelIntersectionIndex answers "which indexed trees could share enough
// labels with a query tree to be within k of it" without scanning every
// tree's full inverted list. Grounded on
// original_source/src/lb/label_intersection.rs::LabelIntersectionIndex.
type LabelIntersectionIndex struct {
	index     map[core.LabelID][]liEntry
	sizeIndex []int
}

// NewLabelIntersectionIndex builds the index over lists, which must
// already be sorted by ascending TreeSize.
func NewLabelIntersectionIndex(lists []indices.InvList) (*LabelIntersectionIndex, error) {
	sizeIndex := make([]int, len(lists))
	for i, l := range lists {
		sizeIndex[i] = l.TreeSize
		if i > 0 && sizeIndex[i] < sizeIndex[i-1] {
			return nil, ErrTreesNotSorted
		}
	}

	index := make(map[core.LabelID][]liEntry)
	for tid, l := range lists {
		for label, postings := range l.ByLabel {
			index[label] = append(index[label], liEntry{treeID: tid, treeSize: l.TreeSize, labelSize: len(postings)})
		}
	}

	return &LabelIntersectionIndex{index: index, sizeIndex: sizeIndex}, nil
}

// QueryIndex returns the ids of every indexed tree whose label-intersection
// lower bound against query is <=k.
//
// Grounded on label_intersection.rs::query_index, including its
// size-threshold scan for trees with zero label overlap: that scan walks
// the size-sorted index from the front and stops at the first tree whose
// size falls outside [query.TreeSize-k, query.TreeSize+k] — a tree beyond
// that point is never reconsidered even if a later entry would also
// qualify by size. This mirrors the original's take_while exactly rather
// than widening it into a full range scan.
func (idx *LabelIntersectionIndex) QueryIndex(query indices.InvList, k int) []int {
	type acc struct {
		intersection int
		treeSize     int
	}
	seen := make(map[int]*acc)

	for label, postings := range query.ByLabel {
		queryCount := len(postings)
		entries, ok := idx.index[label]
		if !ok {
			continue
		}

		lo := query.TreeSize - k
		hi := k + query.TreeSize
		for _, e := range entries {
			if e.treeSize < lo {
				continue
			}
			if e.treeSize > hi {
				continue
			}

			a, exists := seen[e.treeID]
			if !exists {
				a = &acc{treeSize: e.treeSize}
				seen[e.treeID] = a
			}
			a.intersection += minInt(queryCount, e.labelSize)
		}
	}

	var candidates []int
	for cid, size := range idx.sizeIndex {
		if absInt(query.TreeSize-size) > k {
			break
		}
		if _, ok := seen[cid]; !ok && maxInt(query.TreeSize, size) <= k {
			candidates = append(candidates, cid)
		}
	}

	for cid, a := range seen {
		if maxInt(query.TreeSize, a.treeSize)-a.intersection <= k {
			candidates = append(candidates, cid)
		}
	}

	sort.Ints(candidates)

	return candidates
}

// QueryIndexPrefix is the rarest-label-prefix variant: instead of
// scanning every label query shares with the corpus, it only consults the
// k+1 rarest labels (per ordering) to build an initial overlap estimate,
// then tops each surviving candidate's overlap up using the remaining
// labels before the final size-vs-overlap check.
//
// Grounded on label_intersection.rs::query_index_prefix.
func (idx *LabelIntersectionIndex) QueryIndexPrefix(
	query indices.InvList,
	k int,
	ordering indices.RarityOrdering,
	lists []indices.InvList,
) []int {
	prefix := query.SortedByRarity(ordering)

	type acc struct {
		intersection int
		treeSize     int
	}
	overlaps := make(map[int]*acc)

	if query.TreeSize <= k {
		for cid, size := range idx.sizeIndex {
			if size > k {
				break
			}
			overlaps[cid] = &acc{treeSize: size}
		}
	}

	take := k + 1
	if take > len(prefix) {
		take = len(prefix)
	}
	for _, lr := range prefix[:take] {
		entries, ok := idx.index[lr.Label]
		if !ok {
			continue
		}
		for _, e := range entries {
			if e.treeSize < query.TreeSize-k || absInt(e.treeSize-query.TreeSize) > k {
				continue
			}

			a, exists := overlaps[e.treeID]
			if !exists {
				overlaps[e.treeID] = &acc{intersection: minInt(lr.Count, e.labelSize), treeSize: e.treeSize}
				continue
			}
			a.intersection += minInt(lr.Count, e.labelSize)
		}
	}

	for cid, a := range overlaps {
		if a.intersection <= 0 {
			continue
		}
		for _, lr := range prefix[take:] {
			if nodes, ok := lists[cid].ByLabel[lr.Label]; ok {
				a.intersection += minInt(len(nodes), lr.Count)
			}
		}
	}

	var candidates []int
	for cid, a := range overlaps {
		if maxInt(query.TreeSize, a.treeSize)-a.intersection <= k {
			candidates = append(candidates, cid)
		}
	}
	sort.Ints(candidates)

	return candidates
}

func minInt(x, y int) int {
	if x < y {
		return x
	}

	return y
}

func maxInt(x, y int) int {
	if x > y {
		return x
	}

	return y
}
