package indices

import (
	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/sed"
)

// SEDIndex holds the preorder/postorder label streams a tree's SED-based
// filters run over, plus its size (used by every size-difference early
// reject in the filters package).
type SEDIndex struct {
	Preorder  []core.LabelID
	Postorder []core.LabelID
	TreeSize  int
}

// SEDStructIndex holds the four structure-augmented traversal streams used
// by the heuristic structure-aware SED filter. Field semantics per stream:
//
//	Preorder          : Field1 = following(v), Field2 = descendants(v)
//	Postorder         : Field1 = preceding(v), Field2 = ancestors(v)
//	ReversedPreorder  : Field1 = preceding(v), Field2 = descendants(v)
//	ReversedPostorder : Field1 = following(v), Field2 = ancestors(v)
//
// ReversedPreorder/ReversedPostorder are each the reverse of the
// corresponding non-reversed stream's node ordering, not a distinct DFS.
type SEDStructIndex struct {
	Preorder          []sed.Char
	Postorder         []sed.Char
	ReversedPreorder  []sed.Char
	ReversedPostorder []sed.Char
	TreeSize          int
}

// InvList maps a label id to the sorted list of postorder numbers of nodes
// bearing that label, plus the tree's size.
type InvList struct {
	ByLabel  map[core.LabelID][]int
	TreeSize int
}

// RarityOrdering maps a label id to its rank in some global frequency
// ordering (rarest first). A label id at or beyond len(ordering) has no
// known rank.
type RarityOrdering []int

// LabelRank holds one (label, postorder-postings-count) entry as returned
// by InvList.SortedByRarity.
type LabelRank struct {
	Label core.LabelID
	Count int
}

// StructuralVec is one node's four-way region partition (count of other
// nodes to the left, ancestors, to the right, and descendants), indexed by
// both its preorder and postorder number.
//
// Invariant: Left + Ancestors + Right + Descendants == TreeSize-1.
type StructuralVec struct {
	PreorderID  int
	PostorderID int
	Left        int
	Ancestors   int
	Right       int
	Descendants int
}

// L1 returns the sum of absolute differences between v's and o's region
// counters — the base region-distance used by the structural filter.
func (v StructuralVec) L1(o StructuralVec) int {
	return absInt(v.Left-o.Left) + absInt(v.Ancestors-o.Ancestors) +
		absInt(v.Right-o.Right) + absInt(v.Descendants-o.Descendants)
}

// LabelSetElement is every node of one tree bearing one label, plus that
// label's weight (= len(Nodes)).
type LabelSetElement struct {
	Label  core.LabelID
	Weight int
	Nodes  []StructuralVec
}

// LabelSetRecord is a tree's structural-filter representation: one
// LabelSetElement per distinct label present in the tree.
type LabelSetRecord struct {
	ByLabel  map[core.LabelID]*LabelSetElement
	TreeSize int
}

// BinaryBranchVec is a histogram of binary-branch ids to occurrence counts
// for one tree.
type BinaryBranchVec struct {
	Counts   map[int]int
	TreeSize int
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
