package filters

import "github.com/katalvlaran/tedsearch/indices"

// LbBinaryBranch is the Yang et al. binary-branch lower bound: two trees
// that differ in a binary-branch occurrence must differ by at least one
// edit operation for every 5 mismatched occurrences, since a single edit
// can change at most 5 binary-branch tuples (the edited node's own tuple
// plus its first child's and right sibling's, whose right-sibling/
// first-child-label fields reference it). The divisor 5 is load-bearing;
// never replace it with a smaller value, or the bound stops being a valid
// lower bound.
//
// Grounded on original_source/src/lb/binary_branch.rs::ted.
func LbBinaryBranch(a, b indices.BinaryBranchVec, k int) int {
	if absInt(a.TreeSize-b.TreeSize) > k {
		return k + 1
	}

	intersection := 0
	for id, count := range a.Counts {
		if other, ok := b.Counts[id]; ok {
			intersection += minInt(count, other)
		}
	}

	return (a.TreeSize + b.TreeSize - 2*intersection) / 5
}
