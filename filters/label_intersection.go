package filters

import "github.com/katalvlaran/tedsearch/indices"

// LbLabelIntersection is the label-multiset lower bound: since every edit
// operation can remove at most one label occurrence from the symmetric
// difference between the two trees' label multisets, the true tree-edit
// distance is at least max(|T1|,|T2|) minus the size of their label
// intersection (summed per label as min of the two occurrence counts).
//
// Grounded on original_source/src/lb/label_intersection.rs::label_intersection.
func LbLabelIntersection(a, b indices.InvList) int {
	intersection := 0
	for label, postings := range a.ByLabel {
		if other, ok := b.ByLabel[label]; ok {
			intersection += minInt(len(postings), len(other))
		}
	}

	return maxInt(a.TreeSize, b.TreeSize) - intersection
}

// LbLabelIntersectionK is the threshold-bounded counterpart: it rejects
// immediately on a size-difference check, and returns as soon as the
// running shortfall (bigger tree size minus intersection so far) drops
// below k, since every remaining label can only shrink that shortfall
// further. Otherwise behaves like LbLabelIntersection.
//
// Grounded on original_source/src/lb/label_intersection.rs::label_intersection_k.
func LbLabelIntersectionK(a, b indices.InvList, k int) int {
	bigger := maxInt(a.TreeSize, b.TreeSize)
	if absInt(a.TreeSize-b.TreeSize) > k {
		return k + 1
	}

	intersection := 0
	for label, postings := range a.ByLabel {
		other, ok := b.ByLabel[label]
		if !ok {
			continue
		}
		intersection += minInt(len(postings), len(other))

		if bigger-intersection < k {
			return bigger - intersection
		}
	}

	return bigger - intersection
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

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
