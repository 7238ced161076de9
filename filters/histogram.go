package filters

import (
	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/indices"
)

// LbHistogram is a heuristic shape-distance signal over the three
// per-tree histograms (by child degree, by leaf-distance, by label): for
// each histogram it computes sum(max(a[x], b[x])) - sum(min(a[x], b[x]))
// over every bucket x (equivalently, the sum of the absolute per-bucket
// count differences) and reports the largest of the three sums.
//
// This is a supplemented feature: histograms exist in the original
// implementation (lb/indexes/histograms.rs) but it computes no lower bound
// from them. A single relabeling moves one occurrence out of one bucket and
// into another, adding 2 to the sum for one edit, so the sum is not a
// proven lower bound in general — callers must treat LbHistogram as a
// heuristic ranking signal, not a sound filter, the same caveat
// sed.StructDistance carries.
func LbHistogram(a, b indices.Histograms) int {
	lb := bucketDiffInt(a.Degree, b.Degree)
	if v := bucketDiffInt(a.LeafDistance, b.LeafDistance); v > lb {
		lb = v
	}
	if v := bucketDiffLabel(a.Label, b.Label); v > lb {
		lb = v
	}

	return lb
}

func bucketDiffInt(a, b map[int]int) int {
	seen := make(map[int]bool, len(a)+len(b))
	sum := 0
	for k, av := range a {
		sum += absInt(av - b[k])
		seen[k] = true
	}
	for k, bv := range b {
		if !seen[k] {
			sum += absInt(bv)
		}
	}

	return sum
}

func bucketDiffLabel(a, b map[core.LabelID]int) int {
	seen := make(map[core.LabelID]bool, len(a)+len(b))
	sum := 0
	for k, av := range a {
		sum += absInt(av - b[k])
		seen[k] = true
	}
	for k, bv := range b {
		if !seen[k] {
			sum += absInt(bv)
		}
	}

	return sum
}
