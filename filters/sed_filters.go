package filters

import (
	"github.com/katalvlaran/tedsearch/indices"
	"github.com/katalvlaran/tedsearch/sed"
)

// LbSED is the unbounded string-edit-distance lower bound: the larger of
// the unit-cost edit distance between the two trees' preorder label
// streams and between their postorder label streams. Every tree mapping
// achieving tree-edit distance d induces a string edit script of cost <=d
// on both streams, so max(pre,post) never overestimates the true distance.
//
// Grounded on original_source/src/lb/sed.rs::sed.
func LbSED(a, b indices.SEDIndex) int {
	pre := sed.Distance(a.Preorder, b.Preorder)
	post := sed.Distance(a.Postorder, b.Postorder)
	if pre > post {
		return pre
	}

	return post
}

// LbSEDK is the threshold-bounded counterpart of LbSED. It runs only over
// the preorder streams, matching original_source/src/lb/sed.rs::sed_k
// (not the stub of the same name in lb/mod.rs, which is dead code that
// always returns 0 and must not be reproduced). Returns the exact preorder
// distance when it is within k, and the capped sentinel k otherwise,
// except when one preorder stream is a prefix/suffix trim of the other, in
// which case the exact (possibly >k) remaining length is returned — see
// sed.BoundedDistance for the sentinel convention.
func LbSEDK(a, b indices.SEDIndex, k int) int {
	return sed.BoundedDistance(a.Preorder, b.Preorder, k)
}
