// Package sed implements the string-edit-distance kernels that every
// lower-bound filter in tedsearch is built from: unit-cost Levenshtein
// distance over label streams, a threshold-bounded diagonal-band variant
// that gives up past a known cap, and a structure-augmented variant that
// inflates the substitution cost when positional metadata disagrees.
//
// All three kernels operate on the preorder/postorder label streams a
// traversal.Result produces, not on core.Tree directly; sed has no
// knowledge of tree shape beyond what the caller encodes into the stream.
//
// Time complexity: Distance is O(N*M) with O(min(N,M)) memory (rolling
// two-row DP). BoundedDistance restricts the same recurrence to a
// diagonal band of width 2k+1, giving O(k*min(N,M)) time once the size
// difference is within k.
package sed
