// Package filters implements the lower-bound predicates the driver runs in
// increasing cost order to reject candidate pairs before the expensive
// verifier ever looks at them: every filter here is sound — if it reports a
// value greater than k, the true tree-edit distance is provably greater
// than k too — except LbSEDStruct, LbStructVariant and LbHistogram, which
// are heuristics documented as such at their definitions.
//
// Filters read the per-tree artifacts indices/ builds once; none of them
// re-traverse a core.Tree. Filters that need per-query scratch state
// (LbStructVariant) keep it in a per-call regionScratch value rather than
// mutating the shared index, so the same LabelSetRecord is safe to reuse
// across concurrent queries.
package filters
