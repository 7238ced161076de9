// Package traversal implements the single depth-first walk that every
// index in tedsearch is built from.
//
// Walk visits a core.Tree once, left-to-right and depth-first, and
// produces:
//
//   - Preorder / postorder label streams (assigned on descent / ascent).
//   - Per-node positional metadata: depth, subtree size, and the four
//     region counters (preceding, following, ancestors, descendants) used
//     by the lower-bound filters and the label-set records.
//
// All outputs are derived from this one walk. The one downstream builder
// that walks the tree again is indices.BinaryBranchConverter, which reads
// core.Tree children directly. Complexity: O(N) time, O(N) space.
package traversal
