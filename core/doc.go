// Package core defines the canonical tree representation shared by every
// index and filter in tedsearch: an arena of Nodes with first-child/
// next-sibling links preserving source order, plus the LabelDict that
// interns node labels to small positive integer ids.
//
// A Tree is built once (by the bracket-notation parser) and is read-only
// thereafter: AddNode is the only mutator, and callers stop calling it once
// the root's subtree is complete. LabelDict is shared across an entire
// dataset, populated lazily while trees are parsed, and likewise becomes
// read-only once parsing finishes.
//
// Node handles (NodeID) are int32 offsets into the Tree's arena; they are
// stable for the lifetime of the Tree and are never reused or renumbered.
//
// Invariants:
//   - Exactly one root per Tree (AddNode with parent==NoNode may be called
//     exactly once).
//   - The arena is acyclic by construction: a node's parent always has a
//     strictly smaller NodeID than the node itself.
//   - Child order is preserved: Children(v) returns nodes in the order they
//     were added via AddNode.
//   - Size() == number of AddNode calls == len(nodes).
package core
