// Package verify provides the external, exact-distance collaborator the
// filter-verify pipeline calls once a candidate pair survives every
// lower-bound filter.
//
// This is explicitly NOT an implementation of APTED or any other exact
// tree-edit-distance algorithm — spec.md §1 lists the exact verifier as an
// out-of-scope external collaborator, and no example repo in the corpus
// implements one. Verify instead reports the same sound lower bound
// filters.LbSED already computes (max of sed.Distance over the preorder
// and postorder streams): any tree edit script induces a string edit
// script of no greater cost on either linearization, so this distance
// never exceeds the true tree-edit distance.
//
// That soundness direction means Verify can never wrongly reject a true
// match (if its distance exceeds k, the true distance does too), but it
// can wrongly accept one (its distance can be strictly less than the true
// tree-edit distance, since SED is a lower bound, not an exact value) —
// a caller that needs exact acceptance must supply a real verifier.
package verify
