// Package search implements the two candidate-generation indices the
// driver consults before running any filters/ predicate: LabelIntersectionIndex
// narrows a query down to trees sharing enough labels to plausibly be
// within k, and QGramIndex narrows it down by positional q-gram overlap
// over a preorder label stream. Both require their input sorted by
// ascending tree size (or string length), matching the original
// implementation's own precondition.
package search
