package sed

import "github.com/katalvlaran/tedsearch/core"

// Char is one position of a structure-augmented label stream: a label
// paired with the two positional counters the structure-aware kernel
// uses to penalize mismatched tree shape even when labels agree.
//
// Field1/Field2 carry different region counters depending on which of
// the four traversal.Result streams the caller built the []Char from
// (preorder, postorder, reversed-preorder, reversed-postorder); sed
// itself is agnostic to which. StructDistance compares only Field1
// against Field1; Field2 is carried but not read by any kernel.
type Char struct {
	Label  core.LabelID
	Field1 int
	Field2 int
}
