package indices

import (
	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/traversal"
)

// BuildSEDIndex derives the plain label-stream SED index from a completed
// traversal. Complexity: O(N).
func BuildSEDIndex(w *traversal.Result) SEDIndex {
	return SEDIndex{
		Preorder:  append([]core.LabelID(nil), w.PreorderLabels...),
		Postorder: append([]core.LabelID(nil), w.PostorderLabels...),
		TreeSize:  w.Size,
	}
}
