package indices

import (
	"github.com/katalvlaran/tedsearch/sed"
	"github.com/katalvlaran/tedsearch/traversal"
)

// BuildSEDStructIndex derives the four structure-augmented traversal
// streams from a completed traversal. See SEDStructIndex for field
// semantics. Complexity: O(N).
func BuildSEDStructIndex(w *traversal.Result) SEDStructIndex {
	n := w.Size
	pre := make([]sed.Char, n)
	post := make([]sed.Char, n)

	for i := 0; i < n; i++ {
		v := w.NodeAtPreorder[i]
		pre[i] = sed.Char{Label: w.PreorderLabels[i], Field1: w.Following[v], Field2: w.Descendants[v]}
	}
	for i := 0; i < n; i++ {
		v := w.NodeAtPostorder[i]
		post[i] = sed.Char{Label: w.PostorderLabels[i], Field1: w.Preceding[v], Field2: w.Ancestors[v]}
	}

	revPre := make([]sed.Char, n)
	for i := 0; i < n; i++ {
		v := w.NodeAtPreorder[i]
		revPre[n-1-i] = sed.Char{Label: w.PreorderLabels[i], Field1: w.Preceding[v], Field2: w.Descendants[v]}
	}
	revPost := make([]sed.Char, n)
	for i := 0; i < n; i++ {
		v := w.NodeAtPostorder[i]
		revPost[n-1-i] = sed.Char{Label: w.PostorderLabels[i], Field1: w.Following[v], Field2: w.Ancestors[v]}
	}

	return SEDStructIndex{
		Preorder:          pre,
		Postorder:         post,
		ReversedPreorder:  revPre,
		ReversedPostorder: revPost,
		TreeSize:          n,
	}
}
