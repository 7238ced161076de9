// Package traversal implements the depth-first walk.
//
// # Walk — single DFS producing preorder/postorder streams and region counts
//
// Walk explores a core.Tree depth-first, left-to-right, assigning a
// preorder number on descent and a postorder number on ascent. In the
// same pass it derives, per node v with subtree size s and depth d in a
// tree of size N:
//
//	preceding(v)  = postorder(v) - (s - 1)
//	following(v)  = N - (postorder(v) + d + 1)
//	ancestors(v)  = d
//	descendants(v) = s - 1
//
// Time complexity: O(N). Memory usage: O(N).
package traversal

import (
	"fmt"

	"github.com/katalvlaran/tedsearch/core"
)

// ErrEmptyTree is returned when Walk is asked to traverse a tree with no
// root. Per the specification this is an invariant violation: an empty
// tree reaching a traversal indicates an upstream bug and must abort.
var ErrEmptyTree = fmt.Errorf("traversal: empty tree reached a traversal")

// Result holds every artifact derived from one DFS pass over a Tree, all
// indexed either by NodeID (arena order) or by preorder/postorder number.
type Result struct {
	Tree *core.Tree
	Size int

	// PreorderLabels[i] / PostorderLabels[i] is the label of the node
	// assigned preorder/postorder number i.
	PreorderLabels  []core.LabelID
	PostorderLabels []core.LabelID

	// NodeAtPreorder[i] / NodeAtPostorder[i] is the NodeID assigned
	// preorder/postorder number i.
	NodeAtPreorder  []int32
	NodeAtPostorder []int32

	// PreorderOf[v] / PostorderOf[v] is the preorder/postorder number of
	// NodeID v; the inverse of NodeAtPreorder/NodeAtPostorder.
	PreorderOf  []int
	PostorderOf []int

	// Depth[v], SubtreeSize[v]: ancestors(v)+1-free depth, and 1+descendants(v).
	Depth       []int
	SubtreeSize []int

	// Preceding[v], Following[v], Ancestors[v], Descendants[v]: the four
	// region counters from the specification's mapping-region partition.
	Preceding   []int
	Following   []int
	Ancestors   []int
	Descendants []int
}

// Walk performs one DFS over t and returns the full Result.
// Returns ErrEmptyTree if t has no root.
func Walk(t *core.Tree) (*Result, error) {
	n := t.Size()
	if n == 0 {
		return nil, ErrEmptyTree
	}
	root, err := t.Root()
	if err != nil {
		return nil, ErrEmptyTree
	}

	res := &Result{
		Tree:            t,
		Size:            n,
		PreorderLabels:  make([]core.LabelID, n),
		PostorderLabels: make([]core.LabelID, n),
		NodeAtPreorder:  make([]int32, n),
		NodeAtPostorder: make([]int32, n),
		PreorderOf:      make([]int, n),
		PostorderOf:     make([]int, n),
		Depth:           make([]int, n),
		SubtreeSize:     make([]int, n),
		Preceding:       make([]int, n),
		Following:       make([]int, n),
		Ancestors:       make([]int, n),
		Descendants:     make([]int, n),
	}

	w := &walker{t: t, res: res}
	if err := w.visit(root, 0); err != nil {
		return nil, err
	}

	// Second pass: derive the four region counters from the formulas in
	// the package doc comment, now that Depth/SubtreeSize/PostorderOf are
	// known for every node.
	for v := 0; v < n; v++ {
		s := res.SubtreeSize[v]
		d := res.Depth[v]
		post := res.PostorderOf[v]
		res.Preceding[v] = post - (s - 1)
		res.Following[v] = n - (post + d + 1)
		res.Ancestors[v] = d
		res.Descendants[v] = s - 1
	}

	return res, nil
}

// walker carries the mutable counters threaded through the recursive walk.
type walker struct {
	t         *core.Tree
	res       *Result
	preCount  int
	postCount int
}

// visit descends into v (recorded at preCount), recurses into children
// left-to-right, then records v in postorder on the way back up.
// Stores v's subtree size (1 + sum of children's subtree sizes) in
// SubtreeSize[v]; the only return value is an error.
func (w *walker) visit(v int32, depth int) error {
	label, err := w.t.Label(v)
	if err != nil {
		return err
	}

	pre := w.preCount
	w.preCount++
	w.res.PreorderLabels[pre] = label
	w.res.NodeAtPreorder[pre] = v
	w.res.PreorderOf[v] = pre
	w.res.Depth[v] = depth

	children, err := w.t.Children(v)
	if err != nil {
		return err
	}

	size := 1
	for _, c := range children {
		if err := w.visit(c, depth+1); err != nil {
			return err
		}
		size += w.res.SubtreeSize[c]
	}
	w.res.SubtreeSize[v] = size

	post := w.postCount
	w.postCount++
	w.res.PostorderLabels[post] = label
	w.res.NodeAtPostorder[post] = v
	w.res.PostorderOf[v] = post

	return nil
}
