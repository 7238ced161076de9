package indices

import (
	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/traversal"
)

// Histograms is the three cheap per-tree shape summaries used by
// filters.LbHistogram: node count by number of children (Degree), node
// count by leaf-distance (1 + max leaf-distance of any child, 1 for
// leaves), and node count by label.
type Histograms struct {
	Degree       map[int]int
	LeafDistance map[int]int
	Label        map[core.LabelID]int
}

// BuildHistograms derives all three histograms from a completed traversal
// in a single additional pass. Complexity: O(N).
func BuildHistograms(t *core.Tree, w *traversal.Result) (Histograms, error) {
	h := Histograms{
		Degree:       make(map[int]int),
		LeafDistance: make(map[int]int),
		Label:        make(map[core.LabelID]int),
	}

	leafDist := make(map[int32]int, w.Size)

	// Process nodes in postorder so every child's leaf-distance is known
	// before its parent needs it.
	for post := 0; post < w.Size; post++ {
		v := w.NodeAtPostorder[post]
		label := w.PostorderLabels[post]
		h.Label[label]++

		children, err := t.Children(v)
		if err != nil {
			return Histograms{}, err
		}
		h.Degree[len(children)]++

		maxChildDist := 0
		for _, c := range children {
			if d := leafDist[c]; d > maxChildDist {
				maxChildDist = d
			}
		}
		leafDist[v] = maxChildDist + 1
		h.LeafDistance[maxChildDist+1]++
	}

	return h, nil
}
