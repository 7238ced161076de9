package indices

import (
	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/traversal"
)

// BuildLabelSetRecord derives the structural-filter representation of a
// tree: every node's four-way region vector, grouped by label.
// Complexity: O(N).
func BuildLabelSetRecord(w *traversal.Result) LabelSetRecord {
	byLabel := make(map[core.LabelID]*LabelSetElement)
	// Walk in ascending postorder order so each label's Nodes slice is
	// already sorted by PostorderID, matching the reference builder's
	// natural append order during its own postorder recursion; the
	// structural filter's postorder-window scan relies on this.
	for post := 0; post < w.Size; post++ {
		v := w.NodeAtPostorder[post]
		label := w.PostorderLabels[post]
		vec := StructuralVec{
			PreorderID:  w.PreorderOf[v],
			PostorderID: w.PostorderOf[v],
			Left:        w.Preceding[v],
			Ancestors:   w.Ancestors[v],
			Right:       w.Following[v],
			Descendants: w.Descendants[v],
		}

		se, ok := byLabel[label]
		if !ok {
			se = &LabelSetElement{Label: label}
			byLabel[label] = se
		}
		se.Weight++
		se.Nodes = append(se.Nodes, vec)
	}

	return LabelSetRecord{ByLabel: byLabel, TreeSize: w.Size}
}
