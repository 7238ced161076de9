package indices

import (
	"sort"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/traversal"
)

// BuildInvList derives the label -> sorted-postorder-numbers inverted list
// from a completed traversal. Postorder numbers are already strictly
// increasing in PostorderLabels order, so each label's posting list is
// naturally sorted and needs no extra sort pass. Complexity: O(N).
func BuildInvList(w *traversal.Result) InvList {
	byLabel := make(map[core.LabelID][]int, len(w.PostorderLabels))
	for post, label := range w.PostorderLabels {
		byLabel[label] = append(byLabel[label], post)
	}

	return InvList{ByLabel: byLabel, TreeSize: w.Size}
}

// SortedByRarity returns every label in this InvList paired with its
// posting-list length, ordered by ordering's rank (rarest first).
//
// Quirk preserved verbatim from the reference implementation: a label id
// at or beyond len(ordering) is treated as rank 0 (the front of the
// ordering), biasing unranked/unknown labels ahead of everything else
// rather than behind. The intent of this choice is not documented upstream;
// we keep the observable behavior rather than "fixing" it into a rank-at-
// the-end convention, since query_index_prefix's prefix-filter correctness
// does not depend on which convention is chosen, only on it being stable.
func (inv InvList) SortedByRarity(ordering RarityOrdering) []LabelRank {
	out := make([]LabelRank, 0, len(inv.ByLabel))
	for label, postings := range inv.ByLabel {
		out = append(out, LabelRank{Label: label, Count: len(postings)})
	}

	rank := func(label core.LabelID) int {
		if int(label) >= len(ordering) {
			return 0
		}

		return ordering[label]
	}

	sort.Slice(out, func(i, j int) bool {
		ri, rj := rank(out[i].Label), rank(out[j].Label)
		if ri != rj {
			return ri < rj
		}

		return out[i].Label < out[j].Label
	})

	return out
}
