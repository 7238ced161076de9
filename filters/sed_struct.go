package filters

import (
	"github.com/katalvlaran/tedsearch/indices"
	"github.com/katalvlaran/tedsearch/sed"
)

// LbSEDStruct is the structure-augmented string-edit-distance heuristic:
// it runs sed.StructDistance, which only treats equally-labeled positions
// as a free match when their Field1 counters also agree within k, over
// the preorder stream only.
//
// Grounded on original_source/src/lb/sed.rs::sed_struct_k, which computes
// the postorder variant too but leaves it commented out — the comment
// gives no reason, and spec.md documents this as an intentional
// restriction to carry forward rather than a bug to fix, so this mirrors
// it: preorder only. Like sed.StructDistance itself, this is a heuristic,
// not a proven lower bound.
func LbSEDStruct(a, b indices.SEDStructIndex, k int) int {
	return sed.StructDistance(a.Preorder, b.Preorder, k)
}
