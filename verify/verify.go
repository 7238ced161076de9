package verify

import (
	"github.com/katalvlaran/tedsearch/indices"
	"github.com/katalvlaran/tedsearch/sed"
)

// Verify reports the stand-in distance estimate between two trees'
// SEDIndex artifacts and whether it is within k. See the package doc for
// the soundness direction this estimate actually guarantees.
func Verify(a, b indices.SEDIndex, k int) (dist int, within bool) {
	pre := sed.Distance(a.Preorder, b.Preorder)
	post := sed.Distance(a.Postorder, b.Postorder)

	dist = pre
	if post > dist {
		dist = post
	}

	return dist, dist <= k
}
