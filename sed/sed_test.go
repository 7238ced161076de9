// SPDX-License-Identifier: MIT
package sed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/sed"
)

func labels(ss ...int32) []core.LabelID {
	out := make([]core.LabelID, len(ss))
	for i, s := range ss {
		out[i] = core.LabelID(s)
	}

	return out
}

func TestDistance_Identical(t *testing.T) {
	a := labels(1, 2, 3)
	assert.Equal(t, 0, sed.Distance(a, a))
}

func TestDistance_Symmetric(t *testing.T) {
	a := labels(1, 2, 3, 4, 5)
	b := labels(5, 4, 3, 2, 1)
	assert.Equal(t, sed.Distance(a, b), sed.Distance(b, a))
}

func TestDistance_EmptyVsNonEmpty(t *testing.T) {
	assert.Equal(t, 3, sed.Distance(nil, labels(1, 2, 3)))
	assert.Equal(t, 3, sed.Distance(labels(1, 2, 3), nil))
}

func TestDistance_SingleSubstitution(t *testing.T) {
	a := labels(1, 2, 3)
	b := labels(1, 9, 3)
	assert.Equal(t, 1, sed.Distance(a, b))
}

// TestBoundedDistance_ScenarioThree matches specification scenario 3: the
// same pair of label streams, bounded first by k=2 (true distance 3 exceeds
// the bound and is reported as the capped sentinel 2) then by k=4 (the true
// distance 3 is within bound and is reported exactly).
func TestBoundedDistance_ScenarioThree(t *testing.T) {
	a := labels(1, 2, 3, 4, 5, 5, 6)
	b := labels(1, 2, 3, 5, 6, 7, 6)

	assert.Equal(t, 2, sed.BoundedDistance(a, b, 2))
	assert.Equal(t, 3, sed.BoundedDistance(a, b, 4))
}

func TestBoundedDistance_MatchesUnboundedWithinK(t *testing.T) {
	a := labels(1, 2, 3, 4)
	b := labels(1, 2, 9, 4)
	full := sed.Distance(a, b)
	assert.Equal(t, full, sed.BoundedDistance(a, b, 10))
}

func TestBoundedDistance_Symmetric(t *testing.T) {
	a := labels(1, 2, 3, 4, 5, 5, 6)
	b := labels(1, 2, 3, 5, 6, 7, 6)
	assert.Equal(t, sed.BoundedDistance(a, b, 2), sed.BoundedDistance(b, a, 2))
}

// TestBoundedDistance_SizeDiffExceedsK: b is a prefix of a, so the prefix
// trim leaves b empty and the exact remaining length of a (5) is returned
// rather than the capped sentinel k.
func TestBoundedDistance_SizeDiffExceedsK(t *testing.T) {
	a := labels(1, 2, 3, 4, 5, 6, 7)
	b := labels(1, 2)
	assert.Equal(t, 5, sed.BoundedDistance(a, b, 1))
}

func TestStructDistance_SameLabelDifferentStructureCostsOne(t *testing.T) {
	a := []sed.Char{{Label: 1, Field1: 0}}
	b := []sed.Char{{Label: 1, Field1: 5}}
	assert.Equal(t, 1, sed.StructDistance(a, b, 2))
}

func TestStructDistance_SameLabelCompatibleStructureIsFree(t *testing.T) {
	a := []sed.Char{{Label: 1, Field1: 0}}
	b := []sed.Char{{Label: 1, Field1: 1}}
	assert.Equal(t, 0, sed.StructDistance(a, b, 2))
}
