package filters

import (
	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/indices"
)

// LbStruct is the structural lower bound: it greedily pairs nodes sharing
// a label across the two trees whenever their region vectors are within
// L1 distance k of each other, restricting the inner search to a
// postorder-number window of width 2k+1 (any pairing outside that window
// could never satisfy the L1 budget on its own). Unpaired label weight
// contributes directly to the bound.
//
// Grounded on original_source/src/lb/structural_filter.rs::ted.
func LbStruct(a, b indices.LabelSetRecord, k int) int {
	bigger := maxInt(a.TreeSize, b.TreeSize)
	if absInt(a.TreeSize-b.TreeSize) > k {
		return k + 1
	}

	overlap := 0
	for label, set1 := range a.ByLabel {
		set2, ok := b.ByLabel[label]
		if !ok {
			continue
		}

		if set1.Weight == 1 && set2.Weight == 1 {
			if set1.Nodes[0].L1(set2.Nodes[0]) <= k {
				overlap++
				continue
			}
		}

		s1, s2 := set1.Nodes, set2.Nodes
		if set2.Weight < set1.Weight {
			s1, s2 = s2, s1
		}

		for _, n1 := range s1 {
			kWindow := n1.PostorderID - k
			if kWindow < 0 {
				kWindow = 0
			}

			matched := false
			for _, n2 := range s2 {
				if kWindow < len(s2) && n2.PostorderID < kWindow {
					continue
				}
				if n2.PostorderID > k+n1.PostorderID {
					break
				}
				if n1.L1(n2) <= k {
					matched = true
					break
				}
			}
			if matched {
				overlap++
			}
		}
	}

	return bigger - overlap
}

// regionScratch is the per-query mutable state LbStructVariant needs:
// whether a node ended up mapped in the first pass, and its unmapped-node
// region tally going into the second pass. Kept external to
// indices.LabelSetRecord/StructuralVec so the underlying index stays
// immutable and shareable across concurrent queries; a fresh regionScratch
// is built and discarded on every LbStructVariant call, mirroring the
// original's per-call clone of its structural-filter tuples.
type regionScratch map[core.LabelID][]nodeScratch

type nodeScratch struct {
	mapped   bool
	unmapped [4]int // Left, Ancestors, Right, Descendants counts of unmapped peers
}

func newRegionScratch(rec indices.LabelSetRecord) regionScratch {
	rs := make(regionScratch, len(rec.ByLabel))
	for label, se := range rec.ByLabel {
		rs[label] = make([]nodeScratch, len(se.Nodes))
	}

	return rs
}

// LbStructVariant is the two-pass refinement of LbStruct: a first pass
// pairs nodes by plain region L1 distance exactly as LbStruct does, then
// every node's count of still-unmapped peers per region is computed, and a
// second pass tries to pair the nodes that the first pass left unmapped on
// the scanning side of each label (the side with fewer nodes of that
// label, or the first tree's side on a tie), using a refined distance that
// discounts each region by its unmapped-peer count before comparing
// (max(|(region-unmapped)_a - (region-unmapped)_b|, max(|unmapped_a|,
// |unmapped_b|)) per region, summed over all four). The result is size
// minus the second pass's overlap; it is a heuristic, not a proven lower
// bound, and can exceed the true tree-edit distance. All mapped flags are
// reset to false before returning, matching the original's own
// (effectively vestigial, since its clone is about to be dropped) final
// reset_mappings calls.
//
// Grounded on original_source/src/lb/structural_filter.rs::ted_variant,
// set_unmapped_regions, reset_mappings.
func LbStructVariant(a, b indices.LabelSetRecord, k int) int {
	bigger := maxInt(a.TreeSize, b.TreeSize)
	if absInt(a.TreeSize-b.TreeSize) > k {
		return k + 1
	}

	sa := newRegionScratch(a)
	sb := newRegionScratch(b)

	simpleDist := func(n1 indices.StructuralVec, _ [4]int, n2 indices.StructuralVec, _ [4]int) int {
		return n1.L1(n2)
	}
	nodesOverlap(a, b, k, sa, sb, simpleDist)

	setUnmappedRegions(a, sa)
	setUnmappedRegions(b, sb)

	refinedDist := func(n1 indices.StructuralVec, u1 [4]int, n2 indices.StructuralVec, u2 [4]int) int {
		r1 := [4]int{n1.Left, n1.Ancestors, n1.Right, n1.Descendants}
		r2 := [4]int{n2.Left, n2.Ancestors, n2.Right, n2.Descendants}
		sum := 0
		for i := 0; i < 4; i++ {
			d := absInt((r1[i] - u1[i]) - (r2[i] - u2[i]))
			m := maxInt(absInt(u1[i]), absInt(u2[i]))
			sum += maxInt(d, m)
		}

		return sum
	}
	overlap := nodesOverlap(a, b, k, sa, sb, refinedDist)

	resetMapped(sa)
	resetMapped(sb)

	return bigger - overlap
}

func nodesOverlap(
	a, b indices.LabelSetRecord,
	k int,
	sa, sb regionScratch,
	dist func(n1 indices.StructuralVec, u1 [4]int, n2 indices.StructuralVec, u2 [4]int) int,
) int {
	overlap := 0
	for label, set1 := range a.ByLabel {
		set2, ok := b.ByLabel[label]
		if !ok {
			continue
		}
		scr1, scr2 := sa[label], sb[label]

		if set1.Weight == 1 && set2.Weight == 1 && !scr1[0].mapped {
			if dist(set1.Nodes[0], scr1[0].unmapped, set2.Nodes[0], scr2[0].unmapped) <= k {
				scr1[0].mapped = true
				scr2[0].mapped = true
				overlap++
				continue
			}
		}

		n1s, n2s := set1.Nodes, set2.Nodes
		u1s, u2s := scr1, scr2
		if set2.Weight < set1.Weight {
			n1s, n2s = n2s, n1s
			u1s, u2s = u2s, u1s
		}

		for i, n1 := range n1s {
			if u1s[i].mapped {
				continue
			}
			kWindow := n1.PostorderID - k
			if kWindow < 0 {
				kWindow = 0
			}

			matched := false
			for j, n2 := range n2s {
				if kWindow < len(n2s) && n2.PostorderID < kWindow {
					continue
				}
				if n2.PostorderID > k+n1.PostorderID {
					break
				}
				if dist(n1, u1s[i].unmapped, n2, u2s[j].unmapped) <= k {
					u1s[i].mapped = true
					u2s[j].mapped = true
					matched = true
					break
				}
			}
			if matched {
				overlap++
			}
		}
	}

	return overlap
}

func setUnmappedRegions(rec indices.LabelSetRecord, scratch regionScratch) {
	type nodeRef struct {
		vec   indices.StructuralVec
		label core.LabelID
		idx   int
	}

	all := make([]nodeRef, 0, rec.TreeSize)
	unmapped := make([]nodeRef, 0, rec.TreeSize)
	for label, se := range rec.ByLabel {
		for i, v := range se.Nodes {
			ref := nodeRef{vec: v, label: label, idx: i}
			all = append(all, ref)
			if !scratch[label][i].mapped {
				unmapped = append(unmapped, ref)
			}
		}
	}

	for _, n := range all {
		var regions [4]int
		for _, u := range unmapped {
			if u.vec.PostorderID == n.vec.PostorderID {
				continue
			}
			switch {
			case u.vec.PostorderID < n.vec.PostorderID && u.vec.PreorderID < n.vec.PreorderID:
				regions[0]++ // Left
			case u.vec.PostorderID > n.vec.PostorderID && u.vec.PreorderID > n.vec.PreorderID:
				regions[2]++ // Right
			case u.vec.PostorderID > n.vec.PostorderID && u.vec.PreorderID < n.vec.PreorderID:
				regions[1]++ // Ancestors
			default:
				regions[3]++ // Descendants
			}
		}
		scratch[n.label][n.idx].unmapped = regions
	}
}

func resetMapped(scratch regionScratch) {
	for label := range scratch {
		for i := range scratch[label] {
			scratch[label][i].mapped = false
		}
	}
}
