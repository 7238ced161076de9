package driver

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tedsearch/core"
	"github.com/katalvlaran/tedsearch/filters"
	"github.com/katalvlaran/tedsearch/indices"
	"github.com/katalvlaran/tedsearch/search"
	"github.com/katalvlaran/tedsearch/traversal"
	"github.com/katalvlaran/tedsearch/verify"
)

// Match is one corpus tree found within a query's threshold, the
// pipeline's final output for one query.
type Match struct {
	// TreeIndex is the position of the matching tree in Pipeline.Tree's
	// indexing (ascending-size sorted order, not the caller's original
	// input order).
	TreeIndex int
	// Distance is verify.Verify's reported distance estimate.
	Distance int
}

// Pipeline holds every per-tree artifact built once over a corpus, plus
// the candidate-generation indices derived from them, ready to answer
// repeated Query calls against the same corpus.
type Pipeline struct {
	dict *core.LabelDict
	cfg  pipelineConfig

	trees     []*core.Tree
	sed       []indices.SEDIndex
	sedStruct []indices.SEDStructIndex
	inv       []indices.InvList
	labelSet  []indices.LabelSetRecord
	hist      []indices.Histograms
	bb        []indices.BinaryBranchVec
	bbConv    *indices.BinaryBranchConverter

	liIndex  *search.LabelIntersectionIndex
	qgram    *search.QGramIndex
	ordering indices.RarityOrdering
}

// Build indexes every tree in trees once, in ascending tree-size order
// (the order LabelIntersectionIndex and QGramIndex both require), and
// returns a Pipeline ready for repeated Query calls.
//
// Complexity: O(total node count) for index construction, plus
// O(T log T) to sort the corpus by size.
func Build(dict *core.LabelDict, trees []*core.Tree, opts ...PipelineOption) (*Pipeline, error) {
	if len(trees) == 0 {
		return nil, ErrEmptyCorpus
	}

	sorted := append([]*core.Tree(nil), trees...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Size() < sorted[j].Size() })

	p := &Pipeline{
		dict: dict,
		cfg:  newPipelineConfig(opts...),
		trees: sorted,
	}

	p.sed = make([]indices.SEDIndex, len(sorted))
	p.sedStruct = make([]indices.SEDStructIndex, len(sorted))
	p.inv = make([]indices.InvList, len(sorted))
	p.labelSet = make([]indices.LabelSetRecord, len(sorted))
	p.hist = make([]indices.Histograms, len(sorted))

	for i, tr := range sorted {
		w, err := traversal.Walk(tr)
		if err != nil {
			return nil, fmt.Errorf("driver: build tree %d: %w", i, err)
		}

		p.sed[i] = indices.BuildSEDIndex(w)
		p.sedStruct[i] = indices.BuildSEDStructIndex(w)
		p.inv[i] = indices.BuildInvList(w)
		p.labelSet[i] = indices.BuildLabelSetRecord(w)

		h, err := indices.BuildHistograms(tr, w)
		if err != nil {
			return nil, fmt.Errorf("driver: build histograms for tree %d: %w", i, err)
		}
		p.hist[i] = h
	}

	p.bbConv = indices.NewBinaryBranchConverter()
	bb, err := p.bbConv.Convert(sorted)
	if err != nil {
		return nil, fmt.Errorf("driver: build binary-branch vectors: %w", err)
	}
	p.bb = bb

	p.ordering = buildRarityOrdering(p.inv)

	liIndex, err := search.NewLabelIntersectionIndex(p.inv)
	if err != nil {
		return nil, fmt.Errorf("driver: build label-intersection index: %w", err)
	}
	p.liIndex = liIndex

	if p.cfg.useQGram {
		preorders := make([][]core.LabelID, len(p.sed))
		for i, s := range p.sed {
			preorders[i] = s.Preorder
		}
		p.qgram = search.NewQGramIndex(preorders, p.cfg.qgramWindow)
	}

	return p, nil
}

// Tree returns the corpus tree at i, in the pipeline's ascending-size
// sorted order.
func (p *Pipeline) Tree(i int) *core.Tree {
	return p.trees[i]
}

// Len reports the number of trees in the corpus.
func (p *Pipeline) Len() int {
	return len(p.trees)
}

// Query finds every corpus tree within tree-edit distance k of query,
// applying search/'s candidate-generation indices first, then filters/ in
// increasing cost order — LbLabelIntersectionK, LbBinaryBranch, LbStruct,
// LbSEDK — rejecting a candidate the moment any filter exceeds k, and
// finally handing survivors to verify.Verify.
//
// Complexity: candidate generation is sublinear in corpus size when
// queries share few labels with most of the corpus; each surviving
// candidate costs O(filters work) + one verify.Verify call.
func (p *Pipeline) Query(query *core.Tree, k int) ([]Match, error) {
	w, err := traversal.Walk(query)
	if err != nil {
		return nil, fmt.Errorf("driver: walk query: %w", err)
	}

	qSED := indices.BuildSEDIndex(w)
	qInv := indices.BuildInvList(w)
	qLabelSet := indices.BuildLabelSetRecord(w)

	qHist, err := indices.BuildHistograms(query, w)
	if err != nil {
		return nil, fmt.Errorf("driver: build query histograms: %w", err)
	}
	_ = qHist // reserved for a future LbHistogram pre-filter stage

	qBBs, err := p.bbConv.Convert([]*core.Tree{query})
	if err != nil {
		return nil, fmt.Errorf("driver: build query binary-branch vector: %w", err)
	}
	qBB := qBBs[0]

	candidates := p.liIndex.QueryIndexPrefix(qInv, k, p.ordering, p.inv)

	if p.cfg.useQGram {
		qgramCandidates, err := p.qgram.Query(qSED.Preorder, k)
		switch {
		case err == nil:
			candidates = intersectSorted(candidates, qgramCandidates)
		case err == search.ErrThresholdTooLarge:
			// Query is too small for this q-gram window to bound false
			// negatives; fall back to the label-intersection candidate set
			// alone rather than failing the whole query.
		default:
			return nil, fmt.Errorf("driver: q-gram query: %w", err)
		}
	}

	var matches []Match
	for _, cid := range candidates {
		if filters.LbLabelIntersectionK(qInv, p.inv[cid], k) > k {
			continue
		}
		if filters.LbBinaryBranch(qBB, p.bb[cid], k) > k {
			continue
		}
		if filters.LbStruct(qLabelSet, p.labelSet[cid], k) > k {
			continue
		}
		if filters.LbSEDK(qSED, p.sed[cid], k) > k {
			continue
		}

		dist, within := verify.Verify(qSED, p.sed[cid], k)
		if within {
			matches = append(matches, Match{TreeIndex: cid, Distance: dist})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}

		return matches[i].TreeIndex < matches[j].TreeIndex
	})

	return matches, nil
}

func buildRarityOrdering(invLists []indices.InvList) indices.RarityOrdering {
	counts := make(map[core.LabelID]int)
	maxLabel := core.LabelID(0)
	for _, inv := range invLists {
		for label, postings := range inv.ByLabel {
			counts[label] += len(postings)
			if label > maxLabel {
				maxLabel = label
			}
		}
	}

	labels := make([]core.LabelID, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] < counts[labels[j]]
		}

		return labels[i] < labels[j]
	})

	ordering := make(indices.RarityOrdering, maxLabel+1)
	for rank, label := range labels {
		ordering[label] = rank
	}

	return ordering
}

func intersectSorted(a, b []int) []int {
	out := make([]int, 0, minLen(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

func minLen(a, b int) int {
	if a < b {
		return a
	}

	return b
}
