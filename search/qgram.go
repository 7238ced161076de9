package search

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/tedsearch/core"
)

// ErrThresholdTooLarge is returned by QGramIndex.Query when k is at least
// the query's signature size: at that point every chunk could plausibly
// be dropped and the q-gram filter can no longer bound false negatives.
var ErrThresholdTooLarge = errors.New("search: threshold too large for q-gram signature size")

// emptyValue pads a string's label stream to a multiple of q; it can
// never collide with a real core.LabelID, which is always >= 1.
const emptyValue = core.LabelID(-1)

type qsig struct {
	sig []core.LabelID
	pos int
}

func sigKey(sig []core.LabelID) string {
	var b strings.Builder
	for i, v := range sig {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}

	return b.String()
}

type posting struct {
	stringID int
	origLen  int
	pos      int
}

type stringGrams struct {
	origLen int
	grams   []qsig // sorted by (sig, pos)
}

// QGramIndex is the positional q-gram filter of spec.md §4.6, grounded on
// original_source/src/lb/indexes/index_gram.rs::IndexGram. It indexes a
// batch of label streams (normally SEDIndex.Preorder streams) by their
// overlapping q-length windows, then answers "which indexed strings could
// be within edit distance k of this query" using an inverted-index
// candidate lookup followed by a positional longest-compatible-chain
// filter.
//
// Precondition: data must be supplied in non-decreasing length order,
// matching LabelIntersectionIndex's sorted-by-size contract — Query's
// posting-range binary search assumes each label's posting list is sorted
// by origLen.
type QGramIndex struct {
	q        int
	strings  []stringGrams
	invIndex map[string][]posting
}

// NewQGramIndex builds a q-gram index over data with window size q.
// Complexity: O(total length * log(total length)) for the per-string
// window sort.
func NewQGramIndex(data [][]core.LabelID, q int) *QGramIndex {
	idx := &QGramIndex{
		q:        q,
		strings:  make([]stringGrams, len(data)),
		invIndex: make(map[string][]posting),
	}

	for sid, orig := range data {
		origLen := len(orig)
		sigSize := ceilDiv(origLen, q)
		padded := padTo(orig, sigSize*q)

		grams := windows(padded, q)
		sort.Slice(grams, func(i, j int) bool { return lessQSig(grams[i], grams[j]) })

		idx.strings[sid] = stringGrams{origLen: origLen, grams: grams}
	}

	for sid, sg := range idx.strings {
		for _, g := range sg.grams {
			key := sigKey(g.sig)
			idx.invIndex[key] = append(idx.invIndex[key], posting{stringID: sid, origLen: sg.origLen, pos: g.pos})
		}
	}

	return idx
}

// Query returns the ids (indices into the data slice passed to
// NewQGramIndex) of every string that passes the q-gram filter against
// query at threshold k: a necessary, not sufficient, condition for the
// true edit distance to be <=k.
func (idx *QGramIndex) Query(query []core.LabelID, k int) ([]int, error) {
	sigSize := ceilDiv(len(query), idx.q)
	if k >= sigSize {
		return nil, ErrThresholdTooLarge
	}

	minMatchSize := len(query) - k
	if minMatchSize < 0 {
		minMatchSize = 0
	}
	maxMatchSize := len(query) + k + 1

	padded := padTo(query, sigSize*idx.q)
	chunks := chunksOf(padded, idx.q)
	sort.Slice(chunks, func(i, j int) bool { return lessQSig(chunks[i], chunks[j]) })

	candidateSet := make(map[int]bool)
	take := k + 1
	if take > len(chunks) {
		take = len(chunks)
	}
	for _, chunk := range chunks[:take] {
		postings, ok := idx.invIndex[sigKey(chunk.sig)]
		if !ok {
			continue
		}

		start := sort.Search(len(postings), func(i int) bool { return postings[i].origLen >= minMatchSize })
		end := sort.Search(len(postings), func(i int) bool { return postings[i].origLen >= maxMatchSize })

		for _, p := range postings[start:end] {
			if absInt(chunk.pos-p.pos) <= k {
				candidateSet[p.stringID] = true
			}
		}
	}

	candidates := make([]int, 0, len(candidateSet))
	for cid := range candidateSet {
		if idx.countFilter(cid, sigSize, k, chunks) {
			candidates = append(candidates, cid)
		}
	}
	sort.Ints(candidates)

	return candidates, nil
}

type matchPair struct {
	queryPos int // position of the query chunk, used as the "distinct chunk" identity
	dataPos  int // position of the matched gram within the candidate string
}

// countFilter is the safe, split-borrow rewrite of the original's
// count_filter, which relies on unsafe aliased get_unchecked/
// get_unchecked_mut to avoid Rust's borrow checker on two slices it never
// actually writes through the same alias; ordinary index access achieves
// the same result safely in Go.
func (idx *QGramIndex) countFilter(cid, sigSize, k int, chunks []qsig) bool {
	lb := sigSize - k
	candidateGrams := idx.strings[cid].grams

	// The merge compares signatures only, so equal grams at different
	// positions meet in the default branch and the |pos| <= k test decides.
	sigLess := func(a, b qsig) bool { return lessQSig(qsig{sig: a.sig}, qsig{sig: b.sig}) }

	var matches []matchPair
	i, j := 0, 0
	for i < len(chunks) && j < len(candidateGrams) {
		switch {
		case sigLess(chunks[i], candidateGrams[j]):
			i++
		case sigLess(candidateGrams[j], chunks[i]):
			j++
		default:
			if absInt(chunks[i].pos-candidateGrams[j].pos) <= k {
				matches = append(matches, matchPair{queryPos: chunks[i].pos, dataPos: candidateGrams[j].pos})
				i++
			}
			j++
		}
	}

	if len(matches) < lb {
		return false
	}

	sort.SliceStable(matches, func(a, b int) bool { return matches[a].queryPos < matches[b].queryPos })

	// A sentinel "nothing before" entry anchors the DP's base case: every
	// real match is trivially compatible with it.
	withSentinel := make([]matchPair, len(matches)+1)
	withSentinel[0] = matchPair{queryPos: -1, dataPos: -1}
	copy(withSentinel[1:], matches)

	compatible := func(a, b matchPair) bool {
		if b.queryPos == -1 {
			return true
		}

		return a.queryPos != b.queryPos && a.dataPos >= b.dataPos+idx.q
	}

	opt := make([]int, len(withSentinel))
	for pos := 1; pos < len(withSentinel); pos++ {
		mx := -1 << 30
		mn := pos
		if alt := len(withSentinel) - lb + 1; alt < mn {
			mn = alt
		}
		for back := 1; back <= mn; back++ {
			prev := pos - back
			if compatible(withSentinel[pos], withSentinel[prev]) && opt[prev]+1 > mx {
				mx = opt[prev] + 1
			}
		}
		opt[pos] = mx
	}

	best := opt[lb]
	for _, v := range opt[lb:] {
		if v > best {
			best = v
		}
	}

	return best >= lb
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}

	return (a + b - 1) / b
}

func padTo(s []core.LabelID, n int) []core.LabelID {
	out := make([]core.LabelID, n)
	copy(out, s)
	for i := len(s); i < n; i++ {
		out[i] = emptyValue
	}

	return out
}

// windows returns every overlapping length-q slice of s, stride 1.
func windows(s []core.LabelID, q int) []qsig {
	if len(s) < q {
		return nil
	}
	out := make([]qsig, 0, len(s)-q+1)
	for i := 0; i+q <= len(s); i++ {
		out = append(out, qsig{sig: append([]core.LabelID(nil), s[i:i+q]...), pos: i})
	}

	return out
}

// chunksOf returns every non-overlapping length-q block of s, stride q.
func chunksOf(s []core.LabelID, q int) []qsig {
	out := make([]qsig, 0, (len(s)+q-1)/q)
	for i := 0; i < len(s); i += q {
		end := i + q
		if end > len(s) {
			end = len(s)
		}
		out = append(out, qsig{sig: append([]core.LabelID(nil), s[i:end]...), pos: i})
	}

	return out
}

func lessQSig(a, b qsig) bool {
	for i := 0; i < len(a.sig) && i < len(b.sig); i++ {
		if a.sig[i] != b.sig[i] {
			return a.sig[i] < b.sig[i]
		}
	}
	if len(a.sig) != len(b.sig) {
		return len(a.sig) < len(b.sig)
	}

	return a.pos < b.pos
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
