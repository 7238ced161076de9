package indices

import "github.com/katalvlaran/tedsearch/core"

// bbTuple is a dense key for (node label, first-child label, right-sibling
// label); -1 stands for "none" in either optional slot.
type bbTuple struct {
	label, firstChild, rightSibling int32
}

// BinaryBranchConverter assigns a dense id to each distinct (label,
// first-child-label, right-sibling-label) tuple it encounters, in
// first-seen order. It is owned by a single batch: build it once, call
// Convert for every tree in that batch, then discard it. Reusing a
// converter across unrelated batches is meaningless, since ids are only
// comparable within the batch that produced them — this mirrors the
// reference converter's single-batch ownership contract.
type BinaryBranchConverter struct {
	ids    map[bbTuple]int
	nextID int
}

// NewBinaryBranchConverter returns an empty converter ready for a batch.
func NewBinaryBranchConverter() *BinaryBranchConverter {
	return &BinaryBranchConverter{ids: make(map[bbTuple]int)}
}

// Convert builds one BinaryBranchVec per tree in trees, in order, assigning
// shared dense ids across all of them via c. Complexity: O(total nodes).
func (c *BinaryBranchConverter) Convert(trees []*core.Tree) ([]BinaryBranchVec, error) {
	out := make([]BinaryBranchVec, len(trees))
	for i, tr := range trees {
		vec, err := c.convertOne(tr)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}

	return out, nil
}

func (c *BinaryBranchConverter) convertOne(tr *core.Tree) (BinaryBranchVec, error) {
	root, err := tr.Root()
	if err != nil {
		return BinaryBranchVec{}, err
	}

	counts := make(map[int]int)
	if err := c.visit(tr, root, -1, counts); err != nil {
		return BinaryBranchVec{}, err
	}

	return BinaryBranchVec{Counts: counts, TreeSize: tr.Size()}, nil
}

func (c *BinaryBranchConverter) visit(tr *core.Tree, v, rightSiblingLabel int32, counts map[int]int) error {
	label, err := tr.Label(v)
	if err != nil {
		return err
	}
	children, err := tr.Children(v)
	if err != nil {
		return err
	}

	firstChild := int32(-1)
	if len(children) > 0 {
		fc, err := tr.Label(children[0])
		if err != nil {
			return err
		}
		firstChild = int32(fc)
	}

	key := bbTuple{label: int32(label), firstChild: firstChild, rightSibling: rightSiblingLabel}
	id, ok := c.ids[key]
	if !ok {
		id = c.nextID
		c.nextID++
		c.ids[key] = id
	}
	counts[id]++

	for i, child := range children {
		sibLabel := int32(-1)
		if i+1 < len(children) {
			sl, err := tr.Label(children[i+1])
			if err != nil {
				return err
			}
			sibLabel = int32(sl)
		}
		if err := c.visit(tr, child, sibLabel, counts); err != nil {
			return err
		}
	}

	return nil
}
