// File: methods_links.go
// Role: Child/sibling navigation — FirstChild/NextSibling/PrevSibling
// accessors and the Children/NumChildren/IsLeaf queries built on top of them.
// Determinism:
//   - Children(v) walks the FirstChild/NextSibling chain, returning nodes
//     in the same left-to-right order they were added via AddNode.

package core

// FirstChild returns the NodeID of id's leftmost child, or NoNode if id
// is a leaf.
// Complexity: O(1).
func (t *Tree) FirstChild(id int32) (int32, error) {
	n, err := t.node(id)
	if err != nil {
		return NoNode, err
	}

	return n.FirstChild, nil
}

// NextSibling returns the NodeID of the child immediately to the right of
// id under the same parent, or NoNode if id is the rightmost child.
// Complexity: O(1).
func (t *Tree) NextSibling(id int32) (int32, error) {
	n, err := t.node(id)
	if err != nil {
		return NoNode, err
	}

	return n.NextSibling, nil
}

// PrevSibling returns the NodeID of the child immediately to the left of
// id under the same parent, or NoNode if id is the leftmost child.
// Complexity: O(1).
func (t *Tree) PrevSibling(id int32) (int32, error) {
	n, err := t.node(id)
	if err != nil {
		return NoNode, err
	}

	return n.PrevSibling, nil
}

// Children returns id's children, in source (left-to-right) order.
// Complexity: O(k) where k is the number of children.
func (t *Tree) Children(id int32) ([]int32, error) {
	n, err := t.node(id)
	if err != nil {
		return nil, err
	}

	var out []int32
	for c := n.FirstChild; c != NoNode; c = t.nodes[c].NextSibling {
		out = append(out, c)
	}

	return out, nil
}

// NumChildren reports how many children id has.
// Complexity: O(k).
func (t *Tree) NumChildren(id int32) (int, error) {
	n, err := t.node(id)
	if err != nil {
		return 0, err
	}

	count := 0
	for c := n.FirstChild; c != NoNode; c = t.nodes[c].NextSibling {
		count++
	}

	return count, nil
}

// IsLeaf reports whether id has no children.
// Complexity: O(1).
func (t *Tree) IsLeaf(id int32) (bool, error) {
	n, err := t.node(id)
	if err != nil {
		return false, err
	}

	return n.FirstChild == NoNode, nil
}
