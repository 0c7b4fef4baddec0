// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

// Insert stores value under key and returns a Ref to the new entry. It
// fails with ErrExists if the key is already stored, ErrInvalidKey if the
// key is empty, and ErrOutOfMemory if the memory limit would be exceeded.
// The tree is left unchanged on failure.
func (t *RadixTree[T]) Insert(key Key, value T) (*Ref[T], error) {
	if err := t.InsertValue(key, value); err != nil {
		return nil, err
	}
	return newRef(key, value), nil
}

// InsertValue is Insert without building a Ref.
func (t *RadixTree[T]) InsertValue(key Key, value T) error {
	if !key.valid() {
		return ErrInvalidKey
	}
	if err := t.recursiveInsert(&t.root, key, value, 0); err != nil {
		return err
	}
	t.size++
	t.mutated()
	return nil
}

// recursiveInsert walks down from the slot np. Every check that can fail
// runs before the first write, so an error leaves the tree as it was.
func (t *RadixTree[T]) recursiveInsert(np *Node[T], key Key, value T, depth int) error {
	n := *np
	if n == nil {
		// Only the root of an empty tree
		l := &NodeLeaf[T]{partial: copyBytes(key[depth:]), value: value}
		if err := t.reserve(int64(l.memSize())); err != nil {
			return err
		}
		*np = l
		t.track(l)
		return nil
	}

	partial := n.getPartial()
	m := commonPrefixLen(partial, key[depth:])
	if m < len(partial) {
		return t.split(np, key, value, depth, m)
	}
	depth += m

	// The key ends exactly at this node.
	if depth == len(key) {
		if n.getNodeLeaf() != nil {
			return ErrExists
		}
		if err := t.reserve(int64(nodeStructSize[T](leafType))); err != nil {
			return err
		}
		t.untrack(n)
		n.setNodeLeaf(&NodeLeaf[T]{value: value})
		t.track(n)
		return nil
	}

	// Find a child to recurse to
	c := key[depth]
	if child := n.findChild(c); child != nil {
		return t.recursiveInsert(child, key, value, depth+1)
	}

	// No child, the remainder becomes a new leaf under us.
	newLeaf := &NodeLeaf[T]{partial: copyBytes(key[depth+1:]), value: value}
	need := int64(newLeaf.memSize())
	switch {
	case n.getArtNodeType() == leafType:
		need += int64(nodeStructSize[T](node4))
	case n.isFull():
		typ := n.getArtNodeType()
		need += int64(nodeStructSize[T](grownType(typ))) - int64(nodeStructSize[T](typ))
	}
	if err := t.reserve(need); err != nil {
		return err
	}

	t.untrack(n)
	switch {
	case n.getArtNodeType() == leafType:
		n = n.(*NodeLeaf[T]).promote()
	case n.isFull():
		n = n.grow()
	}
	n.addChild(c, newLeaf)
	*np = n
	t.track(n)
	t.track(newLeaf)
	return nil
}

// split handles a key that leaves the partial of *np after m bytes. A new
// Node4 takes the common run and replaces the node in its slot; the old
// node keeps what followed its selector byte. The inserted value lands on
// the new node if the key ends at m, or in a new sibling leaf otherwise.
func (t *RadixTree[T]) split(np *Node[T], key Key, value T, depth, m int) error {
	n := *np
	partial := n.getPartial()
	rest := key[depth:]

	var newLeaf *NodeLeaf[T]
	need := int64(nodeStructSize[T](node4)) + int64(m) - int64(m+1)
	if m == len(rest) {
		need += int64(nodeStructSize[T](leafType))
	} else {
		newLeaf = &NodeLeaf[T]{partial: copyBytes(rest[m+1:]), value: value}
		need += int64(newLeaf.memSize())
	}
	if err := t.reserve(need); err != nil {
		return err
	}

	branch := &Node4[T]{partial: copyBytes(partial[:m])}

	// Adjust the prefix of the old node
	t.untrack(n)
	n.setPartial(copyBytes(partial[m+1:]))
	t.track(n)
	branch.addChild(partial[m], n)

	if newLeaf == nil {
		branch.setNodeLeaf(&NodeLeaf[T]{value: value})
	} else {
		branch.addChild(rest[m], newLeaf)
		t.track(newLeaf)
	}
	t.track(branch)
	*np = branch
	return nil
}
