// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import "unsafe"

// Node48 indexes children through a 256 entry table. Entries are 1-indexed
// so that zero means no child.
type Node48[T any] struct {
	partial     []byte
	leaf        *NodeLeaf[T]
	numChildren uint8
	keys        [256]byte
	children    [48]Node[T]
}

func (n *Node48[T]) getArtNodeType() nodeType {
	return node48
}

func (n *Node48[T]) getPartial() []byte {
	return n.partial
}

func (n *Node48[T]) setPartial(partial []byte) {
	n.partial = partial
}

func (n *Node48[T]) getNodeLeaf() *NodeLeaf[T] {
	return n.leaf
}

func (n *Node48[T]) setNodeLeaf(nl *NodeLeaf[T]) {
	n.leaf = nl
}

func (n *Node48[T]) getNumChildren() int {
	return int(n.numChildren)
}

func (n *Node48[T]) isFull() bool {
	return n.numChildren >= 48
}

func (n *Node48[T]) findChild(c byte) *Node[T] {
	i := n.keys[c]
	if i == 0 {
		return nil
	}
	return &n.children[i-1]
}

func (n *Node48[T]) addChild(c byte, child Node[T]) {
	if n.numChildren >= 48 {
		panic("node48 full!")
	}
	pos := 0
	for n.children[pos] != nil {
		pos++
	}
	n.children[pos] = child
	n.keys[c] = byte(pos + 1)
	n.numChildren++
}

func (n *Node48[T]) removeChild(c byte) {
	i := n.keys[c]
	if i == 0 {
		return
	}
	n.children[i-1] = nil
	n.keys[c] = 0
	n.numChildren--
}

func (n *Node48[T]) firstChild() (byte, Node[T]) {
	for c := 0; c < 256; c++ {
		if i := n.keys[c]; i != 0 {
			return byte(c), n.children[i-1]
		}
	}
	return 0, nil
}

func (n *Node48[T]) iterChildren(reverse bool, fn func(byte, Node[T]) bool) bool {
	for itr := 0; itr < 256; itr++ {
		c := itr
		if reverse {
			c = 255 - itr
		}
		i := n.keys[c]
		if i == 0 {
			continue
		}
		if !fn(byte(c), n.children[i-1]) {
			return false
		}
	}
	return true
}

func (n *Node48[T]) grow() Node[T] {
	nn := &Node256[T]{
		partial: n.partial,
		leaf:    n.leaf,
	}
	for c := 0; c < 256; c++ {
		if i := n.keys[c]; i != 0 {
			nn.addChild(byte(c), n.children[i-1])
		}
	}
	return nn
}

// Shrink to a Node16 once it fits with room to spare, otherwise return nil.
func (n *Node48[T]) shrink() Node[T] {
	if n.numChildren > 12 {
		return nil
	}
	nn := &Node16[T]{
		partial: n.partial,
		leaf:    n.leaf,
	}
	for c := 0; c < 256; c++ {
		if i := n.keys[c]; i != 0 {
			nn.addChild(byte(c), n.children[i-1])
		}
	}
	return nn
}

func (n *Node48[T]) memSize() uint64 {
	size := uint64(unsafe.Sizeof(*n)) + uint64(len(n.partial))
	if n.leaf != nil {
		size += n.leaf.memSize()
	}
	return size
}
