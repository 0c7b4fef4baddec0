// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import "unsafe"

type Node256[T any] struct {
	partial     []byte
	leaf        *NodeLeaf[T]
	numChildren uint16
	children    [256]Node[T]
}

func (n *Node256[T]) getArtNodeType() nodeType {
	return node256
}

func (n *Node256[T]) getPartial() []byte {
	return n.partial
}

func (n *Node256[T]) setPartial(partial []byte) {
	n.partial = partial
}

func (n *Node256[T]) getNodeLeaf() *NodeLeaf[T] {
	return n.leaf
}

func (n *Node256[T]) setNodeLeaf(nl *NodeLeaf[T]) {
	n.leaf = nl
}

func (n *Node256[T]) getNumChildren() int {
	return int(n.numChildren)
}

func (n *Node256[T]) isFull() bool {
	return false
}

func (n *Node256[T]) findChild(c byte) *Node[T] {
	if n.children[c] == nil {
		return nil
	}
	return &n.children[c]
}

func (n *Node256[T]) addChild(c byte, child Node[T]) {
	if n.children[c] == nil {
		n.numChildren++
	}
	n.children[c] = child
}

// removeChild drops the child under c. The caller may already have cleared
// the slot through the pointer findChild handed out, so c must name a child
// that was present.
func (n *Node256[T]) removeChild(c byte) {
	n.children[c] = nil
	n.numChildren--
}

func (n *Node256[T]) firstChild() (byte, Node[T]) {
	for c := 0; c < 256; c++ {
		if n.children[c] != nil {
			return byte(c), n.children[c]
		}
	}
	return 0, nil
}

func (n *Node256[T]) iterChildren(reverse bool, fn func(byte, Node[T]) bool) bool {
	for itr := 0; itr < 256; itr++ {
		c := itr
		if reverse {
			c = 255 - itr
		}
		if n.children[c] == nil {
			continue
		}
		if !fn(byte(c), n.children[c]) {
			return false
		}
	}
	return true
}

func (n *Node256[T]) grow() Node[T] {
	panic("grow can not be called on node256")
}

// Shrink to a Node48 on underflow, not right at 48 to prevent thrashing on
// the boundary.
func (n *Node256[T]) shrink() Node[T] {
	if n.numChildren > 40 {
		return nil
	}
	nn := &Node48[T]{
		partial: n.partial,
		leaf:    n.leaf,
	}
	for c := 0; c < 256; c++ {
		if n.children[c] != nil {
			nn.addChild(byte(c), n.children[c])
		}
	}
	return nn
}

func (n *Node256[T]) memSize() uint64 {
	size := uint64(unsafe.Sizeof(*n)) + uint64(len(n.partial))
	if n.leaf != nil {
		size += n.leaf.memSize()
	}
	return size
}
