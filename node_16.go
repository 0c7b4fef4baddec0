// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import (
	"unsafe"

	"golang.org/x/exp/slices"
)

type Node16[T any] struct {
	partial     []byte
	leaf        *NodeLeaf[T]
	numChildren uint8
	keys        [16]byte
	children    [16]Node[T]
}

func (n *Node16[T]) getArtNodeType() nodeType {
	return node16
}

func (n *Node16[T]) getPartial() []byte {
	return n.partial
}

func (n *Node16[T]) setPartial(partial []byte) {
	n.partial = partial
}

func (n *Node16[T]) getNodeLeaf() *NodeLeaf[T] {
	return n.leaf
}

func (n *Node16[T]) setNodeLeaf(nl *NodeLeaf[T]) {
	n.leaf = nl
}

func (n *Node16[T]) getNumChildren() int {
	return int(n.numChildren)
}

func (n *Node16[T]) isFull() bool {
	return n.numChildren >= 16
}

func (n *Node16[T]) findChild(c byte) *Node[T] {
	idx, found := slices.BinarySearch(n.keys[:n.numChildren], c)
	if !found {
		return nil
	}
	return &n.children[idx]
}

func (n *Node16[T]) addChild(c byte, child Node[T]) {
	if n.numChildren >= 16 {
		panic("node16 full!")
	}
	num := int(n.numChildren)
	idx, _ := slices.BinarySearch(n.keys[:num], c)
	// Shift to make room
	copy(n.keys[idx+1:num+1], n.keys[idx:num])
	copy(n.children[idx+1:num+1], n.children[idx:num])
	n.keys[idx] = c
	n.children[idx] = child
	n.numChildren++
}

func (n *Node16[T]) removeChild(c byte) {
	num := int(n.numChildren)
	idx, found := slices.BinarySearch(n.keys[:num], c)
	if !found {
		return
	}
	copy(n.keys[idx:num-1], n.keys[idx+1:num])
	copy(n.children[idx:num-1], n.children[idx+1:num])
	n.keys[num-1] = 0
	n.children[num-1] = nil
	n.numChildren--
}

func (n *Node16[T]) firstChild() (byte, Node[T]) {
	if n.numChildren == 0 {
		return 0, nil
	}
	return n.keys[0], n.children[0]
}

func (n *Node16[T]) iterChildren(reverse bool, fn func(byte, Node[T]) bool) bool {
	num := int(n.numChildren)
	for i := 0; i < num; i++ {
		idx := i
		if reverse {
			idx = num - 1 - i
		}
		if !fn(n.keys[idx], n.children[idx]) {
			return false
		}
	}
	return true
}

func (n *Node16[T]) grow() Node[T] {
	nn := &Node48[T]{
		partial: n.partial,
		leaf:    n.leaf,
	}
	for i := 0; i < int(n.numChildren); i++ {
		nn.addChild(n.keys[i], n.children[i])
	}
	return nn
}

// Shrink to a Node4 once it fits with room to spare, otherwise return nil.
func (n *Node16[T]) shrink() Node[T] {
	if n.numChildren > 3 {
		return nil
	}
	nn := &Node4[T]{
		partial:     n.partial,
		leaf:        n.leaf,
		numChildren: n.numChildren,
	}
	copy(nn.keys[:], n.keys[:n.numChildren])
	copy(nn.children[:], n.children[:n.numChildren])
	return nn
}

func (n *Node16[T]) memSize() uint64 {
	size := uint64(unsafe.Sizeof(*n)) + uint64(len(n.partial))
	if n.leaf != nil {
		size += n.leaf.memSize()
	}
	return size
}
