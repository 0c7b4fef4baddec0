// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import "unsafe"

// NodeLeaf is a node without children. It also serves as the value slot of
// inner nodes, in which case its partial is unused and nil.
type NodeLeaf[T any] struct {
	partial []byte
	value   T
}

func (n *NodeLeaf[T]) getArtNodeType() nodeType {
	return leafType
}

func (n *NodeLeaf[T]) getPartial() []byte {
	return n.partial
}

func (n *NodeLeaf[T]) setPartial(partial []byte) {
	n.partial = partial
}

// A leaf is its own value slot.
func (n *NodeLeaf[T]) getNodeLeaf() *NodeLeaf[T] {
	return n
}

func (n *NodeLeaf[T]) setNodeLeaf(*NodeLeaf[T]) {
	panic("setNodeLeaf called on leaf")
}

func (n *NodeLeaf[T]) getNumChildren() int {
	return 0
}

func (n *NodeLeaf[T]) isFull() bool {
	return true
}

func (n *NodeLeaf[T]) findChild(byte) *Node[T] {
	return nil
}

func (n *NodeLeaf[T]) addChild(byte, Node[T]) {
	panic("addChild called on leaf")
}

func (n *NodeLeaf[T]) removeChild(byte) {
	panic("removeChild called on leaf")
}

func (n *NodeLeaf[T]) firstChild() (byte, Node[T]) {
	return 0, nil
}

func (n *NodeLeaf[T]) iterChildren(bool, func(byte, Node[T]) bool) bool {
	return true
}

func (n *NodeLeaf[T]) grow() Node[T] {
	panic("grow called on leaf")
}

func (n *NodeLeaf[T]) shrink() Node[T] {
	return nil
}

func (n *NodeLeaf[T]) memSize() uint64 {
	return uint64(unsafe.Sizeof(*n)) + uint64(len(n.partial))
}

// promote turns the leaf into a Node4 that keeps the leaf as its value slot.
func (n *NodeLeaf[T]) promote() *Node4[T] {
	nn := &Node4[T]{
		partial: n.partial,
		leaf:    n,
	}
	n.partial = nil
	return nn
}
