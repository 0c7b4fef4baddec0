// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

const (
	leafType nodeType = iota
	node4
	node16
	node48
	node256
)

type nodeType int

// Node is one position in the compressed path. The partial is the run of
// key bytes shared by everything below the node, not counting the selector
// byte that keys the node in its parent.
type Node[T any] interface {
	getArtNodeType() nodeType
	getPartial() []byte
	setPartial([]byte)

	// getNodeLeaf returns the value slot, nil if no key ends here.
	getNodeLeaf() *NodeLeaf[T]
	setNodeLeaf(*NodeLeaf[T])

	getNumChildren() int
	isFull() bool
	findChild(byte) *Node[T]
	addChild(byte, Node[T])
	removeChild(byte)
	firstChild() (byte, Node[T])

	// iterChildren calls fn for each child in selector order, descending if
	// reverse is set. It returns false if fn stopped the iteration.
	iterChildren(reverse bool, fn func(byte, Node[T]) bool) bool

	grow() Node[T]
	shrink() Node[T]

	memSize() uint64
	kind() string
}
