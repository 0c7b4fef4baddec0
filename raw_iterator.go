// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

// rawIterator visits each of the nodes in the tree, even the ones that hold
// no value, in ascending pre-order. It keeps track of the effective path
// (what a key ending at a given node would be), which is useful for dumping
// and checking trees.
type rawIterator[T any] struct {
	// stack keeps track of edges in the frontier.
	stack []rawStackEntry[T]

	// pos is the current position of the iterator.
	pos Node[T]

	// path is the effective path of the current iterator position,
	// including the node's own partial.
	path string

	// depth is the number of edges between the root and pos.
	depth int
}

// rawStackEntry is used to keep track of the cumulative common path as well as
// its associated edges in the frontier.
type rawStackEntry[T any] struct {
	path  string
	depth int
	node  Node[T]
}

func (t *RadixTree[T]) rawIterator() *rawIterator[T] {
	i := &rawIterator[T]{}
	if t.root != nil {
		i.stack = []rawStackEntry[T]{{node: t.root}}
	}
	return i
}

// Front returns the current node that has been iterated to.
func (i *rawIterator[T]) Front() Node[T] {
	return i.pos
}

// Path returns the effective path of the current node, even if it's not
// holding a value.
func (i *rawIterator[T]) Path() string {
	return i.path
}

func (i *rawIterator[T]) Depth() int {
	return i.depth
}

// Next advances the iterator to the next node and reports whether there
// was one.
func (i *rawIterator[T]) Next() bool {
	if len(i.stack) == 0 {
		i.pos, i.path, i.depth = nil, "", 0
		return false
	}

	// Inspect the last element of the stack.
	n := len(i.stack)
	last := i.stack[n-1]
	i.stack = i.stack[:n-1]
	elem := last.node
	path := last.path + string(elem.getPartial())

	// Push the edges onto the frontier, highest first so the lowest pops next.
	elem.iterChildren(true, func(c byte, child Node[T]) bool {
		i.stack = append(i.stack, rawStackEntry[T]{
			path:  path + string(c),
			depth: last.depth + 1,
			node:  child,
		})
		return true
	})

	i.pos, i.path, i.depth = elem, path, last.depth
	return true
}
