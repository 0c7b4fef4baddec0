// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

// Descending walks visit a node's children from the highest selector byte
// down and report the node's own value last, since every key below a node
// sorts after the node's key.

// FindReverse returns the first entry in descending key order for which fn
// reports true, or ErrNotFound.
func (t *RadixTree[T]) FindReverse(fn FindFn[T]) (*Ref[T], error) {
	return t.find(nil, false, true, fn)
}

// FoldReverse calls fn for each entry in descending key order.
func (t *RadixTree[T]) FoldReverse(fn FoldFn[T]) (int, error) {
	return t.fold(nil, false, true, fn)
}

// WalkReverse is used to walk the tree in descending key order
func (t *RadixTree[T]) WalkReverse(fn WalkFn[T]) {
	_ = t.walk(nil, false, true, fn)
}

// Maximum returns the largest key in the tree.
func (t *RadixTree[T]) Maximum() (*Ref[T], error) {
	if t.root == nil {
		return nil, ErrEmpty
	}
	return t.FindReverse(func(Key, T) bool { return true })
}
