// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

// The prefix scoped walks start from the node found by seekPrefix. A key
// stored exactly at the prefix takes part in the walk. If no key starts
// with the prefix they return ErrNotFound.

// FindPrefix is Find restricted to keys starting with prefix.
func (t *RadixTree[T]) FindPrefix(prefix []byte, fn FindFn[T]) (*Ref[T], error) {
	return t.find(prefix, true, false, fn)
}

// FindPrefixReverse is FindReverse restricted to keys starting with prefix.
func (t *RadixTree[T]) FindPrefixReverse(prefix []byte, fn FindFn[T]) (*Ref[T], error) {
	return t.find(prefix, true, true, fn)
}

// FoldPrefix is Fold restricted to keys starting with prefix.
func (t *RadixTree[T]) FoldPrefix(prefix []byte, fn FoldFn[T]) (int, error) {
	return t.fold(prefix, true, false, fn)
}

// FoldPrefixReverse is FoldReverse restricted to keys starting with prefix.
func (t *RadixTree[T]) FoldPrefixReverse(prefix []byte, fn FoldFn[T]) (int, error) {
	return t.fold(prefix, true, true, fn)
}

// WalkPrefix is used to walk the keys under prefix in ascending order
func (t *RadixTree[T]) WalkPrefix(prefix []byte, fn WalkFn[T]) {
	_ = t.walk(prefix, true, false, fn)
}
