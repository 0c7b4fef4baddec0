// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import (
	"bytes"
	"unsafe"

	lru "github.com/hashicorp/golang-lru/v2"
)

// RadixTree is an ordered adaptive radix tree keyed by byte strings. It uses
// path compression and adaptive node sizes, and keeps no full keys: keys
// handed to callbacks are rebuilt from the path during the walk.
//
// A RadixTree is not safe for concurrent use. Read operations may be nested
// inside one another, but the tree must not be mutated from a callback that
// is walking it.
type RadixTree[T any] struct {
	root Node[T]
	size uint64

	// mem is the tracked size of every node reachable from root.
	mem         uint64
	memoryLimit uint64

	completions *lru.Cache[string, []byte]
}

// WalkFn is used when walking the tree. Takes a
// key and value, returning if iteration should
// be terminated.
type WalkFn[T any] func(k Key, v T) bool

// DestroyFn releases a value the tree is letting go of.
type DestroyFn[T any] func(v T)

// Ref refers to a key and the value stored under it. The tree keeps no
// parent pointers, so a Ref carries its key and is resolved by it.
type Ref[T any] struct {
	key   Key
	value T
}

func newRef[T any](key Key, value T) *Ref[T] {
	return &Ref[T]{
		key:   append(Key(nil), key...),
		value: value,
	}
}

// Key returns the full key of the entry.
func (r *Ref[T]) Key() Key {
	return r.key
}

// Value returns the value stored when the Ref was taken.
func (r *Ref[T]) Value() T {
	return r.value
}

func NewRadixTree[T any](opts ...Option) *RadixTree[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	rt := &RadixTree[T]{memoryLimit: o.memoryLimit}
	if o.completionCache > 0 {
		// lru.New only fails for a non-positive size.
		rt.completions, _ = lru.New[string, []byte](o.completionCache)
	}
	return rt
}

// Len is used to return the number of elements in the tree
func (t *RadixTree[T]) Len() int {
	return int(t.size)
}

func (t *RadixTree[T]) IsEmpty() bool {
	return t.size == 0
}

func (t *RadixTree[T]) Mode() Mode {
	return Ordered
}

// MemorySize returns the bytes owned by the tree: its header and every
// node. Values are counted by their inline size only.
func (t *RadixTree[T]) MemorySize() uint64 {
	return uint64(unsafe.Sizeof(*t)) + t.mem
}

// MemorySizeWithValues is MemorySize plus sizer(v) for every stored value.
func (t *RadixTree[T]) MemorySizeWithValues(sizer func(v T) uint64) uint64 {
	total := t.MemorySize()
	if sizer == nil || t.root == nil {
		return total
	}
	it := t.rawIterator()
	for it.Next() {
		if l := it.Front().getNodeLeaf(); l != nil {
			total += sizer(l.value)
		}
	}
	return total
}

func (t *RadixTree[T]) Get(key Key) (T, error) {
	var zero T
	if l := t.search(key); l != nil {
		return l.value, nil
	}
	return zero, ErrNotFound
}

func (t *RadixTree[T]) search(key Key) *NodeLeaf[T] {
	if !key.valid() {
		return nil
	}
	depth := 0
	for n := t.root; n != nil; {
		// Bail if the prefix does not match
		partial := n.getPartial()
		if !bytes.HasPrefix(key[depth:], partial) {
			return nil
		}
		depth += len(partial)

		if depth == len(key) {
			return n.getNodeLeaf()
		}

		child := n.findChild(key[depth])
		if child == nil {
			return nil
		}
		n = *child
		depth++
	}
	return nil
}

// LongestPrefix returns the longest stored key that is a prefix of k.
func (t *RadixTree[T]) LongestPrefix(k Key) (*Ref[T], error) {
	var last *NodeLeaf[T]
	var lastLen, depth int

	for n := t.root; n != nil; {
		partial := n.getPartial()
		if !bytes.HasPrefix(k[depth:], partial) {
			break
		}
		depth += len(partial)

		if l := n.getNodeLeaf(); l != nil {
			last, lastLen = l, depth
		}
		if depth >= len(k) {
			break
		}

		child := n.findChild(k[depth])
		if child == nil {
			break
		}
		n = *child
		depth++
	}

	if last == nil {
		return nil, ErrNotFound
	}
	return newRef(k[:lastLen], last.value), nil
}

// Free removes every entry, passing each value to destroy if it is not nil.
func (t *RadixTree[T]) Free(destroy DestroyFn[T]) {
	if t.root != nil {
		t.release(t.root, destroy)
	}
	t.root, t.size = nil, 0
	t.mutated()
}

// release drops a whole subtree, returning how many values it held.
func (t *RadixTree[T]) release(n Node[T], destroy DestroyFn[T]) int {
	count := 0
	if l := n.getNodeLeaf(); l != nil {
		if destroy != nil {
			destroy(l.value)
		}
		count++
	}
	n.iterChildren(false, func(_ byte, child Node[T]) bool {
		count += t.release(child, destroy)
		return true
	})
	t.untrack(n)
	return count
}

func (t *RadixTree[T]) track(n Node[T]) {
	t.mem += n.memSize()
}

func (t *RadixTree[T]) untrack(n Node[T]) {
	t.mem -= n.memSize()
}

// reserve checks that growing the node memory by delta stays in budget.
func (t *RadixTree[T]) reserve(delta int64) error {
	if t.memoryLimit == 0 || delta <= 0 {
		return nil
	}
	if uint64(delta) > t.memoryLimit || t.mem > t.memoryLimit-uint64(delta) {
		return ErrOutOfMemory
	}
	return nil
}

// mutated drops anything derived from the previous tree shape.
func (t *RadixTree[T]) mutated() {
	if t.completions != nil {
		t.completions.Purge()
	}
}
