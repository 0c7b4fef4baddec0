// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import "bytes"

// Delete removes key, passing its value to destroy if destroy is not nil.
// It returns ErrNotFound if the key is not stored.
func (t *RadixTree[T]) Delete(key Key, destroy DestroyFn[T]) error {
	if !key.valid() || t.root == nil {
		return ErrNotFound
	}
	if err := t.recursiveDelete(&t.root, key, 0, destroy); err != nil {
		return err
	}
	t.size--
	t.mutated()
	return nil
}

// DeleteRef removes the entry r refers to. If the key was deleted since the
// Ref was taken it returns ErrNotFound; if it was inserted again, the current
// entry is removed.
func (t *RadixTree[T]) DeleteRef(r *Ref[T], destroy DestroyFn[T]) error {
	if r == nil {
		return ErrNotFound
	}
	return t.Delete(r.key, destroy)
}

func (t *RadixTree[T]) recursiveDelete(np *Node[T], key Key, depth int, destroy DestroyFn[T]) error {
	n := *np

	// Bail if the prefix does not match
	partial := n.getPartial()
	if !bytes.HasPrefix(key[depth:], partial) {
		return ErrNotFound
	}
	depth += len(partial)

	if depth == len(key) {
		l := n.getNodeLeaf()
		if l == nil {
			return ErrNotFound
		}
		if destroy != nil {
			destroy(l.value)
		}
		if n.getArtNodeType() == leafType {
			t.untrack(n)
			*np = nil
			return nil
		}
		t.untrack(n)
		n.setNodeLeaf(nil)
		t.track(n)
		t.compact(np)
		return nil
	}

	c := key[depth]
	child := n.findChild(c)
	if child == nil {
		return ErrNotFound
	}
	if err := t.recursiveDelete(child, key, depth+1, destroy); err != nil {
		return err
	}
	// Only a spliced out child changes the shape of this node, a merge
	// below keeps the same selector.
	if *child == nil {
		n.removeChild(c)
		t.compact(np)
	}
	return nil
}

// DeletePrefix removes every key that starts with prefix and returns how many
// were removed. It returns ErrNotFound if no key has the prefix.
func (t *RadixTree[T]) DeletePrefix(prefix []byte, destroy DestroyFn[T]) (int, error) {
	if t.root == nil {
		return 0, ErrNotFound
	}
	count := t.recursiveDeletePrefix(&t.root, prefix, 0, destroy)
	if count == 0 {
		return 0, ErrNotFound
	}
	t.size -= uint64(count)
	t.mutated()
	return count, nil
}

func (t *RadixTree[T]) recursiveDeletePrefix(np *Node[T], prefix []byte, depth int, destroy DestroyFn[T]) int {
	n := *np
	partial := n.getPartial()
	rest := prefix[depth:]
	m := commonPrefixLen(partial, rest)

	// The prefix runs out inside this node, everything below goes.
	if m == len(rest) {
		count := t.release(n, destroy)
		*np = nil
		return count
	}
	if m < len(partial) {
		return 0
	}
	depth += m

	c := prefix[depth]
	child := n.findChild(c)
	if child == nil {
		return 0
	}
	count := t.recursiveDeletePrefix(child, prefix, depth+1, destroy)
	if count > 0 && *child == nil {
		n.removeChild(c)
		t.compact(np)
	}
	return count
}

// compact restores the canonical form of *np after it lost its value or a
// child: a dead node is spliced out, a valueless pass-through is merged
// with its only child and an underfull node is shrunk.
func (t *RadixTree[T]) compact(np *Node[T]) {
	n := *np
	if n.getArtNodeType() == leafType {
		return
	}

	switch n.getNumChildren() {
	case 0:
		t.untrack(n)
		l := n.getNodeLeaf()
		if l == nil {
			*np = nil
			return
		}
		l.setPartial(n.getPartial())
		*np = l
		t.track(l)
		return
	case 1:
		if n.getNodeLeaf() != nil {
			break
		}
		c, child := n.firstChild()
		t.untrack(n)
		t.untrack(child)
		// Concatenate the prefixes
		child.setPartial(concatPartial(n.getPartial(), c, child.getPartial()))
		*np = child
		t.track(child)
		return
	}

	if nn := n.shrink(); nn != nil {
		t.untrack(n)
		*np = nn
		t.track(nn)
	}
}
