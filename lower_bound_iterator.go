// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

// LowerBound returns the smallest stored key that is greater than or equal
// to key, or ErrNotFound if every key is smaller.
func (t *RadixTree[T]) LowerBound(key Key) (*Ref[T], error) {
	if t.root == nil {
		return nil, ErrNotFound
	}
	var found *Ref[T]
	w := &walker[T]{fn: func(k Key, v T) bool {
		found = newRef(k, v)
		return true
	}}
	t.lowerBound(w, t.root, key, 0)
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// lowerBound follows key down from n while it matches, handing the first
// subtree known to sort at or after key to the walker. w.buf holds
// key[:depth]. It returns true once the walker has stopped.
func (t *RadixTree[T]) lowerBound(w *walker[T], n Node[T], key Key, depth int) bool {
	partial := n.getPartial()
	rest := key[depth:]
	m := commonPrefixLen(partial, rest)

	switch {
	case m == len(rest):
		// Everything below starts with key.
		return w.visit(n)
	case m < len(partial):
		// The subtree sorts entirely before or entirely after key.
		if partial[m] > rest[m] {
			return w.visit(n)
		}
		return false
	}

	// Our own key is a proper prefix of key and sorts before it, so only
	// children at or after the next key byte can hold the bound.
	mark := len(w.buf)
	w.buf = append(w.buf, partial...)
	next := rest[m]
	depth += m + 1

	stop := !n.iterChildren(false, func(c byte, child Node[T]) bool {
		if c < next {
			return true
		}
		w.buf = append(w.buf, c)
		var stopped bool
		if c == next {
			stopped = t.lowerBound(w, child, key, depth)
		} else {
			stopped = w.visit(child)
		}
		w.buf = w.buf[:len(w.buf)-1]
		return !stopped
	})
	w.buf = w.buf[:mark]
	return stop
}

// WalkLowerBound walks the keys greater than or equal to key in ascending
// order, until fn returns true.
func (t *RadixTree[T]) WalkLowerBound(key Key, fn WalkFn[T]) {
	if t.root == nil {
		return
	}
	t.lowerBound(&walker[T]{fn: fn}, t.root, key, 0)
}
