// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

// FindFn reports whether an entry is the one being searched for.
type FindFn[T any] func(key Key, value T) bool

// FoldFn is called for each entry of a fold. Returning zero continues the
// walk, a positive result stops it and is returned by the fold, and a
// negative result or a non-nil error stops it with a *CallbackError.
type FoldFn[T any] func(key Key, value T) (int, error)

// walker does the in-order walks behind Find, Fold and Walk. The key of the
// current position is kept in buf: a node's partial and the selector byte of
// each child are pushed on the way down and truncated on the way back.
//
// Keys passed to fn alias buf and are only valid during the call.
type walker[T any] struct {
	buf     []byte
	reverse bool
	fn      func(key Key, value T) bool
}

// visit walks the subtree at n. buf must hold the key bytes leading up to
// n's partial. It returns true if fn asked to stop.
func (w *walker[T]) visit(n Node[T]) bool {
	mark := len(w.buf)
	w.buf = append(w.buf, n.getPartial()...)

	// A node's own key sorts before every key below it.
	l := n.getNodeLeaf()
	stop := l != nil && !w.reverse && w.fn(w.buf, l.value)

	if !stop {
		stop = !n.iterChildren(w.reverse, func(c byte, child Node[T]) bool {
			w.buf = append(w.buf, c)
			stopped := w.visit(child)
			w.buf = w.buf[:len(w.buf)-1]
			return !stopped
		})
	}

	if !stop && l != nil && w.reverse {
		stop = w.fn(w.buf, l.value)
	}
	w.buf = w.buf[:mark]
	return stop
}

// seekPrefix finds the node whose subtree holds exactly the keys starting
// with prefix. It returns the node and the number of prefix bytes consumed
// before its partial, or ok false if no key has the prefix. The prefix may
// end part way through the node's partial.
func (t *RadixTree[T]) seekPrefix(prefix []byte) (n Node[T], depth int, ok bool) {
	for n = t.root; n != nil; {
		partial := n.getPartial()
		rest := prefix[depth:]
		m := commonPrefixLen(partial, rest)
		if m == len(rest) {
			return n, depth, true
		}
		if m < len(partial) {
			break
		}
		depth += m

		child := n.findChild(prefix[depth])
		if child == nil {
			break
		}
		n = *child
		depth++
	}
	return nil, 0, false
}

// walk runs fn over the whole tree, or over the keys under prefix when
// scoped is set.
func (t *RadixTree[T]) walk(prefix []byte, scoped, reverse bool, fn func(Key, T) bool) error {
	start := t.root
	w := &walker[T]{reverse: reverse, fn: fn}
	if scoped {
		n, depth, ok := t.seekPrefix(prefix)
		if !ok {
			return ErrNotFound
		}
		start = n
		w.buf = append(make([]byte, 0, depth+32), prefix[:depth]...)
	}
	if start != nil {
		w.visit(start)
	}
	return nil
}

func (t *RadixTree[T]) find(prefix []byte, scoped, reverse bool, fn FindFn[T]) (*Ref[T], error) {
	var found *Ref[T]
	err := t.walk(prefix, scoped, reverse, func(key Key, value T) bool {
		if fn(key, value) {
			found = newRef(key, value)
			return true
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (t *RadixTree[T]) fold(prefix []byte, scoped, reverse bool, fn FoldFn[T]) (int, error) {
	var res int
	var cbErr error
	err := t.walk(prefix, scoped, reverse, func(key Key, value T) bool {
		r, err := fn(key, value)
		switch {
		case err != nil || r < 0:
			cbErr = &CallbackError{Code: r, Err: err}
			return true
		case r > 0:
			res = r
			return true
		}
		return false
	})
	if err != nil {
		return 0, err
	}
	if cbErr != nil {
		return 0, cbErr
	}
	return res, nil
}

// Find returns the first entry in ascending key order for which fn reports
// true, or ErrNotFound.
func (t *RadixTree[T]) Find(fn FindFn[T]) (*Ref[T], error) {
	return t.find(nil, false, false, fn)
}

// Fold calls fn for each entry in ascending key order.
func (t *RadixTree[T]) Fold(fn FoldFn[T]) (int, error) {
	return t.fold(nil, false, false, fn)
}

// Walk is used to walk the tree in ascending key order
func (t *RadixTree[T]) Walk(fn WalkFn[T]) {
	_ = t.walk(nil, false, false, fn)
}

// Minimum returns the smallest key in the tree.
func (t *RadixTree[T]) Minimum() (*Ref[T], error) {
	if t.root == nil {
		return nil, ErrEmpty
	}
	return t.Find(func(Key, T) bool { return true })
}
