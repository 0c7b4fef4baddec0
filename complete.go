// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

// Complete returns the longest continuation of prefix that every stored key
// starting with prefix shares, like shell completion. The result is empty
// when the prefix is a stored key itself or the next byte is ambiguous. It
// returns ErrEmpty on an empty tree and ErrNotFound if no key has the
// prefix. The returned slice is always freshly allocated.
func (t *RadixTree[T]) Complete(prefix []byte) ([]byte, error) {
	if t.size == 0 {
		return nil, ErrEmpty
	}
	if t.completions != nil {
		if cached, ok := t.completions.Get(string(prefix)); ok {
			return append([]byte{}, cached...), nil
		}
	}

	n, depth, ok := t.seekPrefix(prefix)
	if !ok {
		return nil, ErrNotFound
	}

	// Whatever the prefix left of the aligned node's partial is shared by
	// all keys below it.
	out := append([]byte{}, n.getPartial()[len(prefix)-depth:]...)
	for n.getNodeLeaf() == nil && n.getNumChildren() == 1 {
		c, child := n.firstChild()
		out = append(out, c)
		out = append(out, child.getPartial()...)
		n = child
	}

	if t.completions != nil {
		t.completions.Add(string(prefix), append([]byte{}, out...))
	}
	return out, nil
}

// CompleteText is Complete for trees of text keys. A continuation that runs
// to the end of a key is returned without the key's terminator.
func (t *RadixTree[T]) CompleteText(prefix string) (string, error) {
	out, err := t.Complete([]byte(prefix))
	if err != nil {
		return "", err
	}
	return Key(out).Text(), nil
}
