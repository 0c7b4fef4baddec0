// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// minChildren is the fewest children each inner shape holds once the tree
// is canonical, a leaf excepted.
var minChildren = map[nodeType]int{
	node4:   1,
	node16:  4,
	node48:  13,
	node256: 41,
}

// checkTree walks every node and verifies the tree is canonical, that the
// tracked memory matches the nodes actually reachable and that Len agrees
// with the number of stored values.
func checkTree[T any](t *testing.T, r *RadixTree[T]) {
	t.Helper()

	var mem uint64
	var values int
	it := r.rawIterator()
	for it.Next() {
		n := it.Front()
		path := it.Path()
		mem += n.memSize()

		l := n.getNodeLeaf()
		if l != nil {
			values++
		}
		num := n.getNumChildren()

		if n.getArtNodeType() == leafType {
			require.Zero(t, num, "leaf at %q", path)
			continue
		}
		require.GreaterOrEqual(t, num, minChildren[n.getArtNodeType()], "underfull %s at %q", n.kind(), path)
		if l == nil {
			require.GreaterOrEqual(t, num, 2, "pass-through %s at %q", n.kind(), path)
		} else {
			require.Nil(t, l.getPartial(), "value slot with partial at %q", path)
		}

		last := -1
		n.iterChildren(false, func(c byte, child Node[T]) bool {
			require.NotNil(t, child, "nil child %q at %q", c, path)
			require.Greater(t, int(c), last, "children out of order at %q", path)
			last = int(c)
			return true
		})
	}
	require.Equal(t, mem, r.mem, "tracked memory")
	require.Equal(t, values, r.Len(), "stored values")
}

// dumpString renders the tree for failure messages.
func dumpString[T any](r *RadixTree[T]) string {
	var b strings.Builder
	r.Dump(&b)
	return b.String()
}

// collect returns the text of every key in ascending order.
func collect[T any](r *RadixTree[T]) []string {
	out := []string{}
	r.Walk(func(k Key, _ T) bool {
		out = append(out, k.Text())
		return false
	})
	return out
}

func insertText[T any](t *testing.T, r *RadixTree[T], keys map[string]T) {
	t.Helper()
	for k, v := range keys {
		require.NoError(t, r.InsertValue(TextKey(k), v), "insert %q", k)
	}
}
