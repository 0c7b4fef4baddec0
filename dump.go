// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a text representation of the tree to w, one node per line in
// key order. Children are indented under their parent and shown with the
// selector byte that leads to them.
func (t *RadixTree[T]) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintf(w, "EMPTY\n\n")
		return
	}
	it := t.rawIterator()
	for it.Next() {
		n := it.Front()
		partial := n.getPartial()
		depth := it.Depth()

		fmt.Fprintf(w, "%s %s", dumpPre(depth), n.kind())
		if depth > 0 {
			path := it.Path()
			fmt.Fprintf(w, " Edge: %q", path[len(path)-len(partial)-1])
		}
		fmt.Fprintf(w, " Prefix: %q", partial)
		if l := n.getNodeLeaf(); l != nil {
			fmt.Fprintf(w, " Value: %+v", l.value)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// For individual node/leaf dumps.
func (n *NodeLeaf[T]) kind() string { return "LEAF" }
func (n *Node4[T]) kind() string    { return "NODE4" }
func (n *Node16[T]) kind() string   { return "NODE16" }
func (n *Node48[T]) kind() string   { return "NODE48" }
func (n *Node256[T]) kind() string  { return "NODE256" }

// Calculates the indentation.
func dumpPre(depth int) string {
	if depth == 0 {
		return "--"
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__")
	return b.String()
}
