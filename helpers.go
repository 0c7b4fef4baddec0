// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import "unsafe"

// commonPrefixLen returns the length of the common run at the front of
// a and b.
func commonPrefixLen(a, b []byte) int {
	limit := min(len(a), len(b))
	var idx int
	for idx = 0; idx < limit; idx++ {
		if a[idx] != b[idx] {
			return idx
		}
	}
	return idx
}

// copyBytes returns an owned copy of src, nil if src is empty.
func copyBytes(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}

// concatPartial builds the partial of a node merged with its only child.
func concatPartial(parent []byte, c byte, child []byte) []byte {
	merged := make([]byte, 0, len(parent)+1+len(child))
	merged = append(merged, parent...)
	merged = append(merged, c)
	return append(merged, child...)
}

// nodeStructSize is the fixed size of a node shape, not counting its
// partial or value slot.
func nodeStructSize[T any](typ nodeType) uint64 {
	switch typ {
	case leafType:
		return uint64(unsafe.Sizeof(NodeLeaf[T]{}))
	case node4:
		return uint64(unsafe.Sizeof(Node4[T]{}))
	case node16:
		return uint64(unsafe.Sizeof(Node16[T]{}))
	case node48:
		return uint64(unsafe.Sizeof(Node48[T]{}))
	case node256:
		return uint64(unsafe.Sizeof(Node256[T]{}))
	default:
		panic("Unknown node type")
	}
}

// grownType is the shape a full node grows into.
func grownType(typ nodeType) nodeType {
	switch typ {
	case node4:
		return node16
	case node16:
		return node48
	case node48:
		return node256
	default:
		panic("Unknown node type")
	}
}
