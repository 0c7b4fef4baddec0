// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

// Mode is the ordering mode of a tree.
type Mode int

const (
	// Ordered keeps children sorted by selector byte, so walks visit keys in
	// lexicographic order.
	Ordered Mode = iota
)

func (m Mode) String() string {
	switch m {
	case Ordered:
		return "ordered"
	default:
		return "unknown"
	}
}

type options struct {
	memoryLimit     uint64
	completionCache int
}

// Option configures a RadixTree at construction.
type Option func(*options)

// WithMemoryLimit caps the node memory a tree may own. An insert that
// would go past the limit fails with ErrOutOfMemory and leaves the tree
// unchanged. Zero means no limit.
func WithMemoryLimit(bytes uint64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithCompletionCache keeps up to entries Complete results in an LRU cache.
// The cache is purged whenever the tree is mutated.
func WithCompletionCache(entries int) Option {
	return func(o *options) {
		o.completionCache = entries
	}
}
