// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import "strings"

// terminator is appended to text keys so that no text key is a byte
// prefix of another.
const terminator byte = 0

// Key is the byte sequence a tree is indexed by. Build one with TextKey
// or BytesKey.
type Key []byte

// TextKey returns the key for a C-style string: the bytes of s up to its
// first NUL, followed by a terminator byte.
func TextKey(s string) Key {
	if i := strings.IndexByte(s, terminator); i >= 0 {
		s = s[:i]
	}
	k := make(Key, len(s)+1)
	copy(k, s)
	return k
}

// BytesKey returns the key for raw bytes, used exactly as given. Two such
// keys may be prefixes of one another.
func BytesKey(b []byte) Key {
	return Key(b)
}

// Text returns the key as a string without its trailing terminator, if it
// has one.
func (k Key) Text() string {
	if n := len(k); n > 0 && k[n-1] == terminator {
		return string(k[:n-1])
	}
	return string(k)
}

func (k Key) valid() bool {
	return len(k) > 0
}
