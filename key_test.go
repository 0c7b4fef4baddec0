// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Key
	}{
		{"", Key{0}},
		{"a", Key{'a', 0}},
		{"foo", Key("foo\x00")},
		{"foo\x00bar", Key("foo\x00")},
		{"\x00", Key{0}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, TextKey(tc.in), "TextKey(%q)", tc.in)
	}
}

func TestKey_Text(t *testing.T) {
	t.Parallel()

	require.Equal(t, "foo", TextKey("foo").Text())
	require.Equal(t, "", TextKey("").Text())
	require.Equal(t, "foo", BytesKey([]byte("foo")).Text())

	// Only one terminator is stripped.
	require.Equal(t, "a\x00", BytesKey([]byte("a\x00\x00")).Text())
}

func TestTextKey_NoPrefixes(t *testing.T) {
	t.Parallel()

	r := NewRadixTree[int]()
	words := []string{"f", "fo", "foo", "food", "foods"}
	for i, w := range words {
		require.NoError(t, r.InsertValue(TextKey(w), i))
	}
	checkTree(t, r)

	for i, w := range words {
		v, err := r.Get(TextKey(w))
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	require.Equal(t, words, collect(r))

	// Without the terminator none of them is stored.
	_, err := r.Get(BytesKey([]byte("foo")))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBytesKey_Prefixes(t *testing.T) {
	t.Parallel()

	r := NewRadixTree[int]()
	keys := []string{"f", "fo", "foo", "food", "bug"}
	for i, k := range keys {
		require.NoError(t, r.InsertValue(BytesKey([]byte(k)), i))
	}
	checkTree(t, r)

	for i, k := range keys {
		v, err := r.Get(BytesKey([]byte(k)))
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	require.Equal(t, []string{"bug", "f", "fo", "foo", "food"}, collect(r))

	require.ErrorIs(t, r.InsertValue(BytesKey(nil), 9), ErrInvalidKey)
	require.ErrorIs(t, r.InsertValue(Key{}, 9), ErrInvalidKey)
	checkTree(t, r)
}
