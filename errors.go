// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package adaptive

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned when inserting an empty key.
	ErrInvalidKey = errors.New("adaptive: invalid key")

	// ErrExists is returned when inserting a key that is already stored.
	ErrExists = errors.New("adaptive: key already exists")

	// ErrNotFound is returned when a key or prefix is not in the tree.
	ErrNotFound = errors.New("adaptive: not found")

	// ErrEmpty is returned by operations that need at least one stored key.
	ErrEmpty = errors.New("adaptive: tree is empty")

	// ErrCallback is matched by every *CallbackError.
	ErrCallback = errors.New("adaptive: callback failed")

	// ErrOutOfMemory is returned when an insert would grow the tree past
	// its configured memory limit.
	ErrOutOfMemory = errors.New("adaptive: memory limit exceeded")
)

// CallbackError reports a fold callback that signaled failure, either by
// returning a negative code or a non-nil error.
type CallbackError struct {
	Code int
	Err  error
}

func (e *CallbackError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", ErrCallback, e.Err)
	}
	return fmt.Sprintf("%s: code %d", ErrCallback, e.Code)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}

func (e *CallbackError) Is(target error) bool {
	return target == ErrCallback
}
