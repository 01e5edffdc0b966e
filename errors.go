// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kheap

import (
	"fmt"

	"cloudeng.io/errors"
)

// Errors returned by operations that require a non-empty heap or a
// valid position. Use errors.Is to test for them since operations wrap
// them with context.
var (
	ErrEmptyHeap    = errors.New("heap is empty")
	ErrInvalidIndex = errors.New("index out of range")
)

// IsValid reports whether the heap invariant holds at every position,
// ie. that no element wins against its parent under the configured
// order. It is intended for test harnesses rather than production call
// paths and costs O(n).
func (h *Heap[T]) IsValid() bool {
	for i := 1; i < len(h.values); i++ {
		if h.less(i, (i-1)/h.branching) {
			return false
		}
	}
	return true
}

// Validate is like IsValid but returns an error describing every
// parent/child pair that violates the heap invariant, or nil if the
// heap is valid.
func (h *Heap[T]) Validate() error {
	errs := errors.M{}
	for i := 1; i < len(h.values); i++ {
		p := (i - 1) / h.branching
		if h.less(i, p) {
			errs.Append(fmt.Errorf("%v order violated: [%v] %v loses to child [%v] %v",
				h.order, p, h.values[p], i, h.values[i]))
		}
	}
	return errs.Err()
}
