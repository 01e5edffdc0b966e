// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kheap

// InsertBounded inserts v whilst ensuring that the heap is no larger
// than n, retaining the n best elements with respect to the opposite of
// the heap's order: an Ascending heap of bound n keeps the n largest
// elements seen (with the smallest of them at the root), which is the
// usual top-k arrangement. It returns true if v was retained and false
// if it was rejected. The bound must be kept the same across calls.
func (h *Heap[T]) InsertBounded(v T, n int) bool {
	if n <= 0 {
		return false
	}
	if len(h.values) < n {
		h.Insert(v)
		return true
	}
	if !h.wins(h.values[0], v) {
		// v loses to (or ties) the current root, which is the worst
		// of the retained elements.
		return false
	}
	h.values[0] = v
	h.siftDown(0, len(h.values))
	return true
}
