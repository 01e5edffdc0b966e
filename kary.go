// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kheap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Order determines if the heap is maintained in ascending or descending
// order, that is, whether the smallest or largest element is kept at
// the root.
type Order bool

// Values for Order.
const (
	Ascending  Order = false
	Descending Order = true
)

// String implements fmt.Stringer.
func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// Heap represents a k-ary heap over any ordered element type. The zero
// value is not usable; use New.
type Heap[T constraints.Ordered] struct {
	values    []T
	order     Order
	branching int
}

// New creates a new heap with the requested order. The branching factor
// defaults to 2 unless overridden with WithBranching. If WithData is
// supplied the slice is adopted as the backing store and heapified in
// place.
func New[T constraints.Ordered](order Order, opts ...Option[T]) *Heap[T] {
	var o options[T]
	o.branching = 2
	for _, fn := range opts {
		fn(&o)
	}
	h := &Heap[T]{order: order, branching: o.branching}
	if o.values != nil {
		h.values = o.values
		h.Init()
		return h
	}
	h.values = make([]T, 0, o.sliceCap)
	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.values)
}

// IsEmpty returns true if the heap contains no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.values) == 0
}

// Branching returns the heap's branching factor.
func (h *Heap[T]) Branching() int {
	return h.branching
}

// Ordering returns the order the heap was created with.
func (h *Heap[T]) Ordering() Order {
	return h.order
}

// Values returns the backing slice in heap layout. It is an escape
// hatch for bulk operations; callers that reorder or overwrite elements
// through it must call Init to re-establish the heap invariant before
// using any other method.
func (h *Heap[T]) Values() []T {
	return h.values
}

// Clear removes all elements, retaining the allocated capacity.
func (h *Heap[T]) Clear() {
	h.values = h.values[:0]
}

// Insert adds v to the heap.
func (h *Heap[T]) Insert(v T) {
	h.values = append(h.values, v)
	h.siftUp(len(h.values) - 1)
}

// Top returns, without removing, the element at the root of the heap,
// ie. the smallest element for an ascending heap and the largest for a
// descending one. It returns ErrEmptyHeap if the heap is empty.
func (h *Heap[T]) Top() (T, error) {
	if len(h.values) == 0 {
		var zero T
		return zero, fmt.Errorf("top: %w", ErrEmptyHeap)
	}
	return h.values[0], nil
}

// Extract removes and returns the element at the root of the heap. It
// returns ErrEmptyHeap if the heap is empty.
func (h *Heap[T]) Extract() (T, error) {
	if len(h.values) == 0 {
		var zero T
		return zero, fmt.Errorf("extract: %w", ErrEmptyHeap)
	}
	return h.remove(0), nil
}

// Remove removes and returns the element at position i. It returns
// ErrEmptyHeap if the heap is empty and ErrInvalidIndex if i is out of
// range; the heap is left unmodified on failure.
func (h *Heap[T]) Remove(i int) (T, error) {
	var zero T
	if len(h.values) == 0 {
		return zero, fmt.Errorf("remove: %w", ErrEmptyHeap)
	}
	if i < 0 || i >= len(h.values) {
		return zero, fmt.Errorf("remove %v of %v: %w", i, len(h.values), ErrInvalidIndex)
	}
	return h.remove(i), nil
}

// remove swaps the element at i with the last element, shrinks the
// slice and restores the invariant at i. The direction of the
// restoration is decided by comparing the moved-in element against the
// removed one, which avoids probing in both directions.
func (h *Heap[T]) remove(i int) T {
	n := len(h.values) - 1
	removed := h.values[i]
	h.values[i] = h.values[n]
	h.values = h.values[:n]
	if i < n {
		if h.wins(h.values[i], removed) {
			h.siftUp(i)
		} else {
			h.siftDown(i, n)
		}
	}
	return removed
}

// Update applies fn to the element at position i in place and restores
// the heap invariant, returning the element's previous value. It
// returns ErrEmptyHeap if the heap is empty and ErrInvalidIndex if i is
// out of range; the heap is left unmodified on failure.
func (h *Heap[T]) Update(i int, fn func(*T)) (T, error) {
	var zero T
	if len(h.values) == 0 {
		return zero, fmt.Errorf("update: %w", ErrEmptyHeap)
	}
	if i < 0 || i >= len(h.values) {
		return zero, fmt.Errorf("update %v of %v: %w", i, len(h.values), ErrInvalidIndex)
	}
	prev := h.values[i]
	fn(&h.values[i])
	if h.wins(h.values[i], prev) {
		h.siftUp(i)
	} else {
		h.siftDown(i, len(h.values))
	}
	return prev, nil
}

// Find performs a linear search and returns the position of the first
// element equal to v, or false if there is none. The heap invariant
// only orders elements along root-to-leaf paths, so search by value
// is necessarily O(n).
func (h *Heap[T]) Find(v T) (int, bool) {
	for i, x := range h.values {
		if x == v {
			return i, true
		}
	}
	return -1, false
}

// wins returns true if a should be closer to the root than b.
func (h *Heap[T]) wins(a, b T) bool {
	if h.order == Descending {
		return a > b
	}
	return a < b
}

func (h *Heap[T]) less(i, j int) bool {
	return h.wins(h.values[i], h.values[j])
}

func (h *Heap[T]) swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
}

func (h *Heap[T]) siftUp(j int) {
	for {
		i := (j - 1) / h.branching // parent
		if i == j || !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// siftDown restores the invariant for the subtree rooted at i0,
// considering only positions below n. It returns true if the element
// moved. Ties between equal children go to the first child scanned.
func (h *Heap[T]) siftDown(i0, n int) bool {
	i := i0
	for {
		first := i*h.branching + 1
		if first >= n || first < 0 { // first < 0 after int overflow
			break
		}
		last := first + h.branching
		if last > n {
			last = n
		}
		j := first
		for c := first + 1; c < last; c++ {
			if h.less(c, j) {
				j = c
			}
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
