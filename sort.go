// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kheap

// Init heapifies the current contents of the backing slice in O(n) by
// sifting down every internal position from the last to the root, so
// that each sift operates on already valid subtrees. It is called by
// New for WithData and must be called by users of Values that disturb
// the heap invariant.
func (h *Heap[T]) Init() {
	n := len(h.values)
	if n < 2 {
		return
	}
	for i := (n - 2) / h.branching; i >= 0; i-- {
		h.siftDown(i, n)
	}
}

// Sort performs an in-place heap sort of the backing slice, leaving it
// fully ordered: ascending for an Ascending heap and descending for a
// Descending one. No additional storage is allocated. The sorted slice
// still satisfies the heap invariant, so the heap remains usable
// afterwards.
func (h *Heap[T]) Sort() {
	h.Init() // contents may have been replaced via Values
	n := len(h.values)
	for i := n - 1; i > 0; i-- {
		h.swap(0, i)
		h.siftDown(0, i)
	}
	// Moving the root to the tail on each pass leaves the slice in
	// root-last order; reverse it to match the configured order.
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		h.swap(i, j)
	}
}
