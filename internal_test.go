// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kheap

import "testing"

func (h *Heap[T]) Verify(t *testing.T) {
	t.Helper()
	h.verify(t, 0)
}

func (h *Heap[T]) verify(t *testing.T, p int) {
	t.Helper()
	n := len(h.values)
	first := p*h.branching + 1
	for c := first; c < first+h.branching && c < n; c++ {
		if h.less(c, p) {
			t.Errorf("heap inconsistent: sub tree %v of %v ([%v] %v loses to [%v] %v)",
				c, p, p, h.values[p], c, h.values[c])
			return
		}
		h.verify(t, c)
	}
}
