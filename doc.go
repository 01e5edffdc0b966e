// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package kheap provides a generic, array-backed k-ary heap that can be
// configured, at construction time, as either a minimum-first or
// maximum-first heap with an arbitrary branching factor. The heap is a
// complete k-ary tree stored in a single contiguous slice: the root is
// at position 0 and the children of position i occupy positions
// i*b+1 .. i*b+b for branching factor b. In addition to the usual push
// and pop operations it supports removing and updating elements by
// position, linear search by value, bounded inserts for top-k selection
// and an in-place heap sort.
//
//	h := kheap.New[int](kheap.Ascending, kheap.WithBranching[int](4))
//	h.Insert(5)
//	h.Insert(3)
//	min, err := h.Extract()
//
// Positions are not stable across mutating operations since removal
// swaps the last element into the vacated position; callers that need
// to address an element by position should locate it with Find
// immediately beforehand.
//
// A Heap is not safe for concurrent use; callers requiring concurrent
// access must provide their own synchronization.
package kheap
