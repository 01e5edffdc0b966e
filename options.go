// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kheap

import "golang.org/x/exp/constraints"

type options[T constraints.Ordered] struct {
	branching int
	sliceCap  int
	values    []T
}

// Option represents the options that can be passed to New.
type Option[T constraints.Ordered] func(*options[T])

// WithBranching sets the branching factor, ie. the number of children
// of each position in the heap. It panics if n is less than 2.
func WithBranching[T constraints.Ordered](n int) Option[T] {
	return func(o *options[T]) {
		if n < 2 {
			panic("branching factor must be at least 2")
		}
		o.branching = n
	}
}

// WithSliceCap sets the initial capacity of the slice used to hold the
// heap's elements.
func WithSliceCap[T constraints.Ordered](n int) Option[T] {
	return func(o *options[T]) {
		o.sliceCap = n
	}
}

// WithData sets the initial data for the heap. The slice is used
// directly as the backing store, in arbitrary order, and is heapified
// by New.
func WithData[T constraints.Ordered](values []T) Option[T] {
	return func(o *options[T]) {
		o.values = values
	}
}
