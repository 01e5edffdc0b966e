// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package kheap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cloudeng.io/kheap"
)

func TestEmptyHeapErrors(t *testing.T) {
	h := kheap.New[int](kheap.Ascending)

	_, err := h.Top()
	require.ErrorIs(t, err, kheap.ErrEmptyHeap)

	_, err = h.Extract()
	require.ErrorIs(t, err, kheap.ErrEmptyHeap)

	_, err = h.Remove(0)
	require.ErrorIs(t, err, kheap.ErrEmptyHeap)

	_, err = h.Update(0, func(v *int) { *v = 1 })
	require.ErrorIs(t, err, kheap.ErrEmptyHeap)

	require.Equal(t, 0, h.Len())
}

func TestInvalidIndexErrors(t *testing.T) {
	h := kheap.New[int](kheap.Ascending, kheap.WithData([]int{3, 1, 2}))
	before := []int{h.Values()[0], h.Values()[1], h.Values()[2]}

	_, err := h.Remove(3)
	require.ErrorIs(t, err, kheap.ErrInvalidIndex)

	_, err = h.Remove(-1)
	require.ErrorIs(t, err, kheap.ErrInvalidIndex)

	mutated := false
	_, err = h.Update(100, func(v *int) { mutated = true })
	require.ErrorIs(t, err, kheap.ErrInvalidIndex)
	require.False(t, mutated)

	// Failures leave the heap untouched.
	require.Equal(t, 3, h.Len())
	require.Equal(t, before, h.Values())
	require.NoError(t, h.Validate())
}

func TestValidate(t *testing.T) {
	h := kheap.New[int](kheap.Ascending, kheap.WithData(uniformRand(7, 50)))
	require.NoError(t, h.Validate())
	require.True(t, h.IsValid())

	// Break the invariant through the escape hatch.
	h.Values()[0] = 100000
	require.Error(t, h.Validate())
	require.False(t, h.IsValid())
	require.Contains(t, h.Validate().Error(), "ascending order violated")

	h.Init()
	require.NoError(t, h.Validate())
	require.True(t, h.IsValid())
}
