// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import (
	"testing"

	"github.com/gaissmai/arbor/taken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlloc_BasicOwnership(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := Alloc(tr, nil, 42)
	require.NotNil(t, n)

	v, ok := Value[int](n)
	require.True(t, ok)
	assert.Equal(t, 42, v)

	assert.Nil(t, Parent(tr, n))
}

func TestAlloc_NestedParent(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	parent := Alloc(tr, nil, "parent")
	child := Alloc(tr, parent, "child")

	assert.Equal(t, parent, Parent(tr, child))
	assert.Equal(t, child, First(tr, parent))
}

func TestAlloc_WithName(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := Alloc(tr, nil, 1, WithName("foo"))
	assert.Equal(t, "foo", Name(n))
}

func TestAlloc_WithLiteralName(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	const lit = "literal-name"
	n := Alloc(tr, nil, 1, WithLiteralName(lit))
	assert.Equal(t, lit, Name(n))
}

func TestAlloc_BackendRefusesAllocation(t *testing.T) {
	t.Parallel()

	backend := &CountingBackend{Refuse: true}
	tr := NewTree(WithBackend(backend), WithErrorFunc(func(error) {}))

	n := Alloc(tr, nil, 1)
	assert.Nil(t, n)
}

func TestAllocSlice_CopiesAndEmbedsLength(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	src := []int{1, 2, 3}
	n := AllocSlice(tr, nil, src, true)
	require.NotNil(t, n)

	got, ok := Slice[int](n)
	require.True(t, ok)
	assert.Equal(t, src, got)
	assert.Equal(t, 3, Count(n))

	// Mutating the original slice must not affect the node's copy.
	src[0] = 999
	got2, _ := Slice[int](n)
	assert.Equal(t, 1, got2[0])
}

func TestAllocSlice_WithoutEmbeddedLength(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := AllocSlice(tr, nil, []int{1, 2}, false)
	require.NotNil(t, n)
	assert.Equal(t, 0, Count(n))
}

func TestDup_ExtraCapacity(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := Dup(tr, nil, []int{1, 2}, 3, true)
	require.NotNil(t, n)

	got, ok := Slice[int](n)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 0, 0, 0}, got)
	assert.Equal(t, 5, Count(n))
}

func TestCheckCount_OverflowRejected(t *testing.T) {
	t.Parallel()

	err := checkCount[byte](-1)
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestCheckCount_ZeroAlwaysOK(t *testing.T) {
	t.Parallel()

	assert.NoError(t, checkCount[int](0))
}

func TestDupTaken_ClaimsOnce(t *testing.T) {
	t.Parallel()

	tr := NewTree(WithErrorFunc(func(error) {}))
	p := taken.New([]int{1, 2})

	n := DupTaken(tr, nil, p, 1, true, WithName("dup"))
	require.NotNil(t, n)
	got, ok := Slice[int](n)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 0}, got)

	n2 := DupTaken(tr, nil, p, 1, true)
	assert.Nil(t, n2, "a second claim of the same taken pointer must fail")
}
