// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import (
	"testing"

	"github.com/gaissmai/arbor/taken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResize_GrowZeroValuesTail(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := AllocSlice(tr, nil, []int{1, 2, 3}, true)

	require.NoError(t, Resize[int](tr, &n, 5))
	got, ok := Slice[int](n)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 0, 0}, got)
	assert.Equal(t, 5, Count(n))
}

func TestResize_Shrink(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := AllocSlice(tr, nil, []int{1, 2, 3}, true)

	require.NoError(t, Resize[int](tr, &n, 1))
	got, ok := Slice[int](n)
	require.True(t, ok)
	assert.Equal(t, []int{1}, got)
}

func TestResize_PreservesParentAndSiblings(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	parent := Alloc(tr, nil, "parent")
	n := AllocSlice(tr, parent, []int{1, 2}, true)
	sibling := Alloc(tr, parent, "sibling")
	_ = sibling

	require.NoError(t, Resize[int](tr, &n, 4))
	assert.Equal(t, parent, Parent(tr, n))
	assert.Equal(t, 2, countChildren(tr, parent))
}

func TestResize_PreservesChildrenOwnership(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := AllocSlice(tr, nil, []int{1, 2}, true)
	grandchild := Alloc(tr, n, "gc")

	require.NoError(t, Resize[int](tr, &n, 5))
	assert.Equal(t, n, Parent(tr, grandchild))
}

func TestResize_FiresMoveThenResize(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := AllocSlice(tr, nil, []int{1}, true)

	var events []Event
	AddNotifier(tr, n, NewEventMask(EventMove, EventResize), func(_ *Node, ev Event, _ any) {
		events = append(events, ev)
	})

	require.NoError(t, Resize[int](tr, &n, 3))
	assert.Equal(t, []Event{EventMove, EventResize}, events)
}

func TestExpand_AppendsAndRejectsAlias(t *testing.T) {
	t.Parallel()

	tr := NewTree(WithErrorFunc(func(error) {}))
	n := AllocSlice(tr, nil, []int{1, 2}, true)

	require.NoError(t, Expand(tr, &n, []int{3, 4}))
	got, _ := Slice[int](n)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	current, _ := Slice[int](n)
	err := Expand(tr, &n, current[:1])
	assert.ErrorIs(t, err, ErrAlias)
}

func TestExpandTaken_ClaimsOnce(t *testing.T) {
	t.Parallel()

	tr := NewTree(WithErrorFunc(func(error) {}))
	n := AllocSlice(tr, nil, []int{1, 2}, true)

	p := taken.New([]int{3, 4})
	require.NoError(t, ExpandTaken(tr, &n, p))
	got, _ := Slice[int](n)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	p2 := taken.New([]int{5})
	p2.Take()
	err := ExpandTaken(tr, &n, p2)
	assert.ErrorIs(t, err, ErrTaken)
}

func countChildren(t *Tree, parent *Node) int {
	count := 0
	for c := First(t, parent); c != nil; c = Next(t, parent, c) {
		count++
	}
	return count
}
