// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNotifier_DoesNotObserveItsOwnBirth(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := Alloc(tr, nil, "n")

	var sawAdd bool
	_, ok := AddNotifier(tr, n, NewEventMask(EventAddNotifier, EventRename), func(_ *Node, ev Event, _ any) {
		if ev == EventAddNotifier {
			sawAdd = true
		}
	})
	require.True(t, ok)
	assert.False(t, sawAdd)

	require.NoError(t, SetName(tr, n, "renamed", false))
	assert.True(t, !sawAdd) // ADD_NOTIFIER still never fires for this notifier
}

func TestAddNotifier_FastPathSkipsWhenNoSubscribers(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := Alloc(tr, nil, "n")
	assert.Zero(t, tr.notifiers)

	called := false
	AddNotifier(tr, n, NewEventMask(EventFree), func(*Node, Event, any) { called = true })
	// FREE-only notifiers are destructor-equivalent and are not counted in
	// the tree-wide fast-path counter.
	assert.Zero(t, tr.notifiers)

	Free(tr, n)
	assert.True(t, called)
}

func TestAddNotifier_NonFreeMaskIncrementsCounter(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := Alloc(tr, nil, "n")

	AddNotifier(tr, n, NewEventMask(EventRename), func(*Node, Event, any) {})
	assert.Equal(t, 1, tr.notifiers)
}

func TestDelNotifier_FiresRegardlessOfCounter(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := Alloc(tr, nil, "n")

	var delSeen bool
	_, ok := AddNotifier(tr, n, NewEventMask(EventDelNotifier), func(_ *Node, ev Event, _ any) {
		if ev == EventDelNotifier {
			delSeen = true
		}
	})
	require.True(t, ok)
	// The removed notifier is unlinked before DEL_NOTIFIER is dispatched, so
	// the observer above watches the removal of a second notifier.
	h, ok := AddNotifier(tr, n, NewEventMask(EventRename), func(*Node, Event, any) {})
	require.True(t, ok)

	tr.notifiers = 0 // simulate no other live subscribers
	removed := DelNotifier(tr, h)
	assert.True(t, removed)
	assert.True(t, delSeen)
}

func TestDelNotifier_UnknownHandleReturnsFalse(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := Alloc(tr, nil, "n")
	h, _ := AddNotifier(tr, n, NewEventMask(EventRename), func(*Node, Event, any) {})

	assert.True(t, DelNotifier(tr, h))
	assert.False(t, DelNotifier(tr, h))
}

func TestAddDestructor_RunsOnFree(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	n := Alloc(tr, nil, "n")

	ran := false
	AddDestructor(tr, n, func(*Node) { ran = true })
	Free(tr, n)
	assert.True(t, ran)
}
