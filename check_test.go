// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_SoundTreeReportsNoError(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	parent := Alloc(tr, nil, "parent")
	Alloc(tr, parent, "child1")
	Alloc(tr, parent, "child2", WithName("c2"))

	assert.NoError(t, Check(tr, nil))
}

func TestCheck_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	parent := Alloc(tr, nil, "parent")
	a := Alloc(tr, parent, "a")
	b := Alloc(tr, parent, "b")

	a.parentRef = nil
	b.prev = a // break the back-link chain

	err := Check(tr, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors occurred")
}

func TestCheckFirst_StopsAtFirstViolation(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	parent := Alloc(tr, nil, "parent")
	a := Alloc(tr, parent, "a")
	b := Alloc(tr, parent, "b")
	a.parentRef = nil
	b.prev = a

	err := CheckFirst(tr, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupt)
}
