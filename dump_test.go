// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump_IncludesNamesAndLength(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	parent := Alloc(tr, nil, "parent", WithName("conn"))
	AllocSlice(tr, parent, []int{1, 2, 3}, true, WithName("buf"))

	var w strings.Builder
	require.NoError(t, Dump(&w, tr))

	out := w.String()
	assert.Contains(t, out, `"conn"`)
	assert.Contains(t, out, `"buf"`)
	assert.Contains(t, out, "len=3")
}

func TestDump_RootLabel(t *testing.T) {
	t.Parallel()

	tr := NewTree()
	var w strings.Builder
	require.NoError(t, Dump(&w, tr))
	assert.Contains(t, w.String(), "<root>")
}
